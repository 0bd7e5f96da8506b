package handler

import (
	"time"

	"github.com/markethub/storefront-core/internal/mockapi/memstore"
)

// Wire types for the mock backend. Field names and shapes match what the
// client package expects: snake_case JSON with products embedded in cart and
// order lines.

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type userResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
	Role    string `json:"role"`
}

type authResponse struct {
	User    userResponse `json:"user"`
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

type productRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
}

type productResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Stock       int      `json:"stock"`
	Image       string   `json:"image,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

type cartItemResponse struct {
	ID       string          `json:"id"`
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}

type createOrderItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	Price     float64 `json:"price"`
}

type createOrderRequest struct {
	Items []createOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid shipped delivered cancelled"`
}

type orderItemResponse struct {
	ID       string          `json:"id"`
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	Total         float64             `json:"total"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []orderItemResponse `json:"items"`
	CustomerName  string              `json:"customer_name,omitempty"`
	CustomerEmail string              `json:"customer_email,omitempty"`
}

func userToResponse(u *memstore.User) userResponse {
	role := "customer"
	if u.IsStaff {
		role = "admin"
	}
	return userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsStaff: u.IsStaff,
		Role:    role,
	}
}

func productToResponse(p *memstore.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Image:       p.Image,
		Tags:        p.Tags,
	}
}
