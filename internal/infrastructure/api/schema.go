package api

import "time"

// Wire types mirror the backend's JSON contract exactly (snake_case fields,
// trailing-slash routes). They are intentionally separate from the domain
// types so the wire format is not coupled to internal changes.

type productPayload struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Stock       int      `json:"stock"`
	Image       string   `json:"image,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type cartItemPayload struct {
	ID       string         `json:"id"`
	Product  productPayload `json:"product"`
	Quantity int            `json:"quantity"`
	AddedAt  *time.Time     `json:"added_at,omitempty"`
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type orderItemPayload struct {
	ID       string         `json:"id"`
	Product  productPayload `json:"product"`
	Quantity int            `json:"quantity"`
	Price    float64        `json:"price"`
}

type orderPayload struct {
	ID            string             `json:"id"`
	Status        string             `json:"status"`
	Total         float64            `json:"total"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []orderItemPayload `json:"items"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerEmail string             `json:"customer_email,omitempty"`
}

type createOrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type createOrderRequest struct {
	Items []createOrderItemRequest `json:"items"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type userPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
	Role    string `json:"role,omitempty"`
}

type authEnvelope struct {
	User    userPayload `json:"user"`
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
