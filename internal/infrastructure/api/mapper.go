package api

import "github.com/markethub/storefront-core/internal/core/domain"

func productFromPayload(p productPayload) domain.Product {
	return domain.Product{
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

func productToPayload(p domain.Product) productPayload {
	return productPayload{
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

func cartItemFromPayload(p cartItemPayload) domain.CartItem {
	return domain.CartItem{
		ServerItemID: p.ID,
		Product:      productFromPayload(p.Product),
		Quantity:     p.Quantity,
	}
}

func orderFromPayload(p orderPayload) domain.Order {
	items := make([]domain.OrderItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, domain.OrderItem{
			ID:       it.ID,
			Product:  productFromPayload(it.Product),
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return domain.Order{
		ID:            p.ID,
		Items:         items,
		Total:         p.Total,
		Status:        domain.OrderStatus(p.Status),
		CreatedAt:     p.CreatedAt,
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
	}
}

// userFromPayload derives the role from the staff flag, preferring the
// server-provided role when present.
func userFromPayload(p userPayload) domain.User {
	u := domain.User{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		IsStaff: p.IsStaff,
		Role:    p.Role,
	}
	if u.Role == "" {
		u.DeriveRole()
	}
	return u
}
