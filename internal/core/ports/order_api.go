package ports

import (
	"context"

	"github.com/markethub/storefront-core/internal/core/domain"
)

// OrderItemInput is one line of an order creation request. Price is the
// client-known unit price; the server remains authoritative for the final
// total.
type OrderItemInput struct {
	ProductID string
	Quantity  int
	Price     float64
}

// OrderAPI is the remote order contract (/orders/).
type OrderAPI interface {
	List(ctx context.Context) ([]domain.Order, error)
	Create(ctx context.Context, items []OrderItemInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
}
