package ports

import (
	"context"

	"github.com/markethub/storefront-core/internal/core/domain"
)

// CartAPI is the authoritative server cart contract (/cart/).
// Fetch returns the full cart snapshot; every mutation is followed by a
// Fetch in the cart store (write-then-refetch).
type CartAPI interface {
	Fetch(ctx context.Context) ([]domain.CartItem, error)
	Add(ctx context.Context, productID string, quantity int) error
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error
	Remove(ctx context.Context, itemID string) error
}
