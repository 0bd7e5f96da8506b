package ports

import (
	"context"

	"github.com/markethub/storefront-core/internal/core/domain"
)

// ListProductsInput holds the optional server-side catalog filters.
type ListProductsInput struct {
	Query    string
	Category string
}

// CatalogAPI is the remote product catalog contract (/products/).
// List and Get require no authentication; the write operations are
// admin-only and rely on the bearer credential attached by the transport.
type CatalogAPI interface {
	List(ctx context.Context, in ListProductsInput) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
