package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
	"github.com/markethub/storefront-core/internal/core/store"
)

// CatalogService keeps the product store in sync with the remote catalog.
// The store itself never touches the network; this service is the external
// collaborator that fetches and calls Replace.
type CatalogService struct {
	api      ports.CatalogAPI
	products *store.ProductStore
	log      zerolog.Logger
}

func NewCatalogService(api ports.CatalogAPI, products *store.ProductStore, log zerolog.Logger) *CatalogService {
	return &CatalogService{api: api, products: products, log: log}
}

// Refresh fetches the full catalog and replaces the store wholesale.
func (s *CatalogService) Refresh(ctx context.Context) error {
	list, err := s.api.List(ctx, ports.ListProductsInput{})
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	s.products.Replace(list)
	return nil
}

// Product returns one product, preferring an already-loaded store entry
// over a redundant network fetch. A server 404 surfaces as
// domain.ErrProductNotFound, never as silently substituted stale data.
func (s *CatalogService) Product(ctx context.Context, id string) (*domain.Product, error) {
	if p, ok := s.products.Find(id); ok {
		return &p, nil
	}
	p, err := s.api.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}
	return p, nil
}

// Search filters the loaded catalog locally by free-text query and category.
func (s *CatalogService) Search(query, category string) []domain.Product {
	return domain.FilterProducts(s.products.Products(), query, category)
}

// CreateProduct is the admin path: persist remotely, then mirror the
// server's view of the product into the store.
func (s *CatalogService) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	created, err := s.api.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.products.Add(*created)
	s.log.Info().Str("product_id", created.ID).Msg("product created")
	return created, nil
}

// UpdateProduct is the admin path for edits, same remote-then-store order.
func (s *CatalogService) UpdateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	updated, err := s.api.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.products.Update(*updated)
	return updated, nil
}

// DeleteProduct is the admin path for removal (the backend soft-deletes).
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.products.Remove(id)
	return nil
}
