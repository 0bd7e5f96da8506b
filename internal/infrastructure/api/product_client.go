package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
)

// CatalogClient implements ports.CatalogAPI against /products/.
type CatalogClient struct {
	http *Client
}

func NewCatalogClient(http *Client) *CatalogClient {
	return &CatalogClient{http: http}
}

// List fetches the catalog, optionally filtered server-side.
func (c *CatalogClient) List(ctx context.Context, in ports.ListProductsInput) ([]domain.Product, error) {
	path := "/products/"
	query := url.Values{}
	if in.Query != "" {
		query.Set("q", in.Query)
	}
	if in.Category != "" {
		query.Set("category", in.Category)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var payloads []productPayload
	if err := c.http.do(ctx, http.MethodGet, path, nil, &payloads); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(payloads))
	for _, p := range payloads {
		products = append(products, productFromPayload(p))
	}
	return products, nil
}

// Get fetches one product. A server 404 maps to domain.ErrProductNotFound.
func (c *CatalogClient) Get(ctx context.Context, id string) (*domain.Product, error) {
	var payload productPayload
	if err := c.http.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id)+"/", nil, &payload); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
		}
		return nil, err
	}
	p := productFromPayload(payload)
	return &p, nil
}

// Create adds a catalog entry (admin only).
func (c *CatalogClient) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	var payload productPayload
	if err := c.http.do(ctx, http.MethodPost, "/products/", productToPayload(p), &payload); err != nil {
		return nil, err
	}
	created := productFromPayload(payload)
	return &created, nil
}

// Update replaces a catalog entry (admin only).
func (c *CatalogClient) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	var payload productPayload
	path := "/products/" + url.PathEscape(p.ID) + "/"
	if err := c.http.do(ctx, http.MethodPut, path, productToPayload(p), &payload); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("product %s: %w", p.ID, domain.ErrProductNotFound)
		}
		return nil, err
	}
	updated := productFromPayload(payload)
	return &updated, nil
}

// Delete removes a catalog entry (admin only; the backend soft-deletes).
func (c *CatalogClient) Delete(ctx context.Context, id string) error {
	err := c.http.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id)+"/", nil, nil)
	if IsNotFound(err) {
		return fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}
	return err
}
