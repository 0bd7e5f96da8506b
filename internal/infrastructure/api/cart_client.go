package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/markethub/storefront-core/internal/core/domain"
)

// CartClient implements ports.CartAPI against /cart/.
type CartClient struct {
	http *Client
}

func NewCartClient(http *Client) *CartClient {
	return &CartClient{http: http}
}

// Fetch returns the authoritative cart snapshot.
func (c *CartClient) Fetch(ctx context.Context) ([]domain.CartItem, error) {
	var payloads []cartItemPayload
	if err := c.http.do(ctx, http.MethodGet, "/cart/", nil, &payloads); err != nil {
		return nil, err
	}
	items := make([]domain.CartItem, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, cartItemFromPayload(p))
	}
	return items, nil
}

// Add sends {product_id, quantity}; the server merges by product.
func (c *CartClient) Add(ctx context.Context, productID string, quantity int) error {
	req := addCartItemRequest{ProductID: productID, Quantity: quantity}
	return c.http.do(ctx, http.MethodPost, "/cart/", req, nil)
}

// UpdateQuantity patches one cart line by its server item id.
func (c *CartClient) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	path := "/cart/" + url.PathEscape(itemID) + "/"
	err := c.http.do(ctx, http.MethodPatch, path, updateQuantityRequest{Quantity: quantity}, nil)
	if IsNotFound(err) {
		return fmt.Errorf("cart item %s: %w", itemID, domain.ErrItemNotFound)
	}
	return err
}

// Remove deletes one cart line by its server item id.
func (c *CartClient) Remove(ctx context.Context, itemID string) error {
	err := c.http.do(ctx, http.MethodDelete, "/cart/"+url.PathEscape(itemID)+"/", nil, nil)
	if IsNotFound(err) {
		return fmt.Errorf("cart item %s: %w", itemID, domain.ErrItemNotFound)
	}
	return err
}
