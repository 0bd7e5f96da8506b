package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
)

// OrderClient implements ports.OrderAPI against /orders/.
type OrderClient struct {
	http *Client
}

func NewOrderClient(http *Client) *OrderClient {
	return &OrderClient{http: http}
}

// List returns the caller's order history; the server widens it to every
// order for staff tokens.
func (c *OrderClient) List(ctx context.Context) ([]domain.Order, error) {
	var payloads []orderPayload
	if err := c.http.do(ctx, http.MethodGet, "/orders/", nil, &payloads); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(payloads))
	for _, p := range payloads {
		orders = append(orders, orderFromPayload(p))
	}
	return orders, nil
}

// Create places an order from the given item lines.
func (c *OrderClient) Create(ctx context.Context, items []ports.OrderItemInput) (*domain.Order, error) {
	req := createOrderRequest{Items: make([]createOrderItemRequest, 0, len(items))}
	for _, it := range items {
		req.Items = append(req.Items, createOrderItemRequest{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	var payload orderPayload
	if err := c.http.do(ctx, http.MethodPost, "/orders/", req, &payload); err != nil {
		return nil, err
	}
	order := orderFromPayload(payload)
	return &order, nil
}

// UpdateStatus patches an order's status (admin only).
func (c *OrderClient) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	var payload orderPayload
	path := "/orders/" + url.PathEscape(orderID) + "/"
	err := c.http.do(ctx, http.MethodPatch, path, updateOrderStatusRequest{Status: string(status)}, &payload)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrOrderNotFound)
		}
		return nil, err
	}
	order := orderFromPayload(payload)
	return &order, nil
}
