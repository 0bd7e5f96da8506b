package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
	"github.com/markethub/storefront-core/internal/core/store"
)

// OrderService converts cart contents into server orders and exposes the
// order history and the admin status operation.
type OrderService struct {
	api  ports.OrderAPI
	cart *store.CartStore
	log  zerolog.Logger
}

func NewOrderService(api ports.OrderAPI, cart *store.CartStore, log zerolog.Logger) *OrderService {
	return &OrderService{api: api, cart: cart, log: log}
}

// CreateOrder places an order for the given items. The client sends its
// known prices; the server is authoritative for the final total.
func (s *OrderService) CreateOrder(ctx context.Context, items []domain.CartItem) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("create order: empty item list")
	}
	inputs := make([]ports.OrderItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, ports.OrderItemInput{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
			Price:     it.Product.Price,
		})
	}

	order, err := s.api.Create(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	s.log.Info().Str("order_id", order.ID).Float64("total", order.Total).Msg("order created")
	return order, nil
}

// Checkout places an order for the whole cart and, on success, clears the
// local cart. The server cart is assumed to be consumed by order creation;
// no cart deletions are issued here.
func (s *OrderService) Checkout(ctx context.Context) (*domain.Order, error) {
	order, err := s.CreateOrder(ctx, s.cart.Items())
	if err != nil {
		return nil, err
	}
	s.cart.Clear()
	return order, nil
}

// PlaceSingleOrder is the express path bypassing the cart: one product, one
// quantity. The price sent is a placeholder; the server always computes it.
func (s *OrderService) PlaceSingleOrder(ctx context.Context, productID string, quantity int) (*domain.Order, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	order, err := s.api.Create(ctx, []ports.OrderItemInput{
		{ProductID: productID, Quantity: quantity, Price: 0},
	})
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	s.log.Info().Str("order_id", order.ID).Str("product_id", productID).Msg("express order placed")
	return order, nil
}

// Orders lists the caller's order history (all orders for admins — the
// server decides based on the bearer identity).
func (s *OrderService) Orders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.api.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus is the admin operation. Any of the five statuses may be
// requested from any state; the server is the sole enforcer of the status
// state machine.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.KnownStatus() {
		return nil, fmt.Errorf("update order status: unknown status %q", status)
	}
	order, err := s.api.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return order, nil
}
