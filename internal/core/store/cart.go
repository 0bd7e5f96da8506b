package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
)

// CartStore reconciles two cart modes, chosen per operation from the
// session: guest carts are purely in-memory, authenticated carts treat the
// server as the source of truth. Every authenticated mutation performs the
// remote write and then refetches the full authoritative cart, so local
// state never drifts from server-computed invariants (stock limits, price
// changes) at the cost of one extra read per mutation.
type CartStore struct {
	mu      sync.Mutex
	items   []domain.CartItem
	session *SessionStore
	api     ports.CartAPI
	log     zerolog.Logger
}

func NewCartStore(session *SessionStore, api ports.CartAPI, log zerolog.Logger) *CartStore {
	return &CartStore{session: session, api: api, log: log}
}

// Load fetches and replaces the full item list for authenticated sessions.
// It is a no-op for guests and must be invoked once per session
// establishment — it is not automatic.
func (c *CartStore) Load(ctx context.Context) error {
	if !c.session.Authenticated() {
		return nil
	}
	return c.refetch(ctx)
}

// AddItem puts quantity units of a product in the cart. Guest path merges by
// product id, summing quantities. Authenticated path sends the add to the
// server and reloads the authoritative cart.
func (c *CartStore) AddItem(ctx context.Context, product domain.Product, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	if !c.session.Authenticated() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i := range c.items {
			if c.items[i].Product.ID == product.ID {
				c.items[i].Quantity += quantity
				return nil
			}
		}
		c.items = append(c.items, domain.CartItem{Product: product, Quantity: quantity})
		return nil
	}

	if err := c.api.Add(ctx, product.ID, quantity); err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return c.refetch(ctx)
}

// RemoveItem deletes the referenced line. Guest carts must be addressed
// ByProduct, authenticated carts ByServerItem.
func (c *CartStore) RemoveItem(ctx context.Context, ref domain.ItemRef) error {
	if !c.session.Authenticated() {
		if ref.Kind() != domain.RefByProduct {
			return domain.ErrItemRefKind
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		out := c.items[:0]
		for _, it := range c.items {
			if it.Product.ID != ref.ID() {
				out = append(out, it)
			}
		}
		c.items = out
		return nil
	}

	if ref.Kind() != domain.RefByServerItem {
		return domain.ErrItemRefKind
	}
	if err := c.api.Remove(ctx, ref.ID()); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return c.refetch(ctx)
}

// UpdateQuantity sets the referenced line to quantity, addressed like
// RemoveItem. The only client-side constraint is the minimum of 1.
func (c *CartStore) UpdateQuantity(ctx context.Context, ref domain.ItemRef, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	if !c.session.Authenticated() {
		if ref.Kind() != domain.RefByProduct {
			return domain.ErrItemRefKind
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		for i := range c.items {
			if c.items[i].Product.ID == ref.ID() {
				c.items[i].Quantity = quantity
				return nil
			}
		}
		return domain.ErrItemNotFound
	}

	if ref.Kind() != domain.RefByServerItem {
		return domain.ErrItemRefKind
	}
	if err := c.api.UpdateQuantity(ctx, ref.ID(), quantity); err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return c.refetch(ctx)
}

// Clear empties the local cart only. It never notifies the server: it is
// called after an order is placed, when order creation is expected to have
// consumed the server-side cart already.
func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the current lines.
func (c *CartStore) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CartItem(nil), c.items...)
}

// Total is the derived sum of price×quantity over all lines, recomputed on
// every call and never memoized.
func (c *CartStore) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum float64
	for _, it := range c.items {
		sum += it.Subtotal()
	}
	return sum
}

// Len returns the number of distinct lines.
func (c *CartStore) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// refetch replaces local state with the server's authoritative snapshot.
func (c *CartStore) refetch(ctx context.Context) error {
	items, err := c.api.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.log.Debug().Int("items", len(items)).Msg("cart replaced from server")
	return nil
}
