package store

import (
	"sync"

	"github.com/markethub/storefront-core/internal/core/domain"
)

// WishlistStore is a toggle-set of products, unique by id, held only in
// process memory.
type WishlistStore struct {
	mu    sync.Mutex
	items []domain.Product
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{}
}

// Toggle adds the product if absent and removes it if present, by id.
func (s *WishlistStore) Toggle(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == p.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
	s.items = append(s.items, p)
}

// Contains reports whether the product id is wishlisted.
func (s *WishlistStore) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the wishlist.
func (s *WishlistStore) Items() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.items...)
}
