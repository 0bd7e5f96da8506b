package store

import (
	"sync"

	"github.com/markethub/storefront-core/internal/core/domain"
)

// maxComparison is the hard cap on products compared side by side.
const maxComparison = 3

// ComparisonStore is a capped set of products selected for side-by-side
// comparison.
type ComparisonStore struct {
	mu    sync.Mutex
	items []domain.Product
}

func NewComparisonStore() *ComparisonStore {
	return &ComparisonStore{}
}

// Add puts a product in the comparison set. Adding beyond the cap or adding
// a product already present is a silent no-op, not an error.
func (s *ComparisonStore) Add(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) >= maxComparison {
		return
	}
	for _, it := range s.items {
		if it.ID == p.ID {
			return
		}
	}
	s.items = append(s.items, p)
}

// Remove deletes the product with the given id, if present.
func (s *ComparisonStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the set.
func (s *ComparisonStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// IsComparing reports whether the product id is in the set.
func (s *ComparisonStore) IsComparing(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the comparison set.
func (s *ComparisonStore) Items() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.items...)
}
