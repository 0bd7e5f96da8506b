package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/markethub/storefront-core/internal/core/domain"
)

// ProductStore is the canonical in-memory product collection plus the single
// "currently viewed" product. All mutation is synchronous; fetching is an
// external collaborator that calls Replace on success.
type ProductStore struct {
	mu       sync.RWMutex
	products []domain.Product
	selected *domain.Product
	log      zerolog.Logger
}

func NewProductStore(log zerolog.Logger) *ProductStore {
	return &ProductStore{log: log}
}

// Replace swaps the whole collection. Last write wins; no merge semantics.
func (s *ProductStore) Replace(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]domain.Product(nil), products...)
	s.log.Debug().Int("count", len(products)).Msg("product store replaced")
}

// Select tracks the currently viewed product, independent of the list.
// nil clears the selection.
func (s *ProductStore) Select(p *domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == nil {
		s.selected = nil
		return
	}
	clone := *p
	s.selected = &clone
}

// Selected returns a snapshot of the currently viewed product, or nil.
func (s *ProductStore) Selected() *domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	clone := *s.selected
	return &clone
}

// Products returns a copy of the collection.
func (s *ProductStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

// Find returns the product with the given id, if loaded.
func (s *ProductStore) Find(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Add appends a product to the collection.
func (s *ProductStore) Add(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

// Update replaces the product with the same id. Unknown ids are ignored.
func (s *ProductStore) Update(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return
		}
	}
}

// Remove deletes the product with the given id, if present.
func (s *ProductStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	s.products = out
}
