package domain

import "strings"

// Product is a catalog entry. ID is the stable identity used by every
// store; two products are the same product iff their IDs are equal.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Stock       int      `json:"stock,omitempty"`
	Image       string   `json:"image,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Valid reports whether the product satisfies the catalog invariants:
// non-empty identity, price >= 0 and stock >= 0.
func (p Product) Valid() bool {
	return p.ID != "" && p.Price >= 0 && p.Stock >= 0
}

// FilterProducts returns the products matching a free-text query
// (name or description, case-insensitive) and an exact category.
// Empty query/category match everything.
func FilterProducts(products []Product, query, category string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
