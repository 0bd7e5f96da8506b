package mockapi

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/markethub/storefront-core/internal/mockapi/memstore"
)

// Seed loads a staff account and a small demo catalog so the backend is
// usable straight after boot.
//
// Credentials: admin@markethub.dev / admin12345.
func Seed(store *memstore.Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("mockapi: hash seed password: %w", err)
	}
	if _, err := store.CreateUser("Admin", "admin@markethub.dev", string(hash), true); err != nil {
		return fmt.Errorf("mockapi: seed admin user: %w", err)
	}

	for _, p := range []memstore.Product{
		{
			Name:        "Wireless Headphones",
			Description: "Over-ear headphones with active noise cancelling and 30h battery.",
			Price:       129.99,
			Category:    "electronics",
			Stock:       42,
			Tags:        []string{"audio", "wireless"},
		},
		{
			Name:        "Mechanical Keyboard",
			Description: "Tenkeyless board with hot-swappable switches.",
			Price:       89.50,
			Category:    "electronics",
			Stock:       17,
			Tags:        []string{"keyboard", "desk"},
		},
		{
			Name:        "Espresso Grinder",
			Description: "Conical burr grinder with 40 grind settings.",
			Price:       199.00,
			Category:    "kitchen",
			Stock:       8,
			Tags:        []string{"coffee"},
		},
		{
			Name:        "Canvas Backpack",
			Description: "Water-resistant 25L backpack with laptop sleeve.",
			Price:       54.90,
			Category:    "accessories",
			Stock:       31,
		},
	} {
		store.CreateProduct(p)
	}
	return nil
}
