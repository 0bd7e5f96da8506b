package store

import (
	"testing"

	"github.com/markethub/storefront-core/internal/core/domain"
)

func TestWishlistStore_Toggle(t *testing.T) {
	w := NewWishlistStore()
	p := domain.Product{ID: "p1", Name: "Mug"}

	w.Toggle(p)
	if !w.Contains("p1") {
		t.Fatalf("expected product in wishlist after first toggle")
	}
	if got := w.Items(); len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("unexpected items: %+v", got)
	}

	w.Toggle(p)
	if w.Contains("p1") {
		t.Fatalf("expected product removed after second toggle")
	}
	if len(w.Items()) != 0 {
		t.Fatalf("expected empty wishlist")
	}
}
