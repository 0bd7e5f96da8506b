package memstore

import (
	"errors"
	"testing"
)

func TestStore_UserUniqueness(t *testing.T) {
	s := New()
	if _, err := s.CreateUser("Alice", "alice@example.com", "hash", false); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	// Email matching is case-insensitive.
	if _, err := s.CreateUser("Other", "ALICE@example.com", "hash", false); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	u, err := s.UserByEmail("Alice@Example.com")
	if err != nil || u.Name != "Alice" {
		t.Fatalf("UserByEmail: %v %v", u, err)
	}
}

func TestStore_ProductFiltering(t *testing.T) {
	s := New()
	s.CreateProduct(Product{Name: "Espresso Grinder", Description: "burr grinder", Category: "kitchen"})
	s.CreateProduct(Product{Name: "Desk Lamp", Description: "warm light", Category: "office"})
	s.CreateProduct(Product{Name: "Espresso Cup", Description: "ceramic", Category: "kitchen"})

	if got := s.Products("", ""); len(got) != 3 {
		t.Fatalf("expected 3 products, got %d", len(got))
	}
	if got := s.Products("espresso", ""); len(got) != 2 {
		t.Fatalf("query filter failed: %d", len(got))
	}
	if got := s.Products("", "KITCHEN"); len(got) != 2 {
		t.Fatalf("category filter must be case-insensitive: %d", len(got))
	}
	if got := s.Products("grinder", "kitchen"); len(got) != 1 {
		t.Fatalf("combined filter failed: %d", len(got))
	}
	// Description matches too.
	if got := s.Products("ceramic", ""); len(got) != 1 {
		t.Fatalf("description match failed: %d", len(got))
	}
}

func TestStore_SoftDelete(t *testing.T) {
	s := New()
	p := s.CreateProduct(Product{Name: "Mug"})

	if err := s.DeactivateProduct(p.ID); err != nil {
		t.Fatalf("DeactivateProduct: %v", err)
	}
	if _, err := s.ProductByID(p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deactivated product must be hidden, got %v", err)
	}
	if got := s.Products("", ""); len(got) != 0 {
		t.Fatalf("deactivated product listed: %d", len(got))
	}
	// Still reachable for order/cart snapshots.
	if _, err := s.ProductByIDAny(p.ID); err != nil {
		t.Fatalf("ProductByIDAny: %v", err)
	}
	// Double delete is a 404.
	if err := s.DeactivateProduct(p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStore_CartMergesByProduct(t *testing.T) {
	s := New()
	p := s.CreateProduct(Product{Name: "Mug"})

	first, err := s.AddCartItem("u1", p.ID, 2)
	if err != nil {
		t.Fatalf("AddCartItem: %v", err)
	}
	second, err := s.AddCartItem("u1", p.ID, 3)
	if err != nil {
		t.Fatalf("AddCartItem: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected merge into the same line")
	}
	items := s.Cart("u1")
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("unexpected cart: %+v", items)
	}
	// Other users see their own carts only.
	if len(s.Cart("u2")) != 0 {
		t.Fatalf("cart leaked between users")
	}
}

func TestStore_CartUpdateAndRemove(t *testing.T) {
	s := New()
	p := s.CreateProduct(Product{Name: "Mug"})
	item, _ := s.AddCartItem("u1", p.ID, 1)

	if _, err := s.UpdateCartItem("u1", item.ID, 9); err != nil {
		t.Fatalf("UpdateCartItem: %v", err)
	}
	if got := s.Cart("u1"); got[0].Quantity != 9 {
		t.Fatalf("quantity not updated: %+v", got)
	}
	if _, err := s.UpdateCartItem("u2", item.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user update must miss, got %v", err)
	}

	if err := s.RemoveCartItem("u1", item.ID); err != nil {
		t.Fatalf("RemoveCartItem: %v", err)
	}
	if len(s.Cart("u1")) != 0 {
		t.Fatalf("expected empty cart")
	}
	if err := s.RemoveCartItem("u1", item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_OrderVisibility(t *testing.T) {
	s := New()
	o1 := s.CreateOrder("u1", []OrderItem{{ProductID: "p", Quantity: 1, Price: 2}}, 2)
	s.CreateOrder("u2", []OrderItem{{ProductID: "p", Quantity: 1, Price: 2}}, 2)

	if o1.Status != "pending" {
		t.Fatalf("new orders must be pending, got %q", o1.Status)
	}
	if o1.Items[0].ID == "" {
		t.Fatalf("order lines must get ids")
	}

	if got := s.Orders("u1", false); len(got) != 1 {
		t.Fatalf("customer must see own orders only: %d", len(got))
	}
	if got := s.Orders("staff", true); len(got) != 2 {
		t.Fatalf("staff must see every order: %d", len(got))
	}

	updated, err := s.SetOrderStatus(o1.ID, "shipped")
	if err != nil || updated.Status != "shipped" {
		t.Fatalf("SetOrderStatus: %v %v", updated, err)
	}
	if _, err := s.SetOrderStatus("missing", "paid"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
