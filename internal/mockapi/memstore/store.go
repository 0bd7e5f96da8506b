// Package memstore is the in-memory persistence of the mock storefront
// backend. It deliberately has no external dependencies so the backend can
// run anywhere, including inside tests.
package memstore

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrUserExists = errors.New("user already exists")
)

// User is a stored account. PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsStaff      bool
}

// Product is a stored catalog entry. Deactivated products are hidden from
// every read (soft delete).
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	Image       string
	Tags        []string
	Active      bool
}

// CartItem is one server-side cart line, keyed by its own id.
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
	AddedAt   time.Time
}

// OrderItem snapshots one ordered line at its price at order time.
type OrderItem struct {
	ID        string
	ProductID string
	Quantity  int
	Price     float64
}

// Order is a stored order.
type Order struct {
	ID        string
	UserID    string
	Status    string
	Total     float64
	CreatedAt time.Time
	Items     []OrderItem
}

// Store holds all backend state behind one lock.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*User
	usersByEmail map[string]string
	products     map[string]*Product
	productIDs   []string
	cartItems    map[string]map[string]*CartItem
	cartIDs      map[string][]string
	orders       map[string]*Order
	orderIDs     []string
}

func New() *Store {
	return &Store{
		users:        make(map[string]*User),
		usersByEmail: make(map[string]string),
		products:     make(map[string]*Product),
		cartItems:    make(map[string]map[string]*CartItem),
		cartIDs:      make(map[string][]string),
		orders:       make(map[string]*Order),
	}
}

// ── Users ────────────────────────────────────────────────────────────────

func (s *Store) CreateUser(name, email, passwordHash string, isStaff bool) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(email)
	if _, ok := s.usersByEmail[key]; ok {
		return nil, ErrUserExists
	}
	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsStaff:      isStaff,
	}
	s.users[u.ID] = u
	s.usersByEmail[key] = u.ID
	clone := *u
	return &clone, nil
}

func (s *Store) UserByEmail(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *s.users[id]
	return &clone, nil
}

func (s *Store) UserByID(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

// ── Products ─────────────────────────────────────────────────────────────

// Products lists active products, optionally filtered by a free-text query
// (name or description) and an exact, case-insensitive category.
func (s *Store) Products(query, category string) []*Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]*Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		p := s.products[id]
		if !p.Active {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out
}

func (s *Store) ProductByID(id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok || !p.Active {
		return nil, ErrNotFound
	}
	clone := *p
	return &clone, nil
}

// ProductByIDAny returns the product regardless of its active flag. Cart and
// order responses embed product snapshots even after a soft delete.
func (s *Store) ProductByIDAny(id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *Store) CreateProduct(p Product) *Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Active = true
	s.products[p.ID] = &p
	s.productIDs = append(s.productIDs, p.ID)
	clone := p
	return &clone
}

func (s *Store) UpdateProduct(p Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.products[p.ID]
	if !ok || !existing.Active {
		return nil, ErrNotFound
	}
	p.Active = true
	s.products[p.ID] = &p
	clone := p
	return &clone, nil
}

// DeactivateProduct soft-deletes: the product disappears from reads but
// keeps its identity for existing order snapshots.
func (s *Store) DeactivateProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok || !p.Active {
		return ErrNotFound
	}
	p.Active = false
	return nil
}

// ── Cart ─────────────────────────────────────────────────────────────────

// Cart lists a user's cart lines in insertion order.
func (s *Store) Cart(userID string) []*CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*CartItem, 0, len(s.cartIDs[userID]))
	for _, id := range s.cartIDs[userID] {
		clone := *s.cartItems[userID][id]
		out = append(out, &clone)
	}
	return out
}

// AddCartItem merges by product: an existing line for the product has its
// quantity incremented, otherwise a new line is appended.
func (s *Store) AddCartItem(userID, productID string, quantity int) (*CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[productID]; !ok || !p.Active {
		return nil, ErrNotFound
	}
	if s.cartItems[userID] == nil {
		s.cartItems[userID] = make(map[string]*CartItem)
	}
	for _, id := range s.cartIDs[userID] {
		item := s.cartItems[userID][id]
		if item.ProductID == productID {
			item.Quantity += quantity
			clone := *item
			return &clone, nil
		}
	}
	item := &CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	}
	s.cartItems[userID][item.ID] = item
	s.cartIDs[userID] = append(s.cartIDs[userID], item.ID)
	clone := *item
	return &clone, nil
}

func (s *Store) UpdateCartItem(userID, itemID string, quantity int) (*CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.cartItems[userID][itemID]
	if !ok {
		return nil, ErrNotFound
	}
	item.Quantity = quantity
	clone := *item
	return &clone, nil
}

func (s *Store) RemoveCartItem(userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cartItems[userID][itemID]; !ok {
		return ErrNotFound
	}
	delete(s.cartItems[userID], itemID)
	ids := s.cartIDs[userID]
	for i, id := range ids {
		if id == itemID {
			s.cartIDs[userID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// ── Orders ───────────────────────────────────────────────────────────────

// CreateOrder stores an order with the given snapshot lines; the caller has
// already computed line prices and the total.
func (s *Store) CreateOrder(userID string, items []OrderItem, total float64) *Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := append([]OrderItem(nil), items...)
	for i := range lines {
		if lines[i].ID == "" {
			lines[i].ID = uuid.NewString()
		}
	}
	o := &Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    "pending",
		Total:     total,
		CreatedAt: time.Now().UTC(),
		Items:     lines,
	}
	s.orders[o.ID] = o
	s.orderIDs = append(s.orderIDs, o.ID)
	clone := *o
	return &clone
}

// Orders lists every order for staff callers, or the caller's own orders.
func (s *Store) Orders(userID string, staff bool) []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		o := s.orders[id]
		if !staff && o.UserID != userID {
			continue
		}
		clone := *o
		out = append(out, &clone)
	}
	return out
}

func (s *Store) SetOrderStatus(orderID, status string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	clone := *o
	return &clone, nil
}
