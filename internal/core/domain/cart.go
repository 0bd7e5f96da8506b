package domain

// CartItem is one line of a cart. ServerItemID is set only when the item
// lives in a server-backed cart; guest carts identify lines by product id.
type CartItem struct {
	// ServerItemID is the server-assigned cart-item id, empty for guest items.
	ServerItemID string  `json:"id,omitempty"`
	Product      Product `json:"product"`
	Quantity     int     `json:"quantity"`
}

// Subtotal is the line total at the client-known price.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// RefKind discriminates the two ways a cart line can be addressed.
type RefKind int

const (
	// RefByProduct addresses a line by product identity (guest carts).
	RefByProduct RefKind = iota
	// RefByServerItem addresses a line by its server-assigned item id
	// (authenticated carts).
	RefByServerItem
)

// ItemRef is a tagged reference to a cart line. Guest carts key lines by
// product id, server carts by a distinct item id; ItemRef makes the caller
// state which identity it holds instead of passing two optional ids.
type ItemRef struct {
	kind RefKind
	id   string
}

// ByProduct references a cart line through its product id.
func ByProduct(productID string) ItemRef {
	return ItemRef{kind: RefByProduct, id: productID}
}

// ByServerItem references a cart line through its server item id.
func ByServerItem(itemID string) ItemRef {
	return ItemRef{kind: RefByServerItem, id: itemID}
}

// Kind returns the reference discriminant.
func (r ItemRef) Kind() RefKind { return r.kind }

// ID returns the referenced identifier.
func (r ItemRef) ID() string { return r.id }
