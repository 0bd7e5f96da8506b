package domain

import "time"

// OrderStatus is the lifecycle state of an order. The server owns the
// transition rules; the client offers every status and never validates a
// transition locally.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// KnownStatus reports whether s is one of the five statuses the backend
// understands.
func (s OrderStatus) KnownStatus() bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is a line of a placed order: a product snapshot plus the
// quantity and unit price at the time the order was created.
type OrderItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a placed order as reported by the server. Customer identity is
// populated only on admin listings.
type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	CustomerName  string      `json:"customer_name,omitempty"`
	CustomerEmail string      `json:"customer_email,omitempty"`
}
