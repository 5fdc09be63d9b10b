package domain

import "time"

// OrderStatusPending is the status stamped on every newly placed order.
// Nothing in the service transitions an order past it yet.
const OrderStatusPending = "pending"

// OrderItem is a single line of an order. Title and Price snapshot the
// product at order time; ProductID is kept as an opaque reference and is
// not checked against the catalog.
type OrderItem struct {
	ProductID string  `json:"product_id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// CreateOrder is the payload accepted when placing an order. The derived
// fields (total, order number, status, creation time) have no input
// counterpart, so a client cannot supply them.
type CreateOrder struct {
	CustomerName    string      `json:"customer_name" validate:"required"`
	CustomerEmail   string      `json:"customer_email" validate:"required,email"`
	ShippingAddress string      `json:"shipping_address" validate:"required"`
	Items           []OrderItem `json:"items" validate:"dive"`
}

// Order is the order resource as returned to clients. The customer
// contact fields are persisted with the document but never serialized.
//
// swagger:model
type Order struct {
	// The store-generated id of the order
	//
	// required: true
	ID string `json:"id"`

	// The human-facing order number, ORD- followed by the UTC creation
	// timestamp down to seconds
	//
	// example: ORD-20260823151205
	OrderNumber string `json:"order_number"`

	// The order total, sum of price times quantity over the items
	TotalAmount float64 `json:"total_amount"`

	// The ordered items
	Items []OrderItem `json:"items"`

	// The order status
	//
	// example: pending
	Status string `json:"status"`

	// When the order was placed, UTC
	CreatedAt time.Time `json:"created_at"`

	CustomerName    string `json:"-"`
	CustomerEmail   string `json:"-"`
	ShippingAddress string `json:"-"`
}

// OrderSummary is the compact listing shape for orders: no item detail.
type OrderSummary struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderTotal sums price times quantity over the items.
func OrderTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// OrderNumber derives the order number from the creation time.
func OrderNumber(t time.Time) string {
	return "ORD-" + t.UTC().Format("20060102150405")
}
