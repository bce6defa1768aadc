package model

import "time"

// OrderStatus describes fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// PaymentStatus describes payment lifecycle, tracked separately from fulfilment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// OrderItem is a purchase-time snapshot of a catalog product. The item set is
// immutable after checkout; reconciliation only reads product ids and quantities.
type OrderItem struct {
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// CheckoutItem is the client's purchase intent for a single product; the unit
// price is always taken from the catalog, never from the client.
type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Order describes a customer order together with display data of its owner.
type Order struct {
	ID            string
	UserID        int64
	UserName      string
	UserEmail     string
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Total         float64
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
