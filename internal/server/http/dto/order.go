package dto

import "time"

// CheckoutItemRequest is a single order line in a checkout payload.
type CheckoutItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CheckoutRequest describes the checkout payload.
type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items"`
}

// OrderItemResponse describes a purchased line.
type OrderItemResponse struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderResponse describes an order returned to clients.
type OrderResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	Total         float64             `json:"total"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
}

// StatusUpdateRequest carries the optional status fields of an admin update.
// Absent fields leave the stored value untouched.
type StatusUpdateRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}
