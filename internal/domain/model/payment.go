package model

// PaymentResult is the payment provider's verdict for an order.
type PaymentResult struct {
	OrderID string
	Status  PaymentStatus
}
