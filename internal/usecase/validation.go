package usecase

import "github.com/lat08/web-eyewear-sub001/internal/domain/model"

// ValidOrderStatus reports whether the label belongs to the closed order
// status enumeration. Transitions are not restricted; only unknown labels are
// rejected.
func ValidOrderStatus(s model.OrderStatus) bool {
	switch s {
	case model.OrderStatusPending,
		model.OrderStatusProcessing,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
		model.OrderStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether the label belongs to the closed payment
// status enumeration.
func ValidPaymentStatus(s model.PaymentStatus) bool {
	switch s {
	case model.PaymentStatusPending,
		model.PaymentStatusPaid,
		model.PaymentStatusFailed,
		model.PaymentStatusRefunded:
		return true
	}
	return false
}
