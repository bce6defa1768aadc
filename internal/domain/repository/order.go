package repository

import (
	"context"

	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
)

// StatusUpdate carries the optional field changes of a status transition.
// A nil field means "leave unchanged".
type StatusUpdate struct {
	Status        *model.OrderStatus
	PaymentStatus *model.PaymentStatus
}

// OrderRepository describes persistence operations with orders. Create and
// UpdateStatus run as single transactions covering both the order row and the
// stock of every referenced product.
type OrderRepository interface {
	Create(ctx context.Context, userID int64, items []model.CheckoutItem) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, update StatusUpdate) (*model.Order, error)
	SelectBatchForPaymentCheck(ctx context.Context, limit int) ([]model.Order, error)
}
