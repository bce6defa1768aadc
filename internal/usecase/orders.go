package usecase

import (
	"context"

	domainErrors "github.com/lat08/web-eyewear-sub001/internal/domain/errors"
	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
	"github.com/lat08/web-eyewear-sub001/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic: checkout and the status
// transitions that reconcile product stock.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Checkout creates an order for the user from already-reconciled cart intent.
// Prices and stock are resolved inside one storage transaction.
func (u *OrderUseCase) Checkout(ctx context.Context, userID int64, items []model.CheckoutItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidQuantity
		}
	}
	return u.orders.Create(ctx, userID, items)
}

// UpdateStatus applies an order status and/or payment status transition.
// Labels are validated against the closed enumerations before any storage
// work; the stock side effects of entering or leaving CANCELLED are handled
// atomically by the repository.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status *model.OrderStatus, paymentStatus *model.PaymentStatus) (*model.Order, error) {
	if status != nil && !ValidOrderStatus(*status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	if paymentStatus != nil && !ValidPaymentStatus(*paymentStatus) {
		return nil, domainErrors.ErrInvalidPaymentStatus
	}
	if status == nil && paymentStatus == nil {
		return u.orders.GetByID(ctx, orderID)
	}
	return u.orders.UpdateStatus(ctx, orderID, repository.StatusUpdate{Status: status, PaymentStatus: paymentStatus})
}

// Get returns an order visible to the requester: owners see their own orders,
// admins see everything.
func (u *OrderUseCase) Get(ctx context.Context, orderID string, requesterID int64, role model.Role) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID && role != model.RoleAdmin {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// ListByUser returns the user's orders sorted by creation time.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// SelectBatchForPaymentCheck returns orders awaiting a payment verdict.
func (u *OrderUseCase) SelectBatchForPaymentCheck(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectBatchForPaymentCheck(ctx, limit)
}
