package app

import (
	"context"

	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
	"github.com/lat08/web-eyewear-sub001/internal/events"
	"github.com/lat08/web-eyewear-sub001/internal/pkg/auth"
	"github.com/lat08/web-eyewear-sub001/internal/usecase"
)

type PaymentProvider interface {
	Fetch(ctx context.Context, orderID string) (*model.PaymentResult, error)
}

// StorefrontFacade aggregates use cases behind a single application surface.
type StorefrontFacade struct {
	catalog   *usecase.CatalogUseCase
	orders    *usecase.OrderUseCase
	cart      *usecase.CartUseCase
	tokens    auth.Strategy
	payments  PaymentProvider
	publisher events.Publisher
}

func NewStorefrontFacade(
	catalog *usecase.CatalogUseCase,
	orders *usecase.OrderUseCase,
	cart *usecase.CartUseCase,
	tokens auth.Strategy,
	payments PaymentProvider,
	publisher events.Publisher,
) *StorefrontFacade {
	return &StorefrontFacade{
		catalog:   catalog,
		orders:    orders,
		cart:      cart,
		tokens:    tokens,
		payments:  payments,
		publisher: publisher,
	}
}

func (f *StorefrontFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.tokens.ParseToken(token)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, slug string) (*model.Product, error) {
	return f.catalog.GetBySlug(ctx, slug)
}

func (f *StorefrontFacade) ReconcileCart(ctx context.Context, lines []model.CartLine) ([]model.ReconciledLine, []model.RemovedLine, error) {
	return f.cart.Reconcile(ctx, lines)
}

func (f *StorefrontFacade) Checkout(ctx context.Context, userID int64, items []model.CheckoutItem) (*model.Order, error) {
	order, err := f.orders.Checkout(ctx, userID, items)
	if err != nil {
		return nil, err
	}
	if envelope, err := events.OrderCreatedEvent(order); err == nil {
		f.publisher.Publish(envelope)
	}
	return order, nil
}

func (f *StorefrontFacade) Order(ctx context.Context, orderID string, requesterID int64, role model.Role) (*model.Order, error) {
	return f.orders.Get(ctx, orderID, requesterID, role)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, orderID string, status *model.OrderStatus, paymentStatus *model.PaymentStatus) (*model.Order, error) {
	order, err := f.orders.UpdateStatus(ctx, orderID, status, paymentStatus)
	if err != nil {
		return nil, err
	}
	if envelope, err := events.OrderStatusChangedEvent(order); err == nil {
		f.publisher.Publish(envelope)
	}
	return order, nil
}

func (f *StorefrontFacade) OrdersForPaymentCheck(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.SelectBatchForPaymentCheck(ctx, limit)
}

func (f *StorefrontFacade) CheckPayment(ctx context.Context, orderID string) (*model.PaymentResult, error) {
	return f.payments.Fetch(ctx, orderID)
}
