package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
	"github.com/lat08/web-eyewear-sub001/internal/events"
)

// TokenParserStub implements the middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Role    model.Role
	Err     error
	ParseFn func(string) (int64, model.Role, error)
}

// ParseToken either delegates to the override or returns the predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, model.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, "", s.Err
	}
	role := s.Role
	if role == "" {
		role = model.RoleCustomer
	}
	return s.ID, role, nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
	ProductFn  func(context.Context, string) (*model.Product, error)
}

// Products returns the configured catalog listing.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Slug: "aviator", Name: "Aviator", Price: 120, Stock: 5}}, nil
}

// Product returns the configured product for a slug.
func (s CatalogFacadeStub) Product(ctx context.Context, slug string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, slug)
	}
	return &model.Product{ID: 1, Slug: slug, Name: "Aviator", Price: 120, Stock: 5}, nil
}

// CartFacadeStub simulates cart reconciliation.
type CartFacadeStub struct {
	ReconcileFn func(context.Context, []model.CartLine) ([]model.ReconciledLine, []model.RemovedLine, error)
}

// ReconcileCart delegates to the override or echoes every line back as valid.
func (s CartFacadeStub) ReconcileCart(ctx context.Context, lines []model.CartLine) ([]model.ReconciledLine, []model.RemovedLine, error) {
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, lines)
	}
	valid := make([]model.ReconciledLine, 0, len(lines))
	for _, line := range lines {
		valid = append(valid, model.ReconciledLine{CartLine: line, MaxStock: line.Quantity})
	}
	return valid, nil, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn     func(context.Context, int64, []model.CheckoutItem) (*model.Order, error)
	OrderFn        func(context.Context, string, int64, model.Role) (*model.Order, error)
	OrdersFn       func(context.Context, int64) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, *model.OrderStatus, *model.PaymentStatus) (*model.Order, error)
}

// Checkout delegates to the override or returns a default pending order.
func (s OrderFacadeStub) Checkout(ctx context.Context, userID int64, items []model.CheckoutItem) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, items)
	}
	return &model.Order{ID: "order-1", UserID: userID, Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending}, nil
}

// Order returns the configured order.
func (s OrderFacadeStub) Order(ctx context.Context, orderID string, requesterID int64, role model.Role) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID, requesterID, role)
	}
	return &model.Order{ID: orderID, UserID: requesterID}, nil
}

// Orders returns predefined orders for the given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: "order-1", UserID: userID}}, nil
}

// UpdateOrderStatus delegates to the override or echoes the applied fields.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID string, status *model.OrderStatus, paymentStatus *model.PaymentStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, paymentStatus)
	}
	order := &model.Order{ID: orderID, Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending}
	if status != nil {
		order.Status = *status
	}
	if paymentStatus != nil {
		order.PaymentStatus = *paymentStatus
	}
	return order, nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	TokenParserStub
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
}

// OrderUpdateCall stores information about UpdateOrderStatus invocations.
type OrderUpdateCall struct {
	OrderID       string
	Status        *model.OrderStatus
	PaymentStatus *model.PaymentStatus
}

// WorkerFacadeStub mimics worker interactions with the storefront facade.
type WorkerFacadeStub struct {
	Orders          [][]model.Order
	OrdersFn        func(context.Context, int) ([]model.Order, error)
	CheckFn         func(context.Context, string) (*model.PaymentResult, error)
	UpdateFn        func(context.Context, string, *model.OrderStatus, *model.PaymentStatus) (*model.Order, error)
	Updates         []OrderUpdateCall
	mu              sync.Mutex
	ordersCallCount int32
}

// Lock exposes the internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases a previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// OrdersForPaymentCheck returns batches from the configured queue.
func (s *WorkerFacadeStub) OrdersForPaymentCheck(ctx context.Context, limit int) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.ordersCallCount, 1)
	if int(call) <= len(s.Orders) {
		return s.Orders[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// CheckPayment returns configured payment data.
func (s *WorkerFacadeStub) CheckPayment(ctx context.Context, orderID string) (*model.PaymentResult, error) {
	if s.CheckFn != nil {
		return s.CheckFn(ctx, orderID)
	}
	return &model.PaymentResult{OrderID: orderID, Status: model.PaymentStatusPaid}, nil
}

// UpdateOrderStatus records update requests.
func (s *WorkerFacadeStub) UpdateOrderStatus(ctx context.Context, orderID string, status *model.OrderStatus, paymentStatus *model.PaymentStatus) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, status, paymentStatus)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, OrderUpdateCall{OrderID: orderID, Status: status, PaymentStatus: paymentStatus})
	return &model.Order{ID: orderID}, nil
}

// PaymentProviderStub fetches payment information for tests.
type PaymentProviderStub struct {
	FetchFn func(context.Context, string) (*model.PaymentResult, error)
	Result  *model.PaymentResult
	Err     error
}

// Fetch returns the configured response or a default paid status.
func (s PaymentProviderStub) Fetch(ctx context.Context, orderID string) (*model.PaymentResult, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, orderID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Result != nil {
		return s.Result, nil
	}
	return &model.PaymentResult{OrderID: orderID, Status: model.PaymentStatusPaid}, nil
}

// PublisherStub records published event envelopes.
type PublisherStub struct {
	mu        sync.Mutex
	Envelopes []events.Envelope
}

// Publish appends the envelope to the recorded list.
func (s *PublisherStub) Publish(envelope events.Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Envelopes = append(s.Envelopes, envelope)
}

// Start is a no-op for tests.
func (s *PublisherStub) Start(context.Context) {}

// Close is a no-op for tests.
func (s *PublisherStub) Close() {}

// Published returns a copy of recorded envelopes.
func (s *PublisherStub) Published() []events.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]events.Envelope, len(s.Envelopes))
	copy(out, s.Envelopes)
	return out
}
