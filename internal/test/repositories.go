package test

import (
	"context"

	domainErrors "github.com/lat08/web-eyewear-sub001/internal/domain/errors"
	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
	"github.com/lat08/web-eyewear-sub001/internal/domain/repository"
)

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Products []model.Product
	Err      error
}

// List returns the configured catalog.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Products, nil
}

// GetByID fetches a product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetBySlug fetches a product by slug or returns not found.
func (s *ProductRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Products {
		if s.Products[i].Slug == slug {
			return &s.Products[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, int64, []model.CheckoutItem) (*model.Order, error)
	GetByIDFn      func(context.Context, string) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, repository.StatusUpdate) (*model.Order, error)
	SelectBatchFn  func(context.Context, int) ([]model.Order, error)
}

// Create delegates to the override or returns a pending order.
func (s *OrderRepositoryStub) Create(ctx context.Context, userID int64, items []model.CheckoutItem) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, items)
	}
	return &model.Order{ID: "order-1", UserID: userID, Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending}, nil
}

// GetByID delegates to the override or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser delegates to the override or returns an empty history.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

// UpdateStatus delegates to the override or returns not found.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, update repository.StatusUpdate) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, update)
	}
	return nil, domainErrors.ErrNotFound
}

// SelectBatchForPaymentCheck delegates to the override or returns no orders.
func (s *OrderRepositoryStub) SelectBatchForPaymentCheck(ctx context.Context, limit int) ([]model.Order, error) {
	if s.SelectBatchFn != nil {
		return s.SelectBatchFn(ctx, limit)
	}
	return nil, nil
}
