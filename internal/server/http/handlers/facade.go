package handlers

import (
	"context"

	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
)

// CatalogFacade describes catalog reads required by handlers.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, slug string) (*model.Product, error)
}

// CartFacade reconciles client carts against the catalog.
type CartFacade interface {
	ReconcileCart(ctx context.Context, lines []model.CartLine) ([]model.ReconciledLine, []model.RemovedLine, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64, items []model.CheckoutItem) (*model.Order, error)
	Order(ctx context.Context, orderID string, requesterID int64, role model.Role) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status *model.OrderStatus, paymentStatus *model.PaymentStatus) (*model.Order, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	CatalogFacade
	CartFacade
	OrderFacade
}
