package app

import (
	"context"
	"testing"
	"time"

	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
	"github.com/lat08/web-eyewear-sub001/internal/domain/repository"
	"github.com/lat08/web-eyewear-sub001/internal/events"
	"github.com/lat08/web-eyewear-sub001/internal/pkg/auth"
	testhelpers "github.com/lat08/web-eyewear-sub001/internal/test"
	"github.com/lat08/web-eyewear-sub001/internal/usecase"
)

func newTestFacade(orders *testhelpers.OrderRepositoryStub, publisher events.Publisher) *StorefrontFacade {
	products := &testhelpers.ProductRepositoryStub{Products: []model.Product{
		{ID: 1, Slug: "aviator", Name: "Aviator", Price: 120, Stock: 5},
	}}
	return NewStorefrontFacade(
		usecase.NewCatalogUseCase(products),
		usecase.NewOrderUseCase(orders),
		usecase.NewCartUseCase(products),
		auth.NewHMACStrategy("secret", auth.Options{TTL: time.Minute}),
		testhelpers.PaymentProviderStub{},
		publisher,
	)
}

func TestFacadeCheckoutPublishesEvent(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	facade := newTestFacade(&testhelpers.OrderRepositoryStub{}, publisher)

	order, err := facade.Checkout(context.Background(), 7, []model.CheckoutItem{{ProductID: 1, Quantity: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID == "" {
		t.Fatal("expected order id")
	}

	published := publisher.Published()
	if len(published) != 1 || published[0].Type != events.TypeOrderCreated {
		t.Fatalf("expected order created event, got %+v", published)
	}
}

func TestFacadeUpdateOrderStatusPublishesEvent(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	orders := &testhelpers.OrderRepositoryStub{
		UpdateStatusFn: func(ctx context.Context, orderID string, update repository.StatusUpdate) (*model.Order, error) {
			return &model.Order{ID: orderID, Status: *update.Status}, nil
		},
	}
	facade := newTestFacade(orders, publisher)

	status := model.OrderStatusCancelled
	order, err := facade.UpdateOrderStatus(context.Background(), "order-1", &status, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("unexpected order %+v", order)
	}

	published := publisher.Published()
	if len(published) != 1 || published[0].Type != events.TypeOrderStatusChanged {
		t.Fatalf("expected status changed event, got %+v", published)
	}
}

func TestFacadeUpdateOrderStatusSkipsEventOnError(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	facade := newTestFacade(&testhelpers.OrderRepositoryStub{}, publisher)

	status := model.OrderStatusCancelled
	if _, err := facade.UpdateOrderStatus(context.Background(), "missing", &status, nil); err == nil {
		t.Fatal("expected not found error from stub")
	}
	if len(publisher.Published()) != 0 {
		t.Fatal("no event should be published on failed update")
	}
}

func TestFacadeTokenRoundTrip(t *testing.T) {
	facade := newTestFacade(&testhelpers.OrderRepositoryStub{}, &testhelpers.PublisherStub{})

	token, err := auth.NewHMACStrategy("secret", auth.Options{TTL: time.Minute}).IssueToken(42, model.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	userID, role, err := facade.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 || role != model.RoleAdmin {
		t.Fatalf("unexpected claims %d %s", userID, role)
	}
}

func TestFacadeReconcileCart(t *testing.T) {
	facade := newTestFacade(&testhelpers.OrderRepositoryStub{}, &testhelpers.PublisherStub{})

	valid, removed, err := facade.ReconcileCart(context.Background(), []model.CartLine{{ProductID: 1, Quantity: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(valid) != 1 || len(removed) != 0 {
		t.Fatalf("unexpected partition: %d valid, %d removed", len(valid), len(removed))
	}
}

func TestFacadeCheckPayment(t *testing.T) {
	facade := newTestFacade(&testhelpers.OrderRepositoryStub{}, &testhelpers.PublisherStub{})

	result, err := facade.CheckPayment(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != model.PaymentStatusPaid {
		t.Fatalf("unexpected payment status %s", result.Status)
	}
}
