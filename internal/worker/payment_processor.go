package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/lat08/web-eyewear-sub001/internal/adapter/payments"
	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required by the worker.
type StorefrontFacade interface {
	OrdersForPaymentCheck(ctx context.Context, limit int) ([]model.Order, error)
	CheckPayment(ctx context.Context, orderID string) (*model.PaymentResult, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status *model.OrderStatus, paymentStatus *model.PaymentStatus) (*model.Order, error)
}

// PaymentProcessor polls the payment provider and settles order payment
// statuses concurrently.
type PaymentProcessor struct {
	facade       StorefrontFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPaymentProcessor constructs the payment processor worker pool.
func NewPaymentProcessor(facade StorefrontFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *PaymentProcessor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PaymentProcessor{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (p *PaymentProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *PaymentProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *PaymentProcessor) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *PaymentProcessor) fetchAndDispatch(ctx context.Context) {
	orders, err := p.facade.OrdersForPaymentCheck(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch orders for payment check failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- order:
		}
	}
}

func (p *PaymentProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleOrder(ctx, order)
		}
	}
}

func (p *PaymentProcessor) handleOrder(ctx context.Context, order model.Order) {
	result, err := p.facade.CheckPayment(ctx, order.ID)
	if err != nil {
		switch e := err.(type) {
		case payments.TooManyRequestsError:
			p.logger.Warn("payment provider rate limited", slog.Duration("retry_after", e.RetryAfter))
			time.Sleep(e.RetryAfter)
		default:
			if errors.Is(err, payments.ErrPaymentNotFound) {
				return
			}
			p.logger.Error("payment fetch failed", slog.String("order", order.ID), slog.String("error", err.Error()))
		}
		return
	}

	paymentStatus := result.Status
	var status *model.OrderStatus
	switch paymentStatus {
	case model.PaymentStatusPaid:
		// A settled payment moves a fresh order into fulfillment.
		if order.Status == model.OrderStatusPending {
			processing := model.OrderStatusProcessing
			status = &processing
		}
	case model.PaymentStatusFailed:
		cancelled := model.OrderStatusCancelled
		status = &cancelled
	case model.PaymentStatusPending:
		return
	}

	if _, err := p.facade.UpdateOrderStatus(ctx, order.ID, status, &paymentStatus); err != nil {
		p.logger.Error("update order status failed", slog.String("order", order.ID), slog.String("error", err.Error()))
	}
}
