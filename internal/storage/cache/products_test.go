package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domainErrors "github.com/lat08/web-eyewear-sub001/internal/domain/errors"
	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
)

type stubProducts struct {
	calls int
	byID  map[int64]*model.Product
}

func (s *stubProducts) List(context.Context) ([]model.Product, error) {
	s.calls++
	return nil, nil
}

func (s *stubProducts) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	s.calls++
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *stubProducts) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	s.calls++
	return nil, domainErrors.ErrNotFound
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestCacheDegradesWhenRedisUnreachable(t *testing.T) {
	source := &stubProducts{byID: map[int64]*model.Product{
		1: {ID: 1, Slug: "aviator", Name: "Aviator", Stock: 4},
	}}
	// Nothing listens on this port, every redis call fails fast.
	c := NewProductCache(source, NewClient("127.0.0.1:1"), time.Minute, discardLogger())

	product, err := c.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Slug != "aviator" {
		t.Fatalf("unexpected product %+v", product)
	}
	if source.calls != 1 {
		t.Fatalf("expected fallback to the repository, got %d calls", source.calls)
	}

	if _, err := c.GetByID(context.Background(), 99); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found to pass through, got %v", err)
	}
}

func TestCacheListBypassesRedis(t *testing.T) {
	source := &stubProducts{}
	c := NewProductCache(source, NewClient("127.0.0.1:1"), time.Minute, discardLogger())

	if _, err := c.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected direct repository list, got %d calls", source.calls)
	}
}

func TestDefaultTTLApplied(t *testing.T) {
	c := NewProductCache(&stubProducts{}, NewClient("127.0.0.1:1"), 0, discardLogger())
	if c.ttl != DefaultTTL {
		t.Fatalf("expected default ttl, got %v", c.ttl)
	}
}
