package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
	"github.com/lat08/web-eyewear-sub001/internal/domain/repository"
)

// NewClient builds a redis client for the given address.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// ProductCache is a read-through layer in front of a ProductRepository.
// Redis failures degrade to direct repository reads.
type ProductCache struct {
	source repository.ProductRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewProductCache(source repository.ProductRepository, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *ProductCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProductCache{source: source, rdb: rdb, ttl: ttl, logger: logger}
}

// List always hits the repository. Full catalog listings are cheap and
// caching them would widen the staleness window for every product at once.
func (c *ProductCache) List(ctx context.Context) ([]model.Product, error) {
	return c.source.List(ctx)
}

func (c *ProductCache) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	key := fmt.Sprintf(keyProductByID, id)
	if product := c.lookup(ctx, key); product != nil {
		return product, nil
	}
	product, err := c.source.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, product)
	return product, nil
}

func (c *ProductCache) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	key := fmt.Sprintf(keyProductBySlug, slug)
	if product := c.lookup(ctx, key); product != nil {
		return product, nil
	}
	product, err := c.source.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	c.store(ctx, product)
	return product, nil
}

func (c *ProductCache) lookup(ctx context.Context, key string) *model.Product {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("product cache read failed", "key", key, "error", err)
		}
		return nil
	}
	var product model.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		c.logger.Warn("product cache entry corrupt", "key", key, "error", err)
		return nil
	}
	return &product
}

func (c *ProductCache) store(ctx context.Context, product *model.Product) {
	raw, err := json.Marshal(product)
	if err != nil {
		return
	}
	pipe := c.rdb.Pipeline()
	pipe.Set(ctx, fmt.Sprintf(keyProductByID, product.ID), raw, c.ttl)
	pipe.Set(ctx, fmt.Sprintf(keyProductBySlug, product.Slug), raw, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("product cache write failed", "product_id", product.ID, "error", err)
	}
}
