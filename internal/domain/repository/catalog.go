package repository

import (
	"context"

	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
)

// ProductRepository describes read access to the authoritative catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
}
