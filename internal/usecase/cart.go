package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/lat08/web-eyewear-sub001/internal/domain/errors"
	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
	"github.com/lat08/web-eyewear-sub001/internal/domain/repository"
)

const reasonProductGone = "product no longer exists"

// CartUseCase re-derives a client-held cart against authoritative catalog
// state. It is read-only; the client persists the reconciled cart afterwards.
type CartUseCase struct {
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{products: products}
}

// Reconcile partitions the submitted lines into still-purchasable and
// must-be-removed, preserving input order within each partition. Business
// rejections never abort the batch; any storage failure aborts the whole call.
func (u *CartUseCase) Reconcile(ctx context.Context, lines []model.CartLine) ([]model.ReconciledLine, []model.RemovedLine, error) {
	valid := make([]model.ReconciledLine, 0, len(lines))
	removed := make([]model.RemovedLine, 0)

	for _, line := range lines {
		product, err := u.resolveProduct(ctx, line)
		if err != nil {
			return nil, nil, err
		}
		if product == nil {
			removed = append(removed, model.RemovedLine{CartLine: line, Reason: reasonProductGone})
			continue
		}
		if !product.InStock() {
			removed = append(removed, model.RemovedLine{
				CartLine: line,
				Reason:   fmt.Sprintf("product '%s' is out of stock", product.Name),
			})
			continue
		}
		valid = append(valid, buildReconciledLine(line, product))
	}

	return valid, removed, nil
}

// resolveProduct looks the product up by id first and falls back to the slug,
// repairing stale client-cached identifiers. A nil product without error means
// neither lookup succeeded.
func (u *CartUseCase) resolveProduct(ctx context.Context, line model.CartLine) (*model.Product, error) {
	product, err := u.products.GetByID(ctx, line.ProductID)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}
	if product != nil {
		return product, nil
	}
	if line.Slug == "" {
		return nil, nil
	}
	product, err = u.products.GetBySlug(ctx, line.Slug)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

// buildReconciledLine copies a fixed set of fields from the authoritative
// product over the client line. Quantity intent and prescription powers are
// the only client fields kept as-is; the image falls back to the client copy
// only when the catalog has none.
func buildReconciledLine(line model.CartLine, product *model.Product) model.ReconciledLine {
	quantity := line.Quantity
	if quantity > product.Stock {
		quantity = product.Stock
	}

	image := product.Image
	if image == "" {
		image = line.Image
	}

	return model.ReconciledLine{
		CartLine: model.CartLine{
			ProductID:  product.ID,
			Slug:       product.Slug,
			Name:       product.Name,
			Image:      image,
			Price:      product.Price,
			Quantity:   quantity,
			LeftPower:  line.LeftPower,
			RightPower: line.RightPower,
		},
		QuantityAdjusted: quantity != line.Quantity,
		MaxStock:         product.Stock,
	}
}
