package model

import "time"

// Product is the authoritative catalog record. Stock is the only field the
// reconciliation core ever mutates.
type Product struct {
	ID          int64
	Slug        string
	Name        string
	Description string
	Image       string
	Price       float64
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InStock reports whether the product can currently be purchased.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
