package cache

import "time"

const (
	// Catalog entries: product:id:{id} and product:slug:{slug} -> JSON model.Product.
	keyProductByID   = "product:id:%d"
	keyProductBySlug = "product:slug:%s"
)

// DefaultTTL bounds staleness of cached catalog rows. Stock counts drift
// between writes, so the window stays short.
const DefaultTTL = 2 * time.Minute
