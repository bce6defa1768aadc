package model

// CartLine is a client-submitted cart entry. The cart lives entirely on the
// client; every field except the quantity intent may be overridden by
// authoritative catalog state during reconciliation. LeftPower/RightPower are
// prescription values carried through untouched.
type CartLine struct {
	ProductID  int64    `json:"product_id"`
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	Image      string   `json:"image"`
	Price      float64  `json:"price"`
	Quantity   int      `json:"quantity"`
	LeftPower  *float64 `json:"left_power,omitempty"`
	RightPower *float64 `json:"right_power,omitempty"`
}

// ReconciledLine is a cart line confirmed against the catalog. Identity, name,
// slug, price and image hold server truth; MaxStock lets the client clamp
// further quantity edits.
type ReconciledLine struct {
	CartLine
	QuantityAdjusted bool `json:"quantity_adjusted"`
	MaxStock         int  `json:"max_stock"`
}

// RemovedLine is a cart line that can no longer be purchased, with a
// human-readable reason.
type RemovedLine struct {
	CartLine
	Reason string `json:"reason"`
}
