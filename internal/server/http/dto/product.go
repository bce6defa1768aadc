package dto

// ProductResponse represents a catalog entry.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	InStock     bool    `json:"in_stock"`
}
