package dto

import "github.com/lat08/web-eyewear-sub001/internal/domain/model"

// ValidateCartRequest carries the client's locally stored cart lines.
type ValidateCartRequest struct {
	Items []model.CartLine `json:"items"`
}

// ValidateCartResponse partitions the submitted lines into still
// purchasable entries and removals with human readable reasons.
type ValidateCartResponse struct {
	Valid   []model.ReconciledLine `json:"valid"`
	Removed []model.RemovedLine    `json:"removed"`
}
