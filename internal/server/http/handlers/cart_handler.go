package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
	"github.com/lat08/web-eyewear-sub001/internal/server/http/dto"
)

// CartHandler validates client carts against current catalog state.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Validate handles POST /api/cart/validate.
func (h *CartHandler) Validate(c *gin.Context) {
	var req dto.ValidateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	valid, removed, err := h.facade.ReconcileCart(c.Request.Context(), req.Items)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	// Clients iterate both lists, so they serialize as [] rather than null.
	if valid == nil {
		valid = []model.ReconciledLine{}
	}
	if removed == nil {
		removed = []model.RemovedLine{}
	}
	c.JSON(http.StatusOK, dto.ValidateCartResponse{Valid: valid, Removed: removed})
}
