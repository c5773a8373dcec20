package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pankecas/backend/internal/application/ordering"
)

// OrderHandler serves order submission
type OrderHandler struct {
	BaseHandler
	service *ordering.CheckoutService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service *ordering.CheckoutService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.SubmitOrder)
}

// SubmitOrder composes and dispatches the order, then returns the
// messaging handoff details. Form completeness is checked by the
// domain so its customer-facing message is returned as-is.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req ordering.SubmitOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), getSessionID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}
