package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pankecas/backend/internal/application/ordering"
)

// CartHandler serves the session cart operations
type CartHandler struct {
	BaseHandler
	service *ordering.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(service *ordering.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items", h.ChangeQuantity)
		cart.DELETE("/items/:product_id", h.RemoveItem)
	}
}

// GetCart returns the session cart
func (h *CartHandler) GetCart(c *gin.Context) {
	resp, err := h.service.View(c.Request.Context(), getSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddItem adds one unit of a product to the session cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req ordering.AddItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.AddItem(c.Request.Context(), getSessionID(c), req.ProductID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ChangeQuantity adjusts a cart line by one unit
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	var req ordering.ChangeQuantityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.ChangeQuantity(c.Request.Context(), getSessionID(c), req.ProductID, req.Action)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveItem deletes a product line from the session cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		h.BadRequest(c, "Product ID must be numeric")
		return
	}

	resp, err := h.service.RemoveItem(c.Request.Context(), getSessionID(c), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
