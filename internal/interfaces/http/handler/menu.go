package handler

import (
	"github.com/gin-gonic/gin"

	appbrowse "github.com/pankecas/backend/internal/application/browse"
)

// MenuHandler serves the menu and the scroll-spy browsing operations
type MenuHandler struct {
	BaseHandler
	service *appbrowse.Service
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(service *appbrowse.Service) *MenuHandler {
	return &MenuHandler{service: service}
}

// RegisterRoutes registers menu and browsing routes
func (h *MenuHandler) RegisterRoutes(rg *gin.RouterGroup) {
	menu := rg.Group("/menu")
	{
		menu.GET("", h.GetMenu)
		menu.GET("/categories/:id/items", h.GetCategoryItems)
	}

	browse := rg.Group("/browse")
	{
		browse.GET("/state", h.GetState)
		browse.PUT("/filter", h.SelectFilter)
		browse.POST("/visibility", h.ReportVisibility)
	}
}

// GetMenu returns the full menu with category tabs and observation
// settings
func (h *MenuHandler) GetMenu(c *gin.Context) {
	h.Success(c, h.service.Menu(c.Request.Context()))
}

// GetCategoryItems returns the menu items for one category
func (h *MenuHandler) GetCategoryItems(c *gin.Context) {
	items := h.service.ItemsByCategory(c.Request.Context(), c.Param("id"))
	h.Success(c, items)
}

// GetState returns the session scroll-spy state
func (h *MenuHandler) GetState(c *gin.Context) {
	state, err := h.service.State(c.Request.Context(), getSessionID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, state)
}

// SelectFilter switches the active category filter
func (h *MenuHandler) SelectFilter(c *gin.Context) {
	var req appbrowse.SelectFilterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	state, err := h.service.SelectFilter(c.Request.Context(), getSessionID(c), req.Filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, state)
}

// ReportVisibility folds section visibility updates into the session
// state
func (h *MenuHandler) ReportVisibility(c *gin.Context) {
	var req appbrowse.VisibilityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	state, err := h.service.ReportVisibility(c.Request.Context(), getSessionID(c), req.Regions)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, state)
}
