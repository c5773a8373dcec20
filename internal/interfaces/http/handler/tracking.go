package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pankecas/backend/internal/infrastructure/tracking"
)

// TrackingHandler exposes the buffered analytics events, mirroring the
// client-side data layer. Only available when the memory sink is
// configured.
type TrackingHandler struct {
	BaseHandler
	sink *tracking.MemorySink
}

// NewTrackingHandler creates a new TrackingHandler
func NewTrackingHandler(sink *tracking.MemorySink) *TrackingHandler {
	return &TrackingHandler{sink: sink}
}

// RegisterRoutes registers tracking routes
func (h *TrackingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tracking := rg.Group("/tracking")
	{
		tracking.GET("/events", h.GetEvents)
		tracking.DELETE("/events", h.ClearEvents)
	}
}

// GetEvents returns all buffered analytics events in push order
func (h *TrackingHandler) GetEvents(c *gin.Context) {
	h.Success(c, h.sink.Events())
}

// ClearEvents drops all buffered analytics events
func (h *TrackingHandler) ClearEvents(c *gin.Context) {
	h.sink.Reset()
	h.NoContent(c)
}
