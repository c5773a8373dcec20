package browse

import (
	"github.com/pankecas/backend/internal/domain/browse"
	"github.com/pankecas/backend/internal/domain/catalog"
)

// MenuItemResponse is one product in the menu response
type MenuItemResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

// CategoryResponse is one category tab in the menu response
type CategoryResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// ObserverResponse tells the client how to attach section visibility
// observation
type ObserverResponse struct {
	RootMargin string   `json:"root_margin"`
	Sections   []string `json:"sections"`
}

// MenuResponse is the full menu plus the observation settings
type MenuResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Items      []MenuItemResponse `json:"items"`
	Observer   ObserverResponse   `json:"observer"`
}

// SelectFilterRequest switches the active category filter
type SelectFilterRequest struct {
	Filter string `json:"filter" binding:"notblank"`
}

// VisibilityRequest reports a batch of section visibility ratios
type VisibilityRequest struct {
	Regions map[string]float64 `json:"regions" binding:"required"`
}

// StateResponse is the scroll-spy state plus the UI reaction to the
// last operation
type StateResponse struct {
	ActiveFilter string              `json:"active_filter"`
	Highlighted  string              `json:"highlighted,omitempty"`
	Changed      bool                `json:"changed,omitempty"`
	Scroll       *browse.ScrollAction `json:"scroll,omitempty"`
}

// NewStateResponse converts a domain state to its API shape
func NewStateResponse(s *browse.State) *StateResponse {
	return &StateResponse{
		ActiveFilter: s.ActiveFilter,
		Highlighted:  s.Highlighted,
	}
}

func newMenuItems(items []catalog.Product) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, p := range items {
		out = append(out, MenuItemResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price.StringFixed(2),
			Category: p.Category,
			Image:    p.Image,
		})
	}
	return out
}

func newCategories(categories []catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, DisplayName: c.DisplayName})
	}
	return out
}
