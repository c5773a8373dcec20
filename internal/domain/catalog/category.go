package catalog

import "github.com/pankecas/backend/internal/domain/shared"

// OverviewCategoryID is the synthetic category that renders the whole menu
// and drives the scroll-spy overview mode
const OverviewCategoryID = "todos"

// Category represents a menu category tab
type Category struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Validate checks that the category is well-formed
func (c Category) Validate() error {
	if c.ID == "" {
		return shared.NewDomainError("INVALID_CATEGORY_ID", "Category ID cannot be empty")
	}
	if c.DisplayName == "" {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Category display name cannot be empty")
	}
	return nil
}

// IsOverview returns true for the synthetic "all categories" tab
func (c Category) IsOverview() bool {
	return c.ID == OverviewCategoryID
}
