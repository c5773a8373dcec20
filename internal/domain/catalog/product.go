package catalog

import (
	"github.com/pankecas/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a single menu item
// Products are read-only: they are loaded once from the menu source and
// shared by reference across carts, never copied or mutated by the core
type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
}

// Validate checks that the product is well-formed
func (p Product) Validate() error {
	if p.ID <= 0 {
		return shared.NewDomainError("INVALID_PRODUCT_ID", "Product ID must be positive")
	}
	if p.Name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if p.Price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if p.Category == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Product category cannot be empty")
	}
	return nil
}
