package catalog

import (
	"fmt"

	"github.com/pankecas/backend/internal/domain/shared"
)

// Catalog is the read-only menu accessor: an ordered item list plus an
// ordered category list, loaded once before the ordering flow operates.
// Lookups return pointers into the catalog; callers must treat them as
// shared immutable data.
type Catalog struct {
	items      []Product
	categories []Category
	byID       map[int]*Product
}

// NewCatalog builds a catalog from ordered items and categories
func NewCatalog(items []Product, categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, shared.NewDomainError("EMPTY_CATALOG", "Catalog requires at least one category")
	}

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if known[c.ID] {
			return nil, shared.NewDomainError("DUPLICATE_CATEGORY", fmt.Sprintf("Duplicate category %q", c.ID))
		}
		known[c.ID] = true
	}

	cat := &Catalog{
		items:      items,
		categories: categories,
		byID:       make(map[int]*Product, len(items)),
	}

	for i := range cat.items {
		p := &cat.items[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := cat.byID[p.ID]; exists {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT", fmt.Sprintf("Duplicate product ID %d", p.ID))
		}
		if !known[p.Category] {
			return nil, shared.NewDomainError("UNKNOWN_CATEGORY", fmt.Sprintf("Product %d references unknown category %q", p.ID, p.Category))
		}
		cat.byID[p.ID] = p
	}

	return cat, nil
}

// Items returns all products in menu order
func (c *Catalog) Items() []Product {
	return c.items
}

// Categories returns all categories in display order
func (c *Catalog) Categories() []Category {
	return c.categories
}

// ItemByID looks up a product by its stable identifier
func (c *Catalog) ItemByID(id int) (*Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ItemsByCategory returns the products of one category in menu order
func (c *Catalog) ItemsByCategory(categoryID string) []Product {
	var result []Product
	for _, p := range c.items {
		if p.Category == categoryID {
			result = append(result, p)
		}
	}
	return result
}

// SectionIDs returns the category IDs observed by the scroll-spy:
// every category except the synthetic overview tab, in display order
func (c *Catalog) SectionIDs() []string {
	ids := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		if cat.IsOverview() {
			continue
		}
		ids = append(ids, cat.ID)
	}
	return ids
}

// HasCategory reports whether the category exists in the catalog
func (c *Catalog) HasCategory(categoryID string) bool {
	for _, cat := range c.categories {
		if cat.ID == categoryID {
			return true
		}
	}
	return false
}
