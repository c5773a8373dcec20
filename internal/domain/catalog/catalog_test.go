package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategories() []Category {
	return []Category{
		{ID: OverviewCategoryID, DisplayName: "Todos"},
		{ID: "doces", DisplayName: "Doces"},
		{ID: "salgadas", DisplayName: "Salgadas"},
	}
}

func testItems() []Product {
	return []Product{
		{ID: 1, Name: "Pankeca Clássica", Price: decimal.NewFromFloat(18.00), Category: "salgadas", Image: "/classica.jpg"},
		{ID: 2, Name: "Pankeca de Chocolate", Price: decimal.NewFromFloat(15.50), Category: "doces", Image: "/chocolate.jpg"},
		{ID: 3, Name: "Pankeca de Frango", Price: decimal.NewFromFloat(19.00), Category: "salgadas", Image: "/frango.jpg"},
	}
}

func TestNewCatalog(t *testing.T) {
	cat, err := NewCatalog(testItems(), testCategories())
	require.NoError(t, err)
	assert.Len(t, cat.Items(), 3)
	assert.Len(t, cat.Categories(), 3)
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		items      []Product
		categories []Category
	}{
		{
			name:       "no categories",
			items:      testItems(),
			categories: nil,
		},
		{
			name: "duplicate product id",
			items: []Product{
				{ID: 1, Name: "A", Price: decimal.NewFromInt(1), Category: "doces"},
				{ID: 1, Name: "B", Price: decimal.NewFromInt(2), Category: "doces"},
			},
			categories: testCategories(),
		},
		{
			name: "unknown category",
			items: []Product{
				{ID: 1, Name: "A", Price: decimal.NewFromInt(1), Category: "bebidas"},
			},
			categories: testCategories(),
		},
		{
			name: "negative price",
			items: []Product{
				{ID: 1, Name: "A", Price: decimal.NewFromInt(-1), Category: "doces"},
			},
			categories: testCategories(),
		},
		{
			name:  "duplicate category",
			items: nil,
			categories: []Category{
				{ID: "doces", DisplayName: "Doces"},
				{ID: "doces", DisplayName: "Doces de novo"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.items, tt.categories)
			assert.Error(t, err)
		})
	}
}

func TestCatalog_ItemByID(t *testing.T) {
	cat, err := NewCatalog(testItems(), testCategories())
	require.NoError(t, err)

	p, ok := cat.ItemByID(1)
	require.True(t, ok)
	assert.Equal(t, "Pankeca Clássica", p.Name)

	_, ok = cat.ItemByID(99)
	assert.False(t, ok)
}

func TestCatalog_ItemsByCategory(t *testing.T) {
	cat, err := NewCatalog(testItems(), testCategories())
	require.NoError(t, err)

	salgadas := cat.ItemsByCategory("salgadas")
	require.Len(t, salgadas, 2)
	assert.Equal(t, 1, salgadas[0].ID)
	assert.Equal(t, 3, salgadas[1].ID)

	assert.Empty(t, cat.ItemsByCategory("bebidas"))
}

func TestCatalog_SectionIDs(t *testing.T) {
	cat, err := NewCatalog(testItems(), testCategories())
	require.NoError(t, err)

	assert.Equal(t, []string{"doces", "salgadas"}, cat.SectionIDs())
}

func TestCatalog_HasCategory(t *testing.T) {
	cat, err := NewCatalog(testItems(), testCategories())
	require.NoError(t, err)

	assert.True(t, cat.HasCategory(OverviewCategoryID))
	assert.True(t, cat.HasCategory("doces"))
	assert.False(t, cat.HasCategory("bebidas"))
}
