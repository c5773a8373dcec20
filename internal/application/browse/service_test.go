package browse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pankecas/backend/internal/infrastructure/config"
	"github.com/pankecas/backend/internal/infrastructure/menu"
	"github.com/pankecas/backend/internal/infrastructure/persistence"
)

const testMenu = `{
  "categories": [
    {"id": "todos", "display_name": "Todos"},
    {"id": "salgadas", "display_name": "Salgadas"},
    {"id": "doces", "display_name": "Doces"}
  ],
  "items": [
    {"id": 1, "name": "Pankeca Clássica", "price": 18.00, "category": "salgadas"},
    {"id": 2, "name": "Pankeca de Chocolate", "price": 15.50, "category": "doces"}
  ]
}`

func newService(t *testing.T) *Service {
	t.Helper()

	cat, err := menu.Parse([]byte(testMenu))
	require.NoError(t, err)

	observer := config.ObserverConfig{TopOffsetPx: 128, BottomExcludedPercent: 65}
	return NewService(cat, persistence.NewMemoryBrowseRepository(), observer, zap.NewNop())
}

func TestService_Menu(t *testing.T) {
	s := newService(t)

	resp := s.Menu(context.Background())
	assert.Len(t, resp.Categories, 3)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, "-128px 0px -65% 0px", resp.Observer.RootMargin)
	assert.Equal(t, []string{"salgadas", "doces"}, resp.Observer.Sections)
	assert.Equal(t, "18.00", resp.Items[0].Price)
}

func TestService_ItemsByCategory(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	all := s.ItemsByCategory(ctx, "todos")
	assert.Len(t, all, 2)

	doces := s.ItemsByCategory(ctx, "doces")
	require.Len(t, doces, 1)
	assert.Equal(t, 2, doces[0].ID)

	assert.Empty(t, s.ItemsByCategory(ctx, "fantasma"))
}

func TestService_State_InitialOverview(t *testing.T) {
	s := newService(t)

	resp, err := s.State(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "todos", resp.ActiveFilter)
	assert.Equal(t, "salgadas", resp.Highlighted)
}

func TestService_SelectFilter(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	resp, err := s.SelectFilter(ctx, "s1", "doces")
	require.NoError(t, err)
	assert.Equal(t, "doces", resp.ActiveFilter)
	assert.Equal(t, "doces", resp.Highlighted)
	require.NotNil(t, resp.Scroll)
	assert.Equal(t, "doces", resp.Scroll.ToCategory)
	assert.False(t, resp.Scroll.TrackingEnabled)

	// The selection is persisted per session
	state, err := s.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "doces", state.ActiveFilter)

	resp, err = s.SelectFilter(ctx, "s1", "todos")
	require.NoError(t, err)
	require.NotNil(t, resp.Scroll)
	assert.True(t, resp.Scroll.ToTop)
	assert.True(t, resp.Scroll.TrackingEnabled)

	_, err = s.SelectFilter(ctx, "s1", "fantasma")
	assert.Error(t, err)
}

func TestService_ReportVisibility(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	resp, err := s.ReportVisibility(ctx, "s1", map[string]float64{"doces": 0.8})
	require.NoError(t, err)
	assert.True(t, resp.Changed)
	assert.Equal(t, "doces", resp.Highlighted)

	// A weaker competitor does not change the highlight
	resp, err = s.ReportVisibility(ctx, "s1", map[string]float64{"salgadas": 0.3})
	require.NoError(t, err)
	assert.False(t, resp.Changed)
	assert.Equal(t, "doces", resp.Highlighted)
}

func TestService_ReportVisibility_IgnoredWhenFiltered(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.SelectFilter(ctx, "s1", "salgadas")
	require.NoError(t, err)

	resp, err := s.ReportVisibility(ctx, "s1", map[string]float64{"doces": 0.9})
	require.NoError(t, err)
	assert.False(t, resp.Changed)
	assert.Equal(t, "salgadas", resp.Highlighted)
}
