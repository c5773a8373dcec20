package browse

import (
	"context"

	"go.uber.org/zap"

	"github.com/pankecas/backend/internal/domain/browse"
	"github.com/pankecas/backend/internal/domain/catalog"
	"github.com/pankecas/backend/internal/infrastructure/config"
)

// Service handles menu browsing: the menu view, category filtering and
// the scroll-spy highlight
type Service struct {
	catalog  *catalog.Catalog
	states   browse.Repository
	observer config.ObserverConfig
	logger   *zap.Logger
}

// NewService creates a new browse service
func NewService(cat *catalog.Catalog, states browse.Repository, observer config.ObserverConfig, logger *zap.Logger) *Service {
	return &Service{
		catalog:  cat,
		states:   states,
		observer: observer,
		logger:   logger,
	}
}

// Menu returns the full menu with category tabs and the observation
// settings the client needs to report section visibility
func (s *Service) Menu(_ context.Context) *MenuResponse {
	return &MenuResponse{
		Categories: newCategories(s.catalog.Categories()),
		Items:      newMenuItems(s.catalog.Items()),
		Observer: ObserverResponse{
			RootMargin: s.observer.RootMargin(),
			Sections:   s.catalog.SectionIDs(),
		},
	}
}

// ItemsByCategory returns the menu filtered to one category, or the
// whole menu for the overview filter
func (s *Service) ItemsByCategory(_ context.Context, categoryID string) []MenuItemResponse {
	if categoryID == catalog.OverviewCategoryID {
		return newMenuItems(s.catalog.Items())
	}
	return newMenuItems(s.catalog.ItemsByCategory(categoryID))
}

// State returns the session scroll-spy state, creating the initial
// overview state on first access
func (s *Service) State(ctx context.Context, sessionID string) (*StateResponse, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return NewStateResponse(state), nil
}

// SelectFilter switches the active category filter for the session
func (s *Service) SelectFilter(ctx context.Context, sessionID, filter string) (*StateResponse, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	action, err := state.SelectFilter(filter, s.catalog)
	if err != nil {
		return nil, err
	}

	if err := s.states.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	s.logger.Debug("filter selected",
		zap.String("session_id", sessionID),
		zap.String("filter", filter))

	resp := NewStateResponse(state)
	resp.Scroll = &action
	return resp, nil
}

// ReportVisibility folds a batch of visibility updates into the session
// state and returns the resulting highlight
func (s *Service) ReportVisibility(ctx context.Context, sessionID string, regions map[string]float64) (*StateResponse, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	changed := state.ApplyVisibility(regions)

	if err := s.states.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	resp := NewStateResponse(state)
	resp.Changed = changed
	return resp, nil
}

func (s *Service) loadState(ctx context.Context, sessionID string) (*browse.State, error) {
	state, err := s.states.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = browse.NewState(s.catalog)
	}
	return state, nil
}
