package browse

import (
	"fmt"
	"sort"

	"github.com/pankecas/backend/internal/domain/catalog"
	"github.com/pankecas/backend/internal/domain/shared"
)

// ScrollAction tells the UI layer how to react to a filter change
type ScrollAction struct {
	// ToTop scrolls the page back to the top (entering overview mode)
	ToTop bool `json:"to_top"`
	// ToCategory scrolls the named category section into view
	ToCategory string `json:"to_category,omitempty"`
	// TrackingEnabled reports whether section visibility should be observed
	TrackingEnabled bool `json:"tracking_enabled"`
}

// State is the scroll-spy state for one session. ActiveFilter is the
// category the customer explicitly selected; Highlighted is the category
// tab currently emphasized, derived from section visibility while the
// overview filter is active.
//
// Regions holds the observed section anchors and their last reported
// visibility ratio. It is nil in filtered mode: observation is attached
// only while the overview is shown and torn down on every exit.
type State struct {
	ActiveFilter string             `json:"active_filter"`
	Highlighted  string             `json:"highlighted,omitempty"`
	Regions      map[string]float64 `json:"regions,omitempty"`
}

// NewState returns the initial overview state for the given catalog
func NewState(c *catalog.Catalog) *State {
	s := &State{}
	s.enterOverview(c.SectionIDs())
	return s
}

// InOverview returns true while the synthetic "all categories" filter is
// active
func (s *State) InOverview() bool {
	return s.ActiveFilter == catalog.OverviewCategoryID
}

// SelectFilter switches the active filter. Selecting a concrete category
// disables visibility tracking and highlights that category; selecting
// the overview re-attaches tracking to every section anchor and resets
// the highlight to the first section.
func (s *State) SelectFilter(filter string, c *catalog.Catalog) (ScrollAction, error) {
	if !c.HasCategory(filter) {
		return ScrollAction{}, shared.NewDomainError("UNKNOWN_CATEGORY", fmt.Sprintf("Unknown category %q", filter))
	}

	if filter == catalog.OverviewCategoryID {
		s.enterOverview(c.SectionIDs())
		return ScrollAction{ToTop: true, TrackingEnabled: true}, nil
	}

	s.ActiveFilter = filter
	s.Highlighted = filter
	s.Regions = nil // tracking torn down outside overview mode
	return ScrollAction{ToCategory: filter, TrackingEnabled: false}, nil
}

// Teardown detaches observation from all anchors, e.g. when the session
// leaves the menu
func (s *State) Teardown() {
	s.Regions = nil
}

// ApplyVisibility folds a batch of visibility-ratio updates into the
// state and re-derives the highlighted category. Updates are ignored
// outside overview mode and for anchors that are not attached. Returns
// true when the highlight changed.
//
// The reduction never thrashes: an anchor whose ratio drops to zero does
// not clear the highlight by itself - only a strictly better visible
// competitor replaces it.
func (s *State) ApplyVisibility(updates map[string]float64) bool {
	if !s.InOverview() || s.Regions == nil {
		return false
	}

	for region, ratio := range updates {
		if _, attached := s.Regions[region]; !attached {
			continue
		}
		if ratio < 0 {
			ratio = 0
		}
		s.Regions[region] = ratio
	}

	next := Highlight(s.Regions, s.Highlighted)
	if next == s.Highlighted {
		return false
	}
	s.Highlighted = next
	return true
}

// enterOverview resets the state to overview mode with tracking attached
func (s *State) enterOverview(sections []string) {
	s.ActiveFilter = catalog.OverviewCategoryID
	s.Regions = make(map[string]float64, len(sections))
	for _, id := range sections {
		s.Regions[id] = 0
	}
	s.Highlighted = ""
	if len(sections) > 0 {
		s.Highlighted = sections[0]
	}
}

// Highlight is the pure selection rule over a region→visibility-ratio
// mapping: among the regions currently visible, pick the one with the
// greatest ratio. The current highlight wins ties and is only displaced
// by a strictly better competitor; when nothing is visible the current
// highlight is kept.
func Highlight(regions map[string]float64, current string) string {
	best := current
	bestRatio := regions[current]

	// Deterministic iteration so equal competitors cannot flicker
	ids := make([]string, 0, len(regions))
	for id := range regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if ratio := regions[id]; ratio > 0 && ratio > bestRatio {
			best = id
			bestRatio = ratio
		}
	}
	return best
}
