package browse

import "context"

// Repository stores scroll-spy states keyed by session ID.
// Like carts, states are ephemeral: implementations may evict them after
// a TTL and return nil for unknown sessions.
type Repository interface {
	// Get returns the state for the session, or nil when absent
	Get(ctx context.Context, sessionID string) (*State, error)
	// Save persists the state for the session
	Save(ctx context.Context, sessionID string, s *State) error
	// Delete discards the state for the session
	Delete(ctx context.Context, sessionID string) error
}
