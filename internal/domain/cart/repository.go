package cart

import "context"

// Repository stores carts keyed by session ID.
// Carts are ephemeral: implementations may evict them after a TTL and
// must return a fresh empty cart for unknown sessions.
type Repository interface {
	// Get returns the cart for the session, creating an empty one if absent
	Get(ctx context.Context, sessionID string) (*Cart, error)
	// Save persists the cart for the session
	Save(ctx context.Context, sessionID string, c *Cart) error
	// Delete discards the cart for the session
	Delete(ctx context.Context, sessionID string) error
}
