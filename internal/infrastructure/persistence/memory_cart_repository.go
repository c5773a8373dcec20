package persistence

import (
	"context"
	"sync"

	"github.com/pankecas/backend/internal/domain/cart"
)

// MemoryCartRepository keeps carts in process memory. It is the default
// store for single-instance deployments and for tests.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*cart.Cart
}

// NewMemoryCartRepository creates an empty in-memory cart store
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string]*cart.Cart)}
}

// Get returns the cart for the session, creating an empty one if absent
func (r *MemoryCartRepository) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	r.mu.RLock()
	c, ok := r.carts[sessionID]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}
	return cart.New(), nil
}

// Save persists the cart for the session
func (r *MemoryCartRepository) Save(_ context.Context, sessionID string, c *cart.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[sessionID] = c
	return nil
}

// Delete discards the cart for the session
func (r *MemoryCartRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

var _ cart.Repository = (*MemoryCartRepository)(nil)
