package persistence

import (
	"context"
	"sync"

	"github.com/pankecas/backend/internal/domain/browse"
)

// MemoryBrowseRepository keeps scroll-spy states in process memory
type MemoryBrowseRepository struct {
	mu     sync.RWMutex
	states map[string]*browse.State
}

// NewMemoryBrowseRepository creates an empty in-memory state store
func NewMemoryBrowseRepository() *MemoryBrowseRepository {
	return &MemoryBrowseRepository{states: make(map[string]*browse.State)}
}

// Get returns the state for the session, or nil when absent
func (r *MemoryBrowseRepository) Get(_ context.Context, sessionID string) (*browse.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[sessionID], nil
}

// Save persists the state for the session
func (r *MemoryBrowseRepository) Save(_ context.Context, sessionID string, s *browse.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[sessionID] = s
	return nil
}

// Delete discards the state for the session
func (r *MemoryBrowseRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, sessionID)
	return nil
}

var _ browse.Repository = (*MemoryBrowseRepository)(nil)
