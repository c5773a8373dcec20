package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pankecas/backend/internal/domain/browse"
)

// RedisBrowseRepository stores scroll-spy states in Redis with a TTL
type RedisBrowseRepository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisBrowseRepository creates a Redis-backed state store using an
// existing client
func NewRedisBrowseRepository(client *redis.Client, ttl time.Duration) *RedisBrowseRepository {
	return &RedisBrowseRepository{
		client:    client,
		keyPrefix: "session:browse:",
		ttl:       ttl,
	}
}

// Get returns the state for the session, or nil when absent
func (r *RedisBrowseRepository) Get(ctx context.Context, sessionID string) (*browse.State, error) {
	data, err := r.client.Get(ctx, r.keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load browse state: %w", err)
	}

	var state browse.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode browse state: %w", err)
	}
	return &state, nil
}

// Save persists the state for the session with the configured TTL
func (r *RedisBrowseRepository) Save(ctx context.Context, sessionID string, s *browse.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode browse state: %w", err)
	}

	if err := r.client.Set(ctx, r.keyPrefix+sessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save browse state: %w", err)
	}
	return nil
}

// Delete discards the state for the session
func (r *RedisBrowseRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete browse state: %w", err)
	}
	return nil
}

var _ browse.Repository = (*RedisBrowseRepository)(nil)
