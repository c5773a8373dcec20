package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pankecas/backend/internal/domain/cart"
	"github.com/pankecas/backend/internal/domain/catalog"
)

// RedisCartRepository stores carts in Redis with a TTL. It is suitable
// for deployments with multiple instances that need to share session
// state.
//
// Only product IDs and quantities are persisted; product data is
// rehydrated from the catalog on load so price or name changes never
// resurrect stale copies.
type RedisCartRepository struct {
	client    *redis.Client
	catalog   *catalog.Catalog
	keyPrefix string
	ttl       time.Duration
}

// storedLine is the persisted shape of one cart line
type storedLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// NewRedisCartRepository creates a Redis-backed cart store using an
// existing client
func NewRedisCartRepository(client *redis.Client, cat *catalog.Catalog, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{
		client:    client,
		catalog:   cat,
		keyPrefix: "session:cart:",
		ttl:       ttl,
	}
}

// Get returns the cart for the session, creating an empty one if absent.
// Lines whose product no longer exists in the catalog are dropped.
func (r *RedisCartRepository) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := r.client.Get(ctx, r.keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var stored []storedLine
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	lines := make([]cart.Line, 0, len(stored))
	for _, s := range stored {
		product, ok := r.catalog.ItemByID(s.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, cart.Line{Product: product, Quantity: s.Quantity})
	}
	return cart.Restore(lines), nil
}

// Save persists the cart for the session with the configured TTL
func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	stored := make([]storedLine, 0, c.LineCount())
	for _, line := range c.Lines() {
		stored = append(stored, storedLine{ProductID: line.Product.ID, Quantity: line.Quantity})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := r.client.Set(ctx, r.keyPrefix+sessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete discards the cart for the session
func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

var _ cart.Repository = (*RedisCartRepository)(nil)
