package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ScopeNameCache implements ports.ScopeNameCache using Redis. Scope names
// change rarely; the dispatcher reads them on every event, so a short TTL
// keeps the lookup off the database's hot path.
type ScopeNameCache struct {
	client *goredis.Client
	prefix string
}

// NewScopeNameCache creates a new Redis-backed scope name cache.
func NewScopeNameCache(client *goredis.Client) *ScopeNameCache {
	return &ScopeNameCache{
		client: client,
		prefix: "scope:name:",
	}
}

// Get retrieves a cached scope name. Returns "" on a miss.
func (c *ScopeNameCache) Get(ctx context.Context, id uuid.UUID) (string, error) {
	val, err := c.client.Get(ctx, c.prefix+id.String()).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis scope name get: %w", err)
	}
	return val, nil
}

// Set stores a scope name with TTL.
func (c *ScopeNameCache) Set(ctx context.Context, id uuid.UUID, name string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+id.String(), name, ttl).Err(); err != nil {
		return fmt.Errorf("redis scope name set: %w", err)
	}
	return nil
}
