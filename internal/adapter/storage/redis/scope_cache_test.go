package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeNameCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewScopeNameCache(client)
	ctx := context.Background()
	id := uuid.New()

	// Get before set => miss
	name, err := cache.Get(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "", name)

	err = cache.Set(ctx, id, "Spring League", 5*time.Minute)
	require.NoError(t, err)

	name, err = cache.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Spring League", name)
}

func TestScopeNameCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewScopeNameCache(client)
	ctx := context.Background()
	id := uuid.New()

	err := cache.Set(ctx, id, "Summer League", 1*time.Second)
	require.NoError(t, err)

	s.FastForward(2 * time.Second)

	name, err := cache.Get(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "", name, "expired key should read as a miss")
}

func TestScopeNameCache_KeysAreScopedByID(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewScopeNameCache(client)
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()

	require.NoError(t, cache.Set(ctx, first, "League A", time.Minute))
	require.NoError(t, cache.Set(ctx, second, "League B", time.Minute))

	name, err := cache.Get(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "League A", name)

	name, err = cache.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "League B", name)
}
