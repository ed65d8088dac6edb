package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T) *Availability {
	t.Helper()

	s := miniredis.RunT(t)
	return NewAvailability(redis.NewClient(&redis.Options{Addr: s.Addr()}))
}

// A nil cache (redis not configured) must behave as a miss and never panic.
func TestNilCacheIsNoop(t *testing.T) {
	var c *Availability

	var out map[string]any
	assert.False(t, c.Get(context.Background(), 1, "2024-03-10", &out))

	c.Set(context.Background(), 1, "2024-03-10", map[string]any{"x": 1})
	c.Invalidate(context.Background(), 1, "2024-03-10")
	c.InvalidateAll(context.Background(), 1)
}

func TestCacheWithoutClientIsNoop(t *testing.T) {
	c := NewAvailability(nil)

	var out map[string]any
	assert.False(t, c.Get(context.Background(), 1, "2024-03-10", &out))

	c.Set(context.Background(), 1, "2024-03-10", map[string]any{"x": 1})
	c.Invalidate(context.Background(), 1, "2024-03-10")
	c.InvalidateAll(context.Background(), 1)
}

func TestCacheRoundTripAndInvalidate(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	c.Set(ctx, 1, "2024-03-10", map[string]any{"closed": false})

	var out map[string]any
	require.True(t, c.Get(ctx, 1, "2024-03-10", &out))
	assert.Equal(t, false, out["closed"])

	c.Invalidate(ctx, 1, "2024-03-10")
	assert.False(t, c.Get(ctx, 1, "2024-03-10", &out))
}

func TestInvalidateAllDropsEveryDate(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	c.Set(ctx, 1, "2024-03-10", map[string]any{"a": 1})
	c.Set(ctx, 1, "2024-03-11", map[string]any{"b": 2})
	c.Set(ctx, 2, "2024-03-10", map[string]any{"c": 3})

	c.InvalidateAll(ctx, 1)

	var out map[string]any
	assert.False(t, c.Get(ctx, 1, "2024-03-10", &out))
	assert.False(t, c.Get(ctx, 1, "2024-03-11", &out))

	// other businesses keep their entries
	assert.True(t, c.Get(ctx, 2, "2024-03-10", &out))
}
