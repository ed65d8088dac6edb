package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const availabilityTTL = 60 * time.Second

// Availability is a best-effort read-through cache for slot listings.
// Redis being down or slow never fails a request; callers just hit the
// database instead.
//
// Keys carry a per-business version so the whole business can be
// invalidated at once (weekly hours changed); superseded entries fall
// out via TTL.
type Availability struct {
	rdb *redis.Client
}

func NewAvailability(rdb *redis.Client) *Availability {
	return &Availability{rdb: rdb}
}

func versionKey(businessID uint) string {
	return fmt.Sprintf("avail:ver:%d", businessID)
}

func (c *Availability) key(ctx context.Context, businessID uint, date string) string {
	ver, err := c.rdb.Get(ctx, versionKey(businessID)).Result()
	if err != nil {
		ver = "0"
	}
	return fmt.Sprintf("avail:%d:%s:%s", businessID, ver, date)
}

func (c *Availability) Get(ctx context.Context, businessID uint, date string, dst any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	b, err := c.rdb.Get(ctx, c.key(ctx, businessID, date)).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(b, dst) == nil
}

func (c *Availability) Set(ctx context.Context, businessID uint, date string, v any) {
	if c == nil || c.rdb == nil {
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, c.key(ctx, businessID, date), b, availabilityTTL)
}

// Invalidate drops the cached listing after a booking is created or an
// appointment stops blocking its slot for that business+date.
func (c *Availability) Invalidate(ctx context.Context, businessID uint, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	c.rdb.Del(ctx, c.key(ctx, businessID, date))
}

// InvalidateAll drops every cached listing for the business by bumping
// its key version. Used when the weekly hours are replaced.
func (c *Availability) InvalidateAll(ctx context.Context, businessID uint) {
	if c == nil || c.rdb == nil {
		return
	}

	c.rdb.Incr(ctx, versionKey(businessID))
}
