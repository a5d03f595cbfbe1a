package tenant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tenant:"

// redisCache shares registry lookups across application instances. Redis
// failures degrade to cache misses; the gate then falls through to the
// registry, so a cache outage never blocks traffic.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed tenant cache. The client lifecycle
// stays with the caller; Close does not close the client.
func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, code string) (*Tenant, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+code).Bytes()
	if err != nil {
		return nil, false
	}
	var t Tenant
	if err := json.Unmarshal(raw, &t); err != nil {
		// Corrupt entry, drop it so the next lookup repopulates.
		c.client.Del(ctx, redisKeyPrefix+code)
		return nil, false
	}
	return &t, true
}

func (c *redisCache) Set(ctx context.Context, code string, t *Tenant, ttl time.Duration) {
	raw, err := json.Marshal(t)
	if err != nil {
		return
	}
	c.client.Set(ctx, redisKeyPrefix+code, raw, ttl)
}

func (c *redisCache) Delete(ctx context.Context, code string) {
	c.client.Del(ctx, redisKeyPrefix+code)
}

func (c *redisCache) Close() error { return nil }
