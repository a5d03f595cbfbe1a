package tenant

import (
	"context"
	"sync"
	"time"
)

// Cache stores registry lookups so the status gate does not hit the master
// database on every request. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, code string) (*Tenant, bool)
	Set(ctx context.Context, code string, t *Tenant, ttl time.Duration)
	Delete(ctx context.Context, code string)
	Close() error
}

// DefaultCacheSize bounds the in-memory cache. One entry per tenant, so even
// a large installation stays well under this.
const DefaultCacheSize = 1000

type cacheItem struct {
	tenant    *Tenant
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.Mutex
	items   map[string]cacheItem
	lru     []string
	maxSize int
	stop    chan struct{}
	done    chan struct{}
	closed  bool
}

// NewMemoryCache creates an in-memory cache with TTL expiry, LRU eviction
// and a background cleanup goroutine.
func NewMemoryCache() Cache {
	return NewMemoryCacheWithSize(DefaultCacheSize)
}

// NewMemoryCacheWithSize creates an in-memory cache with the given capacity.
func NewMemoryCacheWithSize(maxSize int) Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	c := &memoryCache{
		items:   make(map[string]cacheItem),
		lru:     make([]string, 0, maxSize),
		maxSize: maxSize,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go c.cleanup()
	return c
}

func (c *memoryCache) Get(ctx context.Context, code string) (*Tenant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[code]
	if !ok {
		return nil, false
	}
	if time.Now().After(item.expiresAt) {
		delete(c.items, code)
		c.removeLRU(code)
		return nil, false
	}
	c.touchLRU(code)
	return item.tenant, true
}

func (c *memoryCache) Set(ctx context.Context, code string, t *Tenant, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[code]; !ok && len(c.items) >= c.maxSize {
		if len(c.lru) > 0 {
			evict := c.lru[0]
			delete(c.items, evict)
			c.lru = c.lru[1:]
		}
	}
	c.items[code] = cacheItem{tenant: t, expiresAt: time.Now().Add(ttl)}
	c.touchLRU(code)
}

func (c *memoryCache) Delete(ctx context.Context, code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, code)
	c.removeLRU(code)
}

func (c *memoryCache) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	defer close(c.done)

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *memoryCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for code, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, code)
			c.removeLRU(code)
		}
	}
}

func (c *memoryCache) touchLRU(code string) {
	c.removeLRU(code)
	c.lru = append(c.lru, code)
}

func (c *memoryCache) removeLRU(code string) {
	for i, k := range c.lru {
		if k == code {
			c.lru = append(c.lru[:i], c.lru[i+1:]...)
			return
		}
	}
}

func (c *memoryCache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	<-c.done
	return nil
}

// noOpCache disables caching; every gate check hits the registry. Useful in
// tests and for deployments that cannot tolerate stale status decisions.
type noOpCache struct{}

// NewNoOpCache creates a cache that never stores anything.
func NewNoOpCache() Cache { return noOpCache{} }

func (noOpCache) Get(ctx context.Context, code string) (*Tenant, bool)           { return nil, false }
func (noOpCache) Set(ctx context.Context, code string, t *Tenant, _ time.Duration) {}
func (noOpCache) Delete(ctx context.Context, code string)                        {}
func (noOpCache) Close() error                                                   { return nil }
