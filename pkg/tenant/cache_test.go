package tenant_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metafit/gymkit/pkg/tenant"
)

func TestMemoryCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()
		c := tenant.NewMemoryCache()
		defer c.Close()

		rec := &tenant.Tenant{Code: "acme", Status: tenant.StatusActive}
		c.Set(ctx, "acme", rec, time.Minute)

		got, ok := c.Get(ctx, "acme")
		require.True(t, ok)
		assert.Same(t, rec, got)
	})

	t.Run("miss", func(t *testing.T) {
		t.Parallel()
		c := tenant.NewMemoryCache()
		defer c.Close()

		got, ok := c.Get(ctx, "nope")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("expiry", func(t *testing.T) {
		t.Parallel()
		c := tenant.NewMemoryCache()
		defer c.Close()

		c.Set(ctx, "acme", &tenant.Tenant{Code: "acme"}, 10*time.Millisecond)
		time.Sleep(30 * time.Millisecond)

		_, ok := c.Get(ctx, "acme")
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		c := tenant.NewMemoryCache()
		defer c.Close()

		c.Set(ctx, "acme", &tenant.Tenant{Code: "acme"}, time.Minute)
		c.Delete(ctx, "acme")

		_, ok := c.Get(ctx, "acme")
		assert.False(t, ok)
	})

	t.Run("evicts least recently used at capacity", func(t *testing.T) {
		t.Parallel()
		c := tenant.NewMemoryCacheWithSize(2)
		defer c.Close()

		c.Set(ctx, "a", &tenant.Tenant{Code: "a"}, time.Minute)
		c.Set(ctx, "b", &tenant.Tenant{Code: "b"}, time.Minute)

		// Touch "a" so "b" becomes the eviction candidate.
		_, ok := c.Get(ctx, "a")
		require.True(t, ok)

		c.Set(ctx, "c", &tenant.Tenant{Code: "c"}, time.Minute)

		_, ok = c.Get(ctx, "b")
		assert.False(t, ok, "b should have been evicted")
		_, ok = c.Get(ctx, "a")
		assert.True(t, ok)
		_, ok = c.Get(ctx, "c")
		assert.True(t, ok)
	})
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := tenant.NewNoOpCache()
	c.Set(ctx, "acme", &tenant.Tenant{Code: "acme"}, time.Minute)

	_, ok := c.Get(ctx, "acme")
	assert.False(t, ok)
	require.NoError(t, c.Close())
}
