package tenant_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metafit/gymkit/pkg/tenant"
)

func TestValidCode(t *testing.T) {
	t.Parallel()

	valid := []string{"acme", "gym42", "Acme-Fitness", "a", "powerhouse_gym", "0zero"}
	for _, code := range valid {
		assert.True(t, tenant.ValidCode(code), "expected %q to be valid", code)
	}

	invalid := []string{
		"",
		"-acme",
		"_acme",
		"acme gym",
		"acme;drop",
		"acme/../etc",
		strings.Repeat("a", tenant.MaxCodeLength+1),
	}
	for _, code := range invalid {
		assert.False(t, tenant.ValidCode(code), "expected %q to be invalid", code)
	}
}

func TestHeaderResolver(t *testing.T) {
	t.Parallel()

	t.Run("reads configured header", func(t *testing.T) {
		t.Parallel()
		resolve := tenant.NewHeaderResolver("X-Gym")
		r := httptest.NewRequest("GET", "/api/members", nil)
		r.Header.Set("X-Gym", "acme")

		code, err := resolve(r)
		require.NoError(t, err)
		assert.Equal(t, "acme", code)
	})

	t.Run("empty header name falls back to default", func(t *testing.T) {
		t.Parallel()
		resolve := tenant.NewHeaderResolver("")
		r := httptest.NewRequest("GET", "/api/members", nil)
		r.Header.Set(tenant.DefaultHeader, "acme")

		code, err := resolve(r)
		require.NoError(t, err)
		assert.Equal(t, "acme", code)
	})

	t.Run("missing header yields empty code", func(t *testing.T) {
		t.Parallel()
		resolve := tenant.NewHeaderResolver(tenant.DefaultHeader)
		r := httptest.NewRequest("GET", "/api/members", nil)

		code, err := resolve(r)
		require.NoError(t, err)
		assert.Empty(t, code)
	})
}

func TestCompositeResolver(t *testing.T) {
	t.Parallel()

	t.Run("first non-empty wins", func(t *testing.T) {
		t.Parallel()
		resolve := tenant.NewCompositeResolver(
			tenant.NewHeaderResolver("X-Primary"),
			tenant.NewHeaderResolver("X-Fallback"),
		)

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Fallback", "beta")

		code, err := resolve(r)
		require.NoError(t, err)
		assert.Equal(t, "beta", code)

		r.Header.Set("X-Primary", "acme")
		code, err = resolve(r)
		require.NoError(t, err)
		assert.Equal(t, "acme", code)
	})

	t.Run("all empty yields empty", func(t *testing.T) {
		t.Parallel()
		resolve := tenant.NewCompositeResolver(
			tenant.NewHeaderResolver("X-Primary"),
			tenant.NewHeaderResolver("X-Fallback"),
		)

		code, err := resolve(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Empty(t, code)
	})
}

func TestDefaultResolver(t *testing.T) {
	t.Parallel()

	t.Run("context binding wins over header", func(t *testing.T) {
		t.Parallel()
		resolve := tenant.DefaultResolver()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set(tenant.DefaultHeader, "from-header")
		r = r.WithContext(tenant.WithCode(r.Context(), "from-context"))

		code, err := resolve(r)
		require.NoError(t, err)
		assert.Equal(t, "from-context", code)
	})

	t.Run("header used when context unset", func(t *testing.T) {
		t.Parallel()
		resolve := tenant.DefaultResolver()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set(tenant.DefaultHeader, "from-header")

		code, err := resolve(r)
		require.NoError(t, err)
		assert.Equal(t, "from-header", code)
	})
}
