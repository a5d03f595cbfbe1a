package config_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metafit/gymkit/pkg/config"
)

type RoutingConfig struct {
	URLTemplate string `env:"ROUTING_URL_TEMPLATE" envDefault:"postgres://localhost:5432/%s"`
	MaxConns    int    `env:"ROUTING_MAX_CONNS" envDefault:"5"`
	Debug       bool   `env:"ROUTING_DEBUG" envDefault:"false"`
}

type CachedConfig struct {
	Value string `env:"CACHED_VALUE" envDefault:"initial"`
}

type RequiredConfig struct {
	Value string `env:"STRICTLY_REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("ROUTING_URL_TEMPLATE", "postgres://db:5432/%s")
	t.Setenv("ROUTING_MAX_CONNS", "10")
	t.Setenv("ROUTING_DEBUG", "true")

	var cfg RoutingConfig
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "postgres://db:5432/%s", cfg.URLTemplate)
	assert.Equal(t, 10, cfg.MaxConns)
	assert.True(t, cfg.Debug)
}

func TestLoad_CachedBetweenCalls(t *testing.T) {
	t.Setenv("CACHED_VALUE", "first")

	var cfg CachedConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value)

	// Later environment changes must not affect the cached config.
	t.Setenv("CACHED_VALUE", "second")

	var again CachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("STRICTLY_REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[RoutingConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}
