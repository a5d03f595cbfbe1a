package tenantdb

import (
	"fmt"
	"strings"
	"time"
)

// Config carries the shared settings every per-tenant pool is created with.
// Bounds are deliberately small: isolation comes from each tenant having its
// own pool, not from any single pool being large.
type Config struct {
	// URLTemplate builds the physical DSN for a tenant database. It must
	// contain exactly one %s placeholder for the database name, e.g.
	// "postgres://gym:secret@db:5432/%s?sslmode=disable".
	URLTemplate string `env:"TENANT_DB_URL_TEMPLATE,required"`

	MaxConns          int32         `env:"TENANT_DB_MAX_CONNS" envDefault:"5"`                // MaxConns bounds each tenant pool independently.
	MinConns          int32         `env:"TENANT_DB_MIN_CONNS" envDefault:"1"`                // MinConns keeps warm connections per tenant.
	MaxConnIdleTime   time.Duration `env:"TENANT_DB_MAX_CONN_IDLE_TIME" envDefault:"10m"`     // MaxConnIdleTime recycles idle connections.
	MaxConnLifetime   time.Duration `env:"TENANT_DB_MAX_CONN_LIFETIME" envDefault:"30m"`      // MaxConnLifetime caps connection age.
	HealthCheckPeriod time.Duration `env:"TENANT_DB_HEALTHCHECK_PERIOD" envDefault:"1m"`      // HealthCheckPeriod is the pool's background check interval.
	AcquireTimeout    time.Duration `env:"TENANT_DB_ACQUIRE_TIMEOUT" envDefault:"30s"`        // AcquireTimeout bounds how long Acquire waits for a free connection.
	DefaultDBName     string        `env:"TENANT_DB_DEFAULT_DB"`                              // DefaultDBName backs tenant-less operations; empty disables the default pool.
}

// Validate checks the URL template carries the database-name placeholder.
func (c Config) Validate() error {
	if strings.Count(c.URLTemplate, "%s") != 1 {
		return ErrInvalidURLTemplate
	}
	return nil
}

func (c Config) dsn(dbName string) string {
	return fmt.Sprintf(c.URLTemplate, dbName)
}
