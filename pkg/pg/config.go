package pg

import "time"

// Config describes the connection to the master database, which holds the
// tenant registry. Tenant databases are configured separately in
// pkg/tenantdb.
type Config struct {
	ConnectionString  string        `env:"MASTER_DB_URL,required"`                       // ConnectionString is the master database DSN.
	MaxOpenConns      int32         `env:"MASTER_DB_MAX_OPEN_CONNS" envDefault:"10"`     // MaxOpenConns is the maximum number of open connections.
	MaxIdleConns      int32         `env:"MASTER_DB_MAX_IDLE_CONNS" envDefault:"2"`      // MaxIdleConns is the minimum number of warm connections.
	HealthCheckPeriod time.Duration `env:"MASTER_DB_HEALTHCHECK_PERIOD" envDefault:"1m"` // HealthCheckPeriod is the period between pool health checks.
	MaxConnIdleTime   time.Duration `env:"MASTER_DB_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"MASTER_DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"MASTER_DB_RETRY_ATTEMPTS" envDefault:"3"` // RetryAttempts is the number of connection attempts at startup.
	RetryInterval time.Duration `env:"MASTER_DB_RETRY_INTERVAL" envDefault:"5s"`

	MigrationsPath  string `env:"MASTER_DB_MIGRATIONS_PATH" envDefault:"migrations"`        // MigrationsPath is the goose migrations directory.
	MigrationsTable string `env:"MASTER_DB_MIGRATIONS_TABLE" envDefault:"goose_db_version"` // MigrationsTable stores the applied migration versions.
}
