// Package pg manages the master-database connection pool: the single
// database holding the tenant registry. It covers startup connection with
// retry, health checks and goose schema migrations.
//
// Per-tenant databases are deliberately out of scope here; pkg/tenantdb owns
// those pools.
package pg
