// Package tenantdb routes database access to per-tenant connection pools in
// a database-per-tenant deployment.
//
// The Router presents one logical connection source to all business code.
// Per operation it reads the tenant code bound to the request context
// (pkg/tenant) and returns that tenant's dedicated pgx pool, creating it
// lazily on first access via the Catalog. Each pool is independently
// bounded, so one tenant's load spike cannot starve another tenant's
// connections.
//
//	router, err := tenantdb.New(ctx, cfg, registry)
//	...
//	pool, err := router.Pool(r.Context()) // routed by the bound tenant
//	rows, err := pool.Query(r.Context(), "SELECT ...")
//
// Concurrent first-access for an unseen tenant is settled by a pool future:
// all callers share one map entry whose sync.Once performs the single
// construction. Provisioning tooling can pre-register pools with AddTenant
// and retire them with RemoveTenant, which drains borrowed connections
// before closing.
package tenantdb
