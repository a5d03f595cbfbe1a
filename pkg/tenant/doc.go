// Package tenant provides the request-scoped tenancy core for a
// database-per-tenant SaaS backend: identifier resolution, context
// propagation and subscription gating.
//
// # Request flow
//
// Every inbound request passes two middlewares before any business handler:
//
//  1. Require resolves the tenant code (context first, then the X-Tenant-ID
//     header) and binds it to the request context. Protected paths without a
//     code are rejected with 400.
//  2. Gate looks the code up in the master registry and blocks tenants whose
//     status is not operational: 400 for unknown codes, 402 for suspended
//     subscriptions, 403 for everything else.
//
// Handlers behind the gate read the tenant with FromContext, and the routing
// connection provider (pkg/tenantdb) reads the code with CodeFromContext to
// pick the tenant's connection pool. Because the binding lives on the request
// context it cannot leak into another request, regardless of how the server
// reuses goroutines.
//
// # Caching
//
// Gate caches registry lookups (in-memory by default, Redis via
// NewRedisCache). The status check runs against cached records too, so a
// cached SUSPENDED tenant still gets 402. Status changes should invalidate
// the cache entry; otherwise decisions lag by at most the cache TTL.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Use(tenant.Require(tenant.DefaultResolver()))
//	r.Use(tenant.Gate(registry))
package tenant
