// Package registry manages the tenant catalog stored in the master database.
//
// It owns provisioning (Create derives the per-tenant database name from the
// code), subscription lifecycle transitions, branding configuration, and
// offboarding. The Service doubles as the lookup backend for the HTTP
// middleware (tenant.Provider) and the connection router (tenantdb.Catalog),
// so all three layers share one cached view of the catalog.
//
// Registry reads always run against the master database: every query goes
// through tenant.WithoutTenant so a tenant-bound request context can never
// route a catalog lookup to a gym database.
package registry
