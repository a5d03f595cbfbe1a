// Package requestid assigns every request a stable identifier for
// correlating logs across the tenant middleware chain and the admin surface.
package requestid
