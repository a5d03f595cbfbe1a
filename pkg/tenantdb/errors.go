package tenantdb

import (
	"errors"
	"net/http"
)

var (
	// ErrUnknownTenant is returned when a pool is requested for a code the
	// catalog does not know.
	ErrUnknownTenant = errors.New("unknown tenant")

	// ErrDatabaseUnavailable is returned when the tenant's physical database
	// cannot be reached or its pool cannot be configured. The tenant's
	// registration survives; a later request may succeed.
	ErrDatabaseUnavailable = errors.New("tenant database unavailable")

	// ErrAcquireTimeout is returned when all pooled connections stay
	// borrowed past the configured acquire timeout. An overload signal, not
	// a tenant-validity problem.
	ErrAcquireTimeout = errors.New("connection acquisition timed out")

	// ErrNoDefaultPool is returned for tenant-less operations when no
	// default database is configured.
	ErrNoDefaultPool = errors.New("no tenant in context and no default pool configured")

	// ErrRouterClosed is returned after Close.
	ErrRouterClosed = errors.New("tenant router is closed")

	// ErrInvalidURLTemplate is returned when the DSN template lacks the
	// database-name placeholder.
	ErrInvalidURLTemplate = errors.New("tenant db url template must contain exactly one %s placeholder")
)

// HTTPStatus maps router failures to response codes for handlers that
// surface them directly: unknown tenants are a client problem (400),
// unavailable databases and exhausted pools are retryable server conditions
// (503). Unclassified errors map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownTenant), errors.Is(err, ErrNoDefaultPool):
		return http.StatusBadRequest
	case errors.Is(err, ErrDatabaseUnavailable), errors.Is(err, ErrAcquireTimeout),
		errors.Is(err, ErrRouterClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
