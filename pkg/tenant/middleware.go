package tenant

import (
	"net/http"
	"strings"
)

// Require extracts the tenant identifier from incoming requests and binds it
// to the request context. Protected paths without an identifier are rejected
// with 400 before any handler runs; public paths pass through untouched.
//
// The binding lives on the request context, so it ends with the request on
// every exit path, including panics and handler errors.
func Require(resolve Resolver, opts ...Option) func(http.Handler) http.Handler {
	cfg := newConfig(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.skip(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			code, err := resolve(r)
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}

			code = strings.TrimSpace(code)
			if code == "" {
				cfg.logger.WarnContext(r.Context(), "missing tenant header", "path", r.URL.Path)
				cfg.errorHandler(w, r, ErrMissingTenantID)
				return
			}
			if !ValidCode(code) {
				cfg.errorHandler(w, r, ErrInvalidIdentifier)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCode(r.Context(), code)))
		})
	}
}

// Gate validates the bound tenant against the master registry before any
// tenant-scoped data access: unknown tenants fail with 400, suspended
// subscriptions with 402, every other non-operational status with 403.
// The check applies to cached lookups too, so a suspension takes effect for
// "fast path" requests as well.
//
// Gate runs after Require; a request without a bound code passes through
// (either the path is public or Require already rejected it).
func Gate(provider Provider, opts ...Option) func(http.Handler) http.Handler {
	cfg := newConfig(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.skip(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			code, ok := CodeFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			if cached, ok := cfg.cache.Get(r.Context(), code); ok {
				if err := statusError(cached.Status); err != nil {
					cfg.errorHandler(w, r, err)
					return
				}
				next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), cached)))
				return
			}

			// The registry lookup itself must not be routed to a tenant pool.
			t, err := provider.GetByCode(WithoutTenant(r.Context()), code)
			if err != nil {
				cfg.logger.WarnContext(r.Context(), "tenant gate rejected request",
					"tenant", code, "error", err)
				cfg.errorHandler(w, r, err)
				return
			}

			cfg.cache.Set(r.Context(), code, t, cfg.cacheTTL)

			if err := statusError(t.Status); err != nil {
				cfg.errorHandler(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), t)))
		})
	}
}

// RequireTenant ensures a fully loaded tenant is present in the context.
// Mount it on routes that must never run without the gate having passed.
func RequireTenant(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = DefaultErrorHandler
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := FromContext(r.Context()); !ok {
				errorHandler(w, r, ErrNoTenantInContext)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func statusError(s Status) error {
	switch {
	case s.Operational():
		return nil
	case s.Suspended():
		return ErrSubscriptionSuspended
	default:
		return ErrTenantNotOperational
	}
}
