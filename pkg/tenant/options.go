package tenant

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultPublicPaths are exempt from tenant resolution and status gating:
// login and token refresh run before a tenant database is needed, and the
// health/public surfaces must answer without any tenant at all.
var DefaultPublicPaths = []string{
	"/api/auth/login",
	"/api/auth/refresh",
	"/api/public/",
	"/health",
	"/actuator/health",
}

// ErrorHandler renders tenant resolution and gating failures.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type config struct {
	cache        Cache
	cacheTTL     time.Duration
	skipPaths    []string
	errorHandler ErrorHandler
	logger       *slog.Logger
}

// Option configures the Require and Gate middlewares.
type Option func(*config)

func newConfig(opts ...Option) *config {
	cfg := &config{
		cache:        NewMemoryCache(),
		cacheTTL:     time.Minute,
		skipPaths:    DefaultPublicPaths,
		errorHandler: DefaultErrorHandler,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

func (c *config) skip(path string) bool {
	for _, p := range c.skipPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// WithCache sets a custom cache implementation for registry lookups.
func WithCache(cache Cache) Option {
	return func(c *config) { c.cache = cache }
}

// WithCacheTTL sets how long a registry lookup stays cached. Keep this short:
// a suspended tenant keeps passing the gate until its entry expires or the
// registry invalidates it.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithSkipPaths replaces the default public path prefixes.
func WithSkipPaths(paths []string) Option {
	return func(c *config) { c.skipPaths = paths }
}

// WithErrorHandler sets a custom error renderer.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithLogger sets the middleware logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

type errorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}

// DefaultErrorHandler maps the package error taxonomy to the wire contract:
// missing identifier and unknown tenant to 400, suspended subscription to
// 402, every other non-operational status to 403. Bodies never leak physical
// database identifiers.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case errors.Is(err, ErrMissingTenantID):
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "X-Tenant-ID header is required"}`))
	case errors.Is(err, ErrInvalidIdentifier):
		writeErrorBody(w, http.StatusBadRequest, "Bad Request", "Invalid tenant identifier")
	case errors.Is(err, ErrTenantNotFound):
		writeErrorBody(w, http.StatusBadRequest, "Bad Request", "Invalid tenant")
	case errors.Is(err, ErrSubscriptionSuspended):
		writeErrorBody(w, http.StatusPaymentRequired, "Payment Required",
			"Your subscription has been suspended. Please contact support or renew your subscription.")
	case errors.Is(err, ErrTenantNotOperational):
		writeErrorBody(w, http.StatusForbidden, "Forbidden", "Access denied. Account is not operational.")
	default:
		writeErrorBody(w, http.StatusInternalServerError, "Internal Server Error", "Unexpected error")
	}
}

func writeErrorBody(w http.ResponseWriter, status int, label, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     label,
		Message:   message,
	})
}
