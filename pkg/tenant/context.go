package tenant

import (
	"context"
	"log/slog"
)

// Context binding is request-scoped by construction: values hang off the
// request's context.Context, so a worker goroutine that finishes one request
// can never observe the previous request's tenant. There is no process-global
// holder to clear; WithoutTenant exists for code paths that must explicitly
// shed an inherited binding (master-registry queries issued mid-request).

type codeKey struct{}
type tenantKey struct{}

// WithCode binds a tenant code to the context. The code is bound before the
// registry lookup happens, so downstream components can resolve the tenant
// even when the full record has not been loaded yet.
func WithCode(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, codeKey{}, code)
}

// CodeFromContext returns the bound tenant code. The second return value
// distinguishes "absent" from an empty code; callers must never treat an
// empty string as a valid binding.
func CodeFromContext(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(codeKey{}).(string)
	if !ok || code == "" {
		return "", false
	}
	return code, true
}

// WithTenant binds a fully loaded tenant record (and its code) to the context.
func WithTenant(ctx context.Context, t *Tenant) context.Context {
	if t == nil {
		return ctx
	}
	ctx = context.WithValue(ctx, tenantKey{}, t)
	return WithCode(ctx, t.Code)
}

// FromContext retrieves the tenant record from the context.
// Returns nil, false if no record is bound.
func FromContext(ctx context.Context) (*Tenant, bool) {
	t, ok := ctx.Value(tenantKey{}).(*Tenant)
	if !ok || t == nil {
		return nil, false
	}
	return t, true
}

// MustFromContext retrieves the tenant record or panics. Use only in handlers
// mounted behind the gate middleware, where a missing tenant is a programming
// error.
func MustFromContext(ctx context.Context) *Tenant {
	t, ok := FromContext(ctx)
	if !ok {
		panic("tenant: no tenant in context")
	}
	return t
}

// WithoutTenant removes any tenant binding from the context. Used by
// components that issue master-database queries while handling a
// tenant-scoped request, so those queries cannot be routed to a tenant pool.
func WithoutTenant(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, codeKey{}, "")
	return context.WithValue(ctx, tenantKey{}, (*Tenant)(nil))
}

// LoggerExtractor returns a context extractor that attaches the bound tenant
// code to every log record.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if code, ok := CodeFromContext(ctx); ok {
			return slog.String("tenant", code), true
		}
		return slog.Attr{}, false
	}
}
