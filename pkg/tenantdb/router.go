package tenantdb

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/metafit/gymkit/pkg/tenant"
)

// Router is the tenant-routing connection provider: one logical connection
// source that multiplexes over independently bounded per-tenant pools,
// selected by the tenant code bound to the request context.
//
// Pools are created lazily on first access and live until RemoveTenant or
// Close. Creation is in-memory only; the pool dials its database on first
// acquire, so a registered tenant whose database is down costs nothing until
// someone asks for a connection.
type Router struct {
	cfg     Config
	catalog Catalog
	log     *slog.Logger

	mu     sync.RWMutex
	pools  map[string]*entry
	def    *pgxpool.Pool
	closed bool
}

// entry is a pool future: concurrent first-access for the same code lands on
// one entry and its sync.Once guarantees exactly one pool is constructed.
type entry struct {
	once sync.Once
	pool *pgxpool.Pool
	err  error
}

// Option configures the Router.
type Option func(*Router)

// WithLogger sets the router logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *Router) { r.log = log }
}

// New creates a Router. When cfg.DefaultDBName is set, a default pool is
// configured for tenant-less operations; requests with a bound tenant never
// fall back to it.
func New(ctx context.Context, cfg Config, catalog Catalog, opts ...Option) (*Router, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Router{
		cfg:     cfg,
		catalog: catalog,
		pools:   make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = slog.New(slog.DiscardHandler)
	}

	if cfg.DefaultDBName != "" {
		pool, err := r.open(ctx, cfg.DefaultDBName)
		if err != nil {
			return nil, err
		}
		r.def = pool
	}

	return r, nil
}

// Pool returns the connection pool for the tenant bound to ctx. With no
// tenant bound it returns the default pool, or ErrNoDefaultPool when none is
// configured. It never substitutes another tenant's pool or the default pool
// for a bound tenant: the one forbidden behavior here is crossing a tenant
// boundary silently.
func (r *Router) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	code, ok := tenant.CodeFromContext(ctx)
	if !ok {
		r.mu.RLock()
		defer r.mu.RUnlock()
		if r.closed {
			return nil, ErrRouterClosed
		}
		if r.def == nil {
			return nil, ErrNoDefaultPool
		}
		return r.def, nil
	}
	return r.poolFor(ctx, code)
}

// Acquire borrows a connection from the current tenant's pool, waiting at
// most the configured acquire timeout. Connection failures surface as
// ErrDatabaseUnavailable and exhausted pools as ErrAcquireTimeout; neither
// removes the tenant's pool.
func (r *Router) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	pool, err := r.Pool(ctx)
	if err != nil {
		return nil, err
	}

	acquireCtx := ctx
	if r.cfg.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, r.cfg.AcquireTimeout)
		defer cancel()
	}

	conn, err := pool.Acquire(acquireCtx)
	if err != nil {
		if ctx.Err() != nil {
			// The surrounding unit of work aborted; report that, not a pool failure.
			return nil, ctx.Err()
		}
		if acquireCtx.Err() != nil {
			return nil, errors.Join(ErrAcquireTimeout, err)
		}
		return nil, errors.Join(ErrDatabaseUnavailable, err)
	}
	return conn, nil
}

// AddTenant idempotently ensures a pool exists for code pointing at dbName.
// An existing pool is kept as-is, so concurrent provisioning calls cannot
// create duplicates or leak a replaced pool.
func (r *Router) AddTenant(ctx context.Context, code, dbName string) error {
	e, err := r.entryFor(code)
	if err != nil {
		return err
	}

	e.once.Do(func() {
		e.pool, e.err = r.open(ctx, dbName)
		if e.err == nil {
			r.log.InfoContext(ctx, "registered tenant pool", "tenant", code, "database", dbName)
		}
	})
	if e.err != nil {
		r.forget(code, e)
		return e.err
	}
	return nil
}

// RemoveTenant drops the tenant's pool from the registry and closes it,
// waiting for borrowed connections to be returned first. In-flight work
// against the tenant completes; new requests for the code either recreate a
// pool through the catalog or fail there once the tenant is offboarded.
func (r *Router) RemoveTenant(ctx context.Context, code string) {
	r.mu.Lock()
	e, ok := r.pools[code]
	if ok {
		delete(r.pools, code)
	}
	r.mu.Unlock()

	if !ok {
		return
	}

	// Settle a pending lazy creation before closing.
	e.once.Do(func() {})
	if e.pool != nil {
		r.log.InfoContext(ctx, "draining tenant pool", "tenant", code)
		e.pool.Close()
	}
}

// HasTenant reports whether a live pool exists for the code.
func (r *Router) HasTenant(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.pools[code]
	return ok && e.pool != nil
}

// Tenants lists the codes with a registered pool, sorted.
func (r *Router) Tenants() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.pools))
	for code := range r.pools {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Close drains and closes every tenant pool and the default pool. The router
// rejects all further calls.
func (r *Router) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	pools := r.pools
	r.pools = make(map[string]*entry)
	def := r.def
	r.def = nil
	r.mu.Unlock()

	for _, e := range pools {
		e.once.Do(func() {})
		if e.pool != nil {
			e.pool.Close()
		}
	}
	if def != nil {
		def.Close()
	}
}

func (r *Router) poolFor(ctx context.Context, code string) (*pgxpool.Pool, error) {
	e, err := r.entryFor(code)
	if err != nil {
		return nil, err
	}

	e.once.Do(func() {
		dbName, err := r.catalog.DatabaseName(ctx, code)
		if err != nil {
			e.err = errors.Join(ErrUnknownTenant, err)
			return
		}
		e.pool, e.err = r.open(ctx, dbName)
		if e.err == nil {
			r.log.InfoContext(ctx, "created tenant pool", "tenant", code, "database", dbName)
		}
	})
	if e.err != nil {
		// Drop the failed future so a later request can retry the creation.
		r.forget(code, e)
		return nil, e.err
	}
	return e.pool, nil
}

// entryFor returns the pool future for code, inserting an empty one if
// absent. The double-checked insert keeps the write lock off the hot path.
func (r *Router) entryFor(code string) (*entry, error) {
	r.mu.RLock()
	e, ok := r.pools[code]
	closed := r.closed
	r.mu.RUnlock()
	if closed {
		return nil, ErrRouterClosed
	}
	if ok {
		return e, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrRouterClosed
	}
	if e, ok = r.pools[code]; !ok {
		e = &entry{}
		r.pools[code] = e
	}
	return e, nil
}

func (r *Router) forget(code string, failed *entry) {
	r.mu.Lock()
	if cur, ok := r.pools[code]; ok && cur == failed {
		delete(r.pools, code)
	}
	r.mu.Unlock()
}

// open configures a pool for the given database. No network I/O happens
// here; the pool connects on first acquire.
func (r *Router) open(ctx context.Context, dbName string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(r.cfg.dsn(dbName))
	if err != nil {
		return nil, errors.Join(ErrDatabaseUnavailable, err)
	}
	if r.cfg.MaxConns > 0 {
		poolCfg.MaxConns = r.cfg.MaxConns
	}
	if r.cfg.MinConns > 0 {
		poolCfg.MinConns = r.cfg.MinConns
	}
	if r.cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = r.cfg.MaxConnIdleTime
	}
	if r.cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = r.cfg.MaxConnLifetime
	}
	if r.cfg.HealthCheckPeriod > 0 {
		poolCfg.HealthCheckPeriod = r.cfg.HealthCheckPeriod
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Join(ErrDatabaseUnavailable, err)
	}
	return pool, nil
}
