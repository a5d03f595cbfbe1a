package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/metafit/gymkit/pkg/lifecycle"
	"github.com/metafit/gymkit/pkg/tenant"
	"github.com/metafit/gymkit/pkg/tenantdb"
)

// Tenant codes double as database-name fragments, so the rules are stricter
// than the resolver's syntactic check: lowercase alphanumeric, letter first,
// at most 20 characters.
var codePattern = regexp.MustCompile(`^[a-z][a-z0-9]{0,19}$`)

// DeriveDBName builds the physical database name for a code: gym_<code>_db.
func DeriveDBName(code string) string {
	return "gym_" + strings.ToLower(code) + "_db"
}

// Storage is the persistence surface the service needs; *Store is the
// canonical implementation.
type Storage interface {
	GetByCode(ctx context.Context, code string) (*tenant.Tenant, error)
	Create(ctx context.Context, t *tenant.Tenant) error
	List(ctx context.Context) ([]tenant.Tenant, error)
	UpdateStatus(ctx context.Context, code string, status tenant.Status) error
	UpdateConfig(ctx context.Context, code string, cfg json.RawMessage) error
}

// Service owns tenant registry reads and administrative writes. It
// implements tenant.Provider for the status gate and tenantdb.Catalog for
// lazy pool creation, sharing one cache between both.
type Service struct {
	store    Storage
	cache    tenant.Cache
	cacheTTL time.Duration
	machine  *lifecycle.Machine
	router   *tenantdb.Router
	log      *slog.Logger
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithCache sets the lookup cache shared with the status gate.
func WithCache(cache tenant.Cache) ServiceOption {
	return func(s *Service) { s.cache = cache }
}

// WithCacheTTL sets how long lookups stay cached.
func WithCacheTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithRouter connects the routing provider so provisioning registers pools
// and offboarding drains them.
func WithRouter(router *tenantdb.Router) ServiceOption {
	return func(s *Service) { s.router = router }
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) { s.log = log }
}

// NewService creates the registry service.
func NewService(store Storage, opts ...ServiceOption) *Service {
	s := &Service{
		store:    store,
		cache:    tenant.NewMemoryCache(),
		cacheTTL: time.Minute,
		machine:  tenant.Lifecycle(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	return s
}

// GetByCode implements tenant.Provider with a cache in front of the store.
// Registry reads always run without a tenant binding so they cannot be
// routed to a tenant pool.
func (s *Service) GetByCode(ctx context.Context, code string) (*tenant.Tenant, error) {
	ctx = tenant.WithoutTenant(ctx)

	if cached, ok := s.cache.Get(ctx, code); ok {
		return cached, nil
	}
	t, err := s.store.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, code, t, s.cacheTTL)
	return t, nil
}

// DatabaseName implements tenantdb.Catalog. Offboarded tenants resolve to
// not-found so a drained pool cannot be recreated for them.
func (s *Service) DatabaseName(ctx context.Context, code string) (string, error) {
	t, err := s.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	if t.Status == tenant.StatusDeleted {
		return "", tenant.ErrTenantNotFound
	}
	return t.DBName, nil
}

// CreateTenantInput carries the provisioning fields.
type CreateTenantInput struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	OwnerName  string          `json:"owner_name"`
	OwnerEmail string          `json:"owner_email"`
	OwnerPhone string          `json:"owner_phone"`
	Config     json.RawMessage `json:"config,omitempty"`
}

func (in CreateTenantInput) validate() error {
	if !codePattern.MatchString(in.Code) {
		return ErrInvalidCode
	}
	for field, v := range map[string]string{
		"name":        in.Name,
		"owner_name":  in.OwnerName,
		"owner_email": in.OwnerEmail,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}
	if len(in.Config) > 0 && !json.Valid(in.Config) {
		return ErrInvalidConfig
	}
	return nil
}

// Create provisions a tenant record. New tenants start in TRIAL with a
// derived database name; the routing provider gets its pool registered
// immediately so the first request skips the catalog lookup.
func (s *Service) Create(ctx context.Context, in CreateTenantInput) (*tenant.Tenant, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &tenant.Tenant{
		ID:         uuid.New(),
		Code:       in.Code,
		Name:       in.Name,
		DBName:     DeriveDBName(in.Code),
		Status:     tenant.StatusTrial,
		OwnerName:  in.OwnerName,
		OwnerEmail: in.OwnerEmail,
		OwnerPhone: in.OwnerPhone,
		Config:     in.Config,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Create(tenant.WithoutTenant(ctx), t); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "tenant provisioned", "tenant", t.Code, "database", t.DBName)

	if s.router != nil {
		if err := s.router.AddTenant(ctx, t.Code, t.DBName); err != nil {
			// The pool will be created lazily on first access instead.
			s.log.WarnContext(ctx, "failed to pre-register tenant pool",
				"tenant", t.Code, "error", err)
		}
	}
	return t, nil
}

// List returns all tenants for the administrative surface.
func (s *Service) List(ctx context.Context) ([]tenant.Tenant, error) {
	return s.store.List(tenant.WithoutTenant(ctx))
}

// ChangeStatus fires a lifecycle event against the tenant's current status.
// Transitions outside the canonical state machine are rejected; successful
// changes invalidate the cache entry so the gate picks them up immediately.
func (s *Service) ChangeStatus(ctx context.Context, code, event string) (*tenant.Tenant, error) {
	ctx = tenant.WithoutTenant(ctx)

	t, err := s.store.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	next, err := s.machine.Next(t.Status.String(), event)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateStatus(ctx, code, tenant.Status(next)); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, code)
	s.log.InfoContext(ctx, "tenant status changed",
		"tenant", code, "from", t.Status, "to", next, "event", event)

	t.Status = tenant.Status(next)
	t.UpdatedAt = time.Now().UTC()
	return t, nil
}

// Suspend blocks a tenant for payment reasons; its pool stays registered so
// reactivation is instant.
func (s *Service) Suspend(ctx context.Context, code string) (*tenant.Tenant, error) {
	return s.ChangeStatus(ctx, code, tenant.EventSuspend)
}

// Activate moves a tenant (back) into ACTIVE.
func (s *Service) Activate(ctx context.Context, code string) (*tenant.Tenant, error) {
	return s.ChangeStatus(ctx, code, tenant.EventActivate)
}

// Cancel closes a suspended tenant's account.
func (s *Service) Cancel(ctx context.Context, code string) (*tenant.Tenant, error) {
	return s.ChangeStatus(ctx, code, tenant.EventCancel)
}

// Block locks a tenant out for policy reasons.
func (s *Service) Block(ctx context.Context, code string) (*tenant.Tenant, error) {
	return s.ChangeStatus(ctx, code, tenant.EventBlock)
}

// Offboard marks the tenant DELETED and drains its connection pool. The
// record stays in the registry (soft delete) so historical data is never
// orphaned; only the live pool goes away.
func (s *Service) Offboard(ctx context.Context, code string) error {
	if _, err := s.ChangeStatus(ctx, code, tenant.EventDelete); err != nil {
		return err
	}
	if s.router != nil {
		s.router.RemoveTenant(ctx, code)
	}
	return nil
}

// TenantConfig is the branding/settings view served to tenant applications.
// The blob itself is opaque to the routing core; only display defaults are
// filled in here.
type TenantConfig struct {
	GymName      string          `json:"gym_name"`
	PrimaryColor string          `json:"primary_color"`
	AccentColor  string          `json:"accent_color"`
	Settings     json.RawMessage `json:"settings,omitempty"`
}

const (
	defaultPrimaryColor = "#10B981"
	defaultAccentColor  = "#3B82F6"
)

// Config returns the tenant's configuration with branding defaults applied.
func (s *Service) Config(ctx context.Context, code string) (*TenantConfig, error) {
	t, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	cfg := &TenantConfig{GymName: t.Name}
	if len(t.Config) > 0 {
		var blob struct {
			PrimaryColor string `json:"primary_color"`
			AccentColor  string `json:"accent_color"`
		}
		if err := json.Unmarshal(t.Config, &blob); err == nil {
			cfg.PrimaryColor = blob.PrimaryColor
			cfg.AccentColor = blob.AccentColor
		}
		cfg.Settings = t.Config
	}
	if cfg.PrimaryColor == "" {
		cfg.PrimaryColor = defaultPrimaryColor
	}
	if cfg.AccentColor == "" {
		cfg.AccentColor = defaultAccentColor
	}
	return cfg, nil
}

// UpdateConfig replaces the tenant's configuration blob.
func (s *Service) UpdateConfig(ctx context.Context, code string, cfg json.RawMessage) error {
	if len(cfg) == 0 || !json.Valid(cfg) {
		return ErrInvalidConfig
	}
	if err := s.store.UpdateConfig(tenant.WithoutTenant(ctx), code, cfg); err != nil {
		return err
	}
	s.cache.Delete(ctx, code)
	return nil
}

// IsNoTransition reports whether err came from a rejected lifecycle event.
func IsNoTransition(err error) bool {
	return lifecycle.IsNoTransitionError(err)
}

var (
	_ tenant.Provider  = (*Service)(nil)
	_ tenantdb.Catalog = (*Service)(nil)
)
