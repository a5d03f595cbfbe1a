package tenant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Tenant is the master-registry record for one gym. Each tenant owns a
// dedicated physical database: Code is the routing key, DBName the database
// it routes to. The Config blob carries branding and settings and is opaque
// to the routing core.
type Tenant struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	DBName     string          `json:"db_name"`
	Status     Status          `json:"status"`
	OwnerName  string          `json:"owner_name"`
	OwnerEmail string          `json:"owner_email"`
	OwnerPhone string          `json:"owner_phone"`
	Config     json.RawMessage `json:"config,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Operational reports whether requests for this tenant may proceed.
func (t *Tenant) Operational() bool {
	return t.Status.Operational()
}

// Provider loads tenant records from the master registry.
// Implementations return ErrTenantNotFound when no tenant matches the code.
type Provider interface {
	GetByCode(ctx context.Context, code string) (*Tenant, error)
}

// ProviderFunc is an adapter to allow ordinary functions as Providers.
type ProviderFunc func(ctx context.Context, code string) (*Tenant, error)

func (f ProviderFunc) GetByCode(ctx context.Context, code string) (*Tenant, error) {
	return f(ctx, code)
}
