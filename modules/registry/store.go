package registry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/metafit/gymkit/pkg/pg"
	"github.com/metafit/gymkit/pkg/tenant"
)

const tenantColumns = `id, code, name, db_name, status, owner_name, owner_email, owner_phone, config, created_at, updated_at`

// Store persists tenant records in the master database. It is the only
// component that touches the tenants table; everything else goes through the
// Service.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a Store over the master pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) GetByCode(ctx context.Context, code string) (*tenant.Tenant, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE code = $1`, code)

	t, err := scanTenant(row)
	if err != nil {
		if pg.IsNotFound(err) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Store) Create(ctx context.Context, t *tenant.Tenant) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO tenants (`+tenantColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		t.ID, t.Code, t.Name, t.DBName, t.Status, t.OwnerName, t.OwnerEmail,
		t.OwnerPhone, t.Config, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if pg.IsDuplicateKey(err) {
			return ErrCodeTaken
		}
		return err
	}
	return nil
}

// ExistsByCode reports whether a tenant record exists for code, regardless
// of status. Used by provisioning tooling to pre-validate codes without
// loading the full record.
func (s *Store) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tenants WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Store) List(ctx context.Context) ([]tenant.Tenant, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+tenantColumns+` FROM tenants ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []tenant.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, *t)
	}
	return tenants, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, code string, status tenant.Status) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE tenants SET status = $2, updated_at = $3 WHERE code = $1`,
		code, status, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return tenant.ErrTenantNotFound
	}
	return nil
}

func (s *Store) UpdateConfig(ctx context.Context, code string, cfg json.RawMessage) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE tenants SET config = $2, updated_at = $3 WHERE code = $1`,
		code, cfg, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return tenant.ErrTenantNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenant(row rowScanner) (*tenant.Tenant, error) {
	var t tenant.Tenant
	var config []byte
	err := row.Scan(&t.ID, &t.Code, &t.Name, &t.DBName, &t.Status,
		&t.OwnerName, &t.OwnerEmail, &t.OwnerPhone, &config,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(config) > 0 {
		t.Config = json.RawMessage(config)
	}
	return &t, nil
}
