package tenantdb

import "context"

// Catalog supplies the physical database name for a tenant code during lazy
// pool creation. The master registry is the canonical implementation; it
// must not return names for offboarded tenants.
type Catalog interface {
	DatabaseName(ctx context.Context, code string) (string, error)
}

// CatalogFunc is an adapter to allow ordinary functions as Catalogs.
type CatalogFunc func(ctx context.Context, code string) (string, error)

func (f CatalogFunc) DatabaseName(ctx context.Context, code string) (string, error) {
	return f(ctx, code)
}

// StaticCatalog maps codes to database names from a fixed table. Useful in
// tests and single-binary tools that do not carry a registry.
func StaticCatalog(names map[string]string) Catalog {
	return CatalogFunc(func(ctx context.Context, code string) (string, error) {
		name, ok := names[code]
		if !ok {
			return "", ErrUnknownTenant
		}
		return name, nil
	})
}
