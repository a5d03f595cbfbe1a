package tenantdb_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metafit/gymkit/pkg/tenantdb"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusBadRequest, tenantdb.HTTPStatus(tenantdb.ErrUnknownTenant))
	assert.Equal(t, http.StatusBadRequest, tenantdb.HTTPStatus(tenantdb.ErrNoDefaultPool))
	assert.Equal(t, http.StatusServiceUnavailable, tenantdb.HTTPStatus(tenantdb.ErrDatabaseUnavailable))
	assert.Equal(t, http.StatusServiceUnavailable, tenantdb.HTTPStatus(tenantdb.ErrAcquireTimeout))
	assert.Equal(t, http.StatusServiceUnavailable, tenantdb.HTTPStatus(tenantdb.ErrRouterClosed))
	assert.Equal(t, http.StatusInternalServerError, tenantdb.HTTPStatus(errors.New("boom")))

	// Joined errors keep their classification.
	joined := fmt.Errorf("acquiring for tenant acme: %w", errors.Join(tenantdb.ErrAcquireTimeout, errors.New("pool exhausted")))
	assert.Equal(t, http.StatusServiceUnavailable, tenantdb.HTTPStatus(joined))
}
