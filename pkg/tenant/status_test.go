package tenant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metafit/gymkit/pkg/tenant"
)

func TestStatus_Operational(t *testing.T) {
	t.Parallel()

	operational := []tenant.Status{tenant.StatusActive, tenant.StatusTrial, tenant.StatusProvisioning}
	for _, s := range operational {
		assert.True(t, s.Operational(), "expected %s to be operational", s)
	}

	blocked := []tenant.Status{
		tenant.StatusSuspended, tenant.StatusInactive, tenant.StatusCancelled,
		tenant.StatusBlocked, tenant.StatusDeleted,
	}
	for _, s := range blocked {
		assert.False(t, s.Operational(), "expected %s to be non-operational", s)
	}
}

func TestStatus_Suspended(t *testing.T) {
	t.Parallel()
	assert.True(t, tenant.StatusSuspended.Suspended())
	assert.False(t, tenant.StatusActive.Suspended())
	assert.False(t, tenant.StatusBlocked.Suspended())
}

func TestStatus_Valid(t *testing.T) {
	t.Parallel()
	assert.True(t, tenant.StatusActive.Valid())
	assert.True(t, tenant.StatusDeleted.Valid())
	assert.False(t, tenant.Status("BOGUS").Valid())
	assert.False(t, tenant.Status("").Valid())
}

func TestLifecycle(t *testing.T) {
	t.Parallel()
	m := tenant.Lifecycle()

	t.Run("initial state", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, tenant.StatusProvisioning.String(), m.Initial())
	})

	t.Run("happy path", func(t *testing.T) {
		t.Parallel()
		s, err := m.Next(tenant.StatusProvisioning.String(), tenant.EventStartTrial)
		require.NoError(t, err)
		assert.Equal(t, tenant.StatusTrial.String(), s)

		s, err = m.Next(s, tenant.EventActivate)
		require.NoError(t, err)
		assert.Equal(t, tenant.StatusActive.String(), s)
	})

	t.Run("suspend and reactivate", func(t *testing.T) {
		t.Parallel()
		s, err := m.Next(tenant.StatusActive.String(), tenant.EventSuspend)
		require.NoError(t, err)
		assert.Equal(t, tenant.StatusSuspended.String(), s)

		s, err = m.Next(s, tenant.EventActivate)
		require.NoError(t, err)
		assert.Equal(t, tenant.StatusActive.String(), s)
	})

	t.Run("cancel requires suspension first", func(t *testing.T) {
		t.Parallel()
		_, err := m.Next(tenant.StatusActive.String(), tenant.EventCancel)
		require.Error(t, err)

		s, err := m.Next(tenant.StatusSuspended.String(), tenant.EventCancel)
		require.NoError(t, err)
		assert.Equal(t, tenant.StatusCancelled.String(), s)
	})

	t.Run("block from any live state", func(t *testing.T) {
		t.Parallel()
		for _, from := range []tenant.Status{
			tenant.StatusProvisioning, tenant.StatusTrial, tenant.StatusActive,
			tenant.StatusSuspended, tenant.StatusInactive,
		} {
			s, err := m.Next(from.String(), tenant.EventBlock)
			require.NoError(t, err, "block from %s", from)
			assert.Equal(t, tenant.StatusBlocked.String(), s)
		}
	})

	t.Run("deleted is terminal", func(t *testing.T) {
		t.Parallel()
		assert.True(t, m.Terminal(tenant.StatusDeleted.String()))
		assert.Empty(t, m.Events(tenant.StatusDeleted.String()))
	})
}
