package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metafit/gymkit/pkg/lifecycle"
)

func newOrderMachine() *lifecycle.Machine {
	m := lifecycle.New("pending")
	m.Allow("pending", "pay", "paid")
	m.Allow("pending", "cancel", "cancelled")
	m.Allow("paid", "ship", "shipped")
	m.Allow("paid", "refund", "refunded")
	return m
}

func TestMachine_Next(t *testing.T) {
	t.Parallel()

	t.Run("valid transition", func(t *testing.T) {
		t.Parallel()
		m := newOrderMachine()

		next, err := m.Next("pending", "pay")
		require.NoError(t, err)
		assert.Equal(t, "paid", next)
	})

	t.Run("unknown event", func(t *testing.T) {
		t.Parallel()
		m := newOrderMachine()

		_, err := m.Next("pending", "ship")
		require.Error(t, err)
		assert.True(t, lifecycle.IsNoTransitionError(err))

		var nte *lifecycle.NoTransitionError
		require.ErrorAs(t, err, &nte)
		assert.Equal(t, "pending", nte.From)
		assert.Equal(t, "ship", nte.Event)
	})

	t.Run("unknown state", func(t *testing.T) {
		t.Parallel()
		m := newOrderMachine()

		_, err := m.Next("nonexistent", "pay")
		assert.True(t, lifecycle.IsNoTransitionError(err))
	})
}

func TestMachine_Can(t *testing.T) {
	t.Parallel()
	m := newOrderMachine()

	assert.True(t, m.Can("pending", "pay"))
	assert.True(t, m.Can("paid", "refund"))
	assert.False(t, m.Can("pending", "refund"))
	assert.False(t, m.Can("shipped", "pay"))
}

func TestMachine_Events(t *testing.T) {
	t.Parallel()
	m := newOrderMachine()

	assert.Equal(t, []string{"cancel", "pay"}, m.Events("pending"))
	assert.Equal(t, []string{"refund", "ship"}, m.Events("paid"))
	assert.Empty(t, m.Events("shipped"))
}

func TestMachine_Terminal(t *testing.T) {
	t.Parallel()
	m := newOrderMachine()

	assert.False(t, m.Terminal("pending"))
	assert.False(t, m.Terminal("paid"))
	assert.True(t, m.Terminal("shipped"))
	assert.True(t, m.Terminal("cancelled"))
}

func TestMachine_Initial(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "pending", newOrderMachine().Initial())
}
