package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid status names", func(t *testing.T) {
		cases := map[string]order.Status{
			"Pending":   order.Pending,
			"Confirmed": order.Confirmed,
			"Preparing": order.Preparing,
			"Ready":     order.Ready,
			"Completed": order.Completed,
			"Cancelled": order.Cancelled,
		}

		for name, want := range cases {
			got, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown status name", func(t *testing.T) {
		_, err := order.StatusFromString("Delivered")
		require.Error(t, err)
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := order.StatusFromString("")
		require.Error(t, err)
	})
}

func TestStatusValidate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.Ready, order.Completed, order.Cancelled,
		} {
			assert.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		assert.Error(t, order.Unknown.Validate())
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		assert.Error(t, order.Status(99).Validate())
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
}

func TestStatusTransitionTo(t *testing.T) {
	t.Run("should allow stepping forward through the full lifecycle", func(t *testing.T) {
		steps := []order.Status{order.Confirmed, order.Preparing, order.Ready, order.Completed}

		current := order.Pending
		for _, next := range steps {
			got, err := current.TransitionTo(next)
			require.NoError(t, err)
			assert.Equal(t, next, got)
			current = got
		}
	})

	t.Run("should allow cancelling from any non-terminal status", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Confirmed, order.Preparing, order.Ready} {
			got, err := s.TransitionTo(order.Cancelled)
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, got)
		}
	})

	t.Run("should reject skipping ahead", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Preparing)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)

		_, err = order.Confirmed.TransitionTo(order.Completed)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("should reject moving backward", func(t *testing.T) {
		_, err := order.Preparing.TransitionTo(order.Confirmed)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("should reject any transition out of Completed", func(t *testing.T) {
		for _, target := range []order.Status{order.Pending, order.Confirmed, order.Preparing, order.Ready, order.Cancelled} {
			_, err := order.Completed.TransitionTo(target)
			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		}
	})

	t.Run("should reject any transition out of Cancelled", func(t *testing.T) {
		_, err := order.Cancelled.TransitionTo(order.Pending)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
	})

	t.Run("should not allow a status to transition to itself", func(t *testing.T) {
		_, err := order.Preparing.TransitionTo(order.Preparing)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}
