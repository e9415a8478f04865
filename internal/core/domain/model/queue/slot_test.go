package queue_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/queue"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	validRestaurantID := kernel.NewUUID()
	validOrderID := kernel.NewUUID()
	readyTime := time.Now().Add(30 * time.Minute)

	t.Run("should create valid slot", func(t *testing.T) {
		slot, err := queue.NewSlot(validRestaurantID, validOrderID, 1, readyTime)

		require.NoError(t, err)
		require.NoError(t, slot.Validate())
		assert.True(t, slot.RestaurantID().IsEqual(validRestaurantID))
		assert.True(t, slot.OrderID().IsEqual(validOrderID))
		assert.Equal(t, 1, slot.Position())
		assert.True(t, readyTime.Equal(slot.EstimatedReadyTime()))
	})

	t.Run("should fail with invalid restaurant id", func(t *testing.T) {
		slot, err := queue.NewSlot(kernel.UUID{}, validOrderID, 1, readyTime)

		require.Error(t, err)
		assert.Nil(t, slot)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail with zero position", func(t *testing.T) {
		slot, err := queue.NewSlot(validRestaurantID, validOrderID, 0, readyTime)

		require.Error(t, err)
		assert.Nil(t, slot)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative position", func(t *testing.T) {
		_, err := queue.NewSlot(validRestaurantID, validOrderID, -1, readyTime)
		require.Error(t, err)
	})
}

func TestSlotValidate(t *testing.T) {
	t.Run("should fail for nil slot", func(t *testing.T) {
		var slot *queue.Slot
		assert.ErrorIs(t, slot.Validate(), queue.ErrSlotIsNotConstructed)
	})

	t.Run("should fail for zero value slot", func(t *testing.T) {
		slot := &queue.Slot{}
		assert.ErrorIs(t, slot.Validate(), queue.ErrSlotIsNotConstructed)
	})
}

func TestResolveReadyTime(t *testing.T) {
	now := time.Now()

	t.Run("should use requested pickup time when given", func(t *testing.T) {
		requested := now.Add(2 * time.Hour)
		got := queue.ResolveReadyTime(&requested, now, 30*time.Minute)
		assert.True(t, requested.Equal(got))
	})

	t.Run("should fall back to default lead time", func(t *testing.T) {
		got := queue.ResolveReadyTime(nil, now, 30*time.Minute)
		assert.True(t, now.Add(30*time.Minute).Equal(got))
	})
}

func TestCheckDensity(t *testing.T) {
	restaurantID := kernel.NewUUID()
	readyTime := time.Now()

	newSlot := func(t *testing.T, position int) *queue.Slot {
		t.Helper()
		slot, err := queue.NewSlot(restaurantID, kernel.NewUUID(), position, readyTime)
		require.NoError(t, err)
		return slot
	}

	t.Run("should accept empty queue", func(t *testing.T) {
		assert.NoError(t, queue.CheckDensity(nil))
	})

	t.Run("should accept dense positions regardless of order", func(t *testing.T) {
		slots := []*queue.Slot{newSlot(t, 3), newSlot(t, 1), newSlot(t, 2)}
		assert.NoError(t, queue.CheckDensity(slots))
	})

	t.Run("should reject gap in positions", func(t *testing.T) {
		slots := []*queue.Slot{newSlot(t, 1), newSlot(t, 3)}

		err := queue.CheckDensity(slots)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject duplicated position", func(t *testing.T) {
		slots := []*queue.Slot{newSlot(t, 1), newSlot(t, 1)}

		err := queue.CheckDensity(slots)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed slot", func(t *testing.T) {
		slots := []*queue.Slot{newSlot(t, 1), {}}
		assert.Error(t, queue.CheckDensity(slots))
	})
}
