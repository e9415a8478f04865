package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, mustMoney(t, "10.00"))
	require.NoError(t, err)
	return []order.Item{item}
}

func validTotals(t *testing.T) order.Totals {
	t.Helper()
	return order.Totals{
		Subtotal: mustMoney(t, "20.00"),
		TaxA:     mustMoney(t, "1.00"),
		TaxB:     mustMoney(t, "1.40"),
		Tip:      mustMoney(t, "3.00"),
		Total:    mustMoney(t, "25.40"),
	}
}

func TestTotalsValidate(t *testing.T) {
	t.Run("should accept consistent totals", func(t *testing.T) {
		require.NoError(t, validTotals(t).Validate())
	})

	t.Run("should reject total not matching component sum", func(t *testing.T) {
		totals := validTotals(t)
		totals.Total = mustMoney(t, "99.99")

		err := totals.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed components", func(t *testing.T) {
		totals := validTotals(t)
		totals.TaxB = kernel.Money{}
		require.Error(t, totals.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validRestaurantID := kernel.NewUUID()
	validCustomerID := kernel.NewUUID()
	createdAt := time.Now()

	t.Run("should create valid table order in pending status", func(t *testing.T) {
		o, err := order.NewOrder(
			validID, validRestaurantID, validCustomerID,
			order.Table, "12", nil, validItems(t), validTotals(t), createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.RestaurantID().IsEqual(validRestaurantID))
		assert.True(t, o.CustomerID().IsEqual(validCustomerID))
		assert.Equal(t, order.Table, o.Type())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "12", o.TableNumber())
		assert.Nil(t, o.RequestedTime())
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should create valid online order", func(t *testing.T) {
		pickup := time.Now().Add(time.Hour)
		o, err := order.NewOrder(
			validID, validRestaurantID, validCustomerID,
			order.Online, "", &pickup, validItems(t), validTotals(t), createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.Online, o.Type())
		assert.Empty(t, o.TableNumber())
		require.NotNil(t, o.RequestedTime())
		assert.True(t, pickup.Equal(*o.RequestedTime()))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID
		o, err := order.NewOrder(
			invalidID, validRestaurantID, validCustomerID,
			order.Table, "12", nil, validItems(t), validTotals(t), createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail when table order has no table number", func(t *testing.T) {
		_, err := order.NewOrder(
			validID, validRestaurantID, validCustomerID,
			order.Table, "", nil, validItems(t), validTotals(t), createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when table order carries a pickup time", func(t *testing.T) {
		pickup := time.Now().Add(time.Hour)
		_, err := order.NewOrder(
			validID, validRestaurantID, validCustomerID,
			order.Table, "12", &pickup, validItems(t), validTotals(t), createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail when online order has no pickup time", func(t *testing.T) {
		_, err := order.NewOrder(
			validID, validRestaurantID, validCustomerID,
			order.Online, "", nil, validItems(t), validTotals(t), createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when online order carries a table number", func(t *testing.T) {
		pickup := time.Now().Add(time.Hour)
		_, err := order.NewOrder(
			validID, validRestaurantID, validCustomerID,
			order.Online, "5", &pickup, validItems(t), validTotals(t), createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := order.NewOrder(
			validID, validRestaurantID, validCustomerID,
			order.Table, "12", nil, nil, validTotals(t), createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("should fail with inconsistent totals", func(t *testing.T) {
		totals := validTotals(t)
		totals.Total = mustMoney(t, "1.00")

		_, err := order.NewOrder(
			validID, validRestaurantID, validCustomerID,
			order.Table, "12", nil, validItems(t), totals, createdAt)

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order in any valid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Table, order.Preparing, "3", nil, validItems(t), validTotals(t), time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Table, order.Unknown, "3", nil, validItems(t), validTotals(t), time.Now())

		require.Error(t, err)
	})
}

func TestOrderAdvanceTo(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Table, "12", nil, validItems(t), validTotals(t), time.Now())
		require.NoError(t, err)
		return o
	}

	t.Run("should advance through the full lifecycle", func(t *testing.T) {
		o := newPendingOrder(t)

		for _, next := range []order.Status{order.Confirmed, order.Preparing, order.Ready, order.Completed} {
			require.NoError(t, o.AdvanceTo(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("should cancel a pending order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AdvanceTo(order.Cancelled))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should keep current status on rejected transition", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.AdvanceTo(order.Ready)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject leaving a terminal status", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AdvanceTo(order.Cancelled))

		err := o.AdvanceTo(order.Confirmed)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestOrderIsPlacedBy(t *testing.T) {
	customerID := kernel.NewUUID()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), customerID,
		order.Table, "12", nil, validItems(t), validTotals(t), time.Now())
	require.NoError(t, err)

	assert.True(t, o.IsPlacedBy(customerID))
	assert.False(t, o.IsPlacedBy(kernel.NewUUID()))
}

func TestOrderItemsReturnsCopy(t *testing.T) {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Table, "12", nil, validItems(t), validTotals(t), time.Now())
	require.NoError(t, err)

	items := o.Items()
	items[0] = order.Item{}

	assert.NoError(t, o.Items()[0].Validate())
}

func TestOrderValidate(t *testing.T) {
	t.Run("should fail for order not created via constructor", func(t *testing.T) {
		var o order.Order
		err := o.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
