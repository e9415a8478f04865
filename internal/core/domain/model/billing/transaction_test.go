package billing_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, mustMoney(t, "10.00"))
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Table, order.Completed, "9", nil,
		[]order.Item{item},
		order.Totals{
			Subtotal: mustMoney(t, "20.00"),
			TaxA:     mustMoney(t, "1.00"),
			TaxB:     mustMoney(t, "1.40"),
			Tip:      mustMoney(t, "3.00"),
			Total:    mustMoney(t, "25.40"),
		},
		time.Now())
	require.NoError(t, err)
	return o
}

func TestNewTransactionForOrder(t *testing.T) {
	t.Run("should copy order totals and stamp fiscal year", func(t *testing.T) {
		o := completedOrder(t)
		now := time.Date(2026, time.March, 15, 12, 30, 0, 0, time.UTC)

		tx, err := billing.NewTransactionForOrder(kernel.NewUUID(), o, now)

		require.NoError(t, err)
		require.NoError(t, tx.Validate())
		assert.True(t, tx.OrderID().IsEqual(o.ID()))
		assert.True(t, tx.RestaurantID().IsEqual(o.RestaurantID()))
		assert.True(t, mustMoney(t, "25.40").IsEqual(tx.Amount()))
		assert.True(t, mustMoney(t, "1.00").IsEqual(tx.TaxAAmount()))
		assert.True(t, mustMoney(t, "1.40").IsEqual(tx.TaxBAmount()))
		assert.True(t, mustMoney(t, "3.00").IsEqual(tx.TipAmount()))
		assert.Equal(t, 2026, tx.FiscalYear())
		assert.Equal(t, now, tx.CreatedAt())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		_, err := billing.NewTransactionForOrder(kernel.UUID{}, completedOrder(t), time.Now())
		require.Error(t, err)
	})

	t.Run("should fail with unconstructed order", func(t *testing.T) {
		_, err := billing.NewTransactionForOrder(kernel.NewUUID(), &order.Order{}, time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestFiscalYear(t *testing.T) {
	assert.Equal(t, 2026, billing.FiscalYear(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, billing.FiscalYear(time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)))
}

func TestGenerateReceiptNumber(t *testing.T) {
	restaurantID := kernel.NewUUID()
	at := time.Date(2026, time.March, 15, 12, 30, 0, 0, time.UTC)

	t.Run("should embed restaurant prefix and timestamp", func(t *testing.T) {
		receipt := billing.GenerateReceiptNumber(restaurantID, at)

		assert.True(t, strings.HasPrefix(receipt, "RCP-"))
		assert.Contains(t, receipt, restaurantID.String()[:8])
		assert.Contains(t, receipt, fmt.Sprintf("%d", at.UnixMilli()))

		parts := strings.Split(receipt, "-")
		require.Len(t, parts, 4)
		assert.Len(t, parts[3], 8)
	})

	t.Run("should generate distinct numbers for the same instant", func(t *testing.T) {
		first := billing.GenerateReceiptNumber(restaurantID, at)
		second := billing.GenerateReceiptNumber(restaurantID, at)
		assert.NotEqual(t, first, second)
	})
}

func TestRestoreTransaction(t *testing.T) {
	t.Run("should restore transaction from persisted fields", func(t *testing.T) {
		orderID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		receipt := billing.GenerateReceiptNumber(restaurantID, time.Now())

		tx, err := billing.RestoreTransaction(
			kernel.NewUUID(), orderID, restaurantID,
			mustMoney(t, "25.40"), mustMoney(t, "1.00"), mustMoney(t, "1.40"), mustMoney(t, "3.00"),
			2026, receipt, time.Now())

		require.NoError(t, err)
		require.NoError(t, tx.Validate())
		assert.Equal(t, receipt, tx.ReceiptNumber())
		assert.Equal(t, 2026, tx.FiscalYear())
	})

	t.Run("should fail with empty receipt number", func(t *testing.T) {
		_, err := billing.RestoreTransaction(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustMoney(t, "25.40"), mustMoney(t, "1.00"), mustMoney(t, "1.40"), mustMoney(t, "3.00"),
			2026, "", time.Now())
		require.Error(t, err)
	})
}
