package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/queue"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetStalePendingOnline(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockQueueRepository struct{ mock.Mock }

func (m *MockQueueRepository) Enqueue(
	ctx context.Context, restaurantID, orderID kernel.UUID, estimatedReadyTime time.Time,
) (*queue.Slot, error) {
	args := m.Called(ctx, restaurantID, orderID, estimatedReadyTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queue.Slot), args.Error(1)
}
func (m *MockQueueRepository) Dequeue(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}
func (m *MockQueueRepository) GetByOrderID(_ context.Context, _ kernel.UUID) (*queue.Slot, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockQueueRepository) GetByRestaurant(_ context.Context, _ kernel.UUID) ([]*queue.Slot, error) {
	return nil, errors.New("not implemented in mock")
}

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) Add(ctx context.Context, transaction *billing.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}
func (m *MockTransactionRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*billing.Transaction, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Transaction), args.Error(1)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Get(_ context.Context, _ kernel.UUID) (*menu.Item, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockMenuItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Item), args.Error(1)
}
func (m *MockMenuItemRepository) GetByRestaurant(_ context.Context, _ kernel.UUID, _ bool) ([]*menu.Item, error) {
	return nil, errors.New("not implemented in mock")
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) GetOwnerID(ctx context.Context, restaurantID kernel.UUID) (kernel.UUID, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, event any) error {
	args := m.Called(ctx, topic, event)
	return args.Error(0)
}

type MockCreateOrderUoW struct{ mock.Mock }

func (m *MockCreateOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCreateOrderUoW) QueueRepository() ports.QueueRepository {
	args := m.Called()
	return args.Get(0).(ports.QueueRepository)
}
func (m *MockCreateOrderUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockUpdateOrderStatusUoW struct{ mock.Mock }

func (m *MockUpdateOrderStatusUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUpdateOrderStatusUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUpdateOrderStatusUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUpdateOrderStatusUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUpdateOrderStatusUoW) QueueRepository() ports.QueueRepository {
	args := m.Called()
	return args.Get(0).(ports.QueueRepository)
}
func (m *MockUpdateOrderStatusUoW) TransactionRepository() ports.TransactionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransactionRepository)
}
func (m *MockUpdateOrderStatusUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockUpdateOrderStatusUoWFactory struct{ mock.Mock }

func (m *MockUpdateOrderStatusUoWFactory) Create() commands.UpdateOrderStatusUoW {
	args := m.Called()
	return args.Get(0).(commands.UpdateOrderStatusUoW)
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustTaxRates(t *testing.T) billing.TaxRates {
	t.Helper()
	rates, err := billing.TaxRatesFromStrings("0.05", "0.07")
	require.NoError(t, err)
	return rates
}

func newMenuItem(t *testing.T, restaurantID kernel.UUID, price string) *menu.Item {
	t.Helper()
	item, err := menu.NewItem(
		kernel.NewUUID(), restaurantID, "Margherita", mustMoney(t, price), "pizza", true, time.Now(),
	)
	require.NoError(t, err)
	return item
}
