package queries_test

import (
	"context"
	"time"

	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/queuerepo"
	"restaurant/internal/adapters/out/postgres/restaurantrepo"
	"restaurant/internal/adapters/out/postgres/transactionrepo"
	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stretchr/testify/suite"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

// queriesSuite starts one PostgreSQL container with the full schema and
// offers seeding helpers shared by the query handler suites.
type queriesSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	orderRepo       *orderrepo.GormOrderRepository
	queueRepo       *queuerepo.GormQueueRepository
	transactionRepo *transactionrepo.GormTransactionRepository
}

func (suite *queriesSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&queuerepo.SlotDTO{},
		&transactionrepo.TransactionDTO{},
		&menurepo.MenuItemDTO{},
		&restaurantrepo.RestaurantDTO{},
	)
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.queueRepo = queuerepo.NewGormQueueRepository(db)
	suite.transactionRepo = transactionrepo.NewGormTransactionRepository(db, &mockAggregateTracker{})
}

func (suite *queriesSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *queriesSuite) SetupTest() {
	for _, table := range []string{"orders", "order_items", "queue_slots", "transactions", "restaurants"} {
		err := suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		suite.Require().NoError(err)
	}
}

// createRestaurant inserts a restaurant row and returns its ID and owner ID.
func (suite *queriesSuite) createRestaurant(name string) (kernel.UUID, kernel.UUID) {
	restaurantID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	err := suite.db.Create(&restaurantrepo.RestaurantDTO{
		ID:      restaurantID.Bytes(),
		OwnerID: ownerID.Bytes(),
		Name:    name,
	}).Error
	suite.Require().NoError(err)

	return restaurantID, ownerID
}

func (suite *queriesSuite) mustMoney(s string) kernel.Money {
	money, err := kernel.MoneyFromString(s)
	suite.Require().NoError(err)
	return money
}

func (suite *queriesSuite) testTotals() order.Totals {
	return order.Totals{
		Subtotal: suite.mustMoney("20.00"),
		TaxA:     suite.mustMoney("1.00"),
		TaxB:     suite.mustMoney("1.40"),
		Tip:      suite.mustMoney("0.00"),
		Total:    suite.mustMoney("22.40"),
	}
}

// createOrder persists an order with a single two-unit line and the
// standard test totals. Online orders get a pickup time one hour after
// creation.
func (suite *queriesSuite) createOrder(
	restaurantID kernel.UUID,
	customerID kernel.UUID,
	orderType order.Type,
	status order.Status,
	createdAt time.Time,
) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, suite.mustMoney("10.00"))
	suite.Require().NoError(err)

	tableNumber := ""
	var requestedTime *time.Time
	if orderType == order.Table {
		tableNumber = "7"
	} else {
		pickup := createdAt.Add(time.Hour)
		requestedTime = &pickup
	}

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(),
		restaurantID,
		customerID,
		orderType,
		status,
		tableNumber,
		requestedTime,
		[]order.Item{item},
		suite.testTotals(),
		createdAt,
	)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

// createTransaction persists a transaction record with the standard test
// amounts for the given fiscal year.
func (suite *queriesSuite) createTransaction(
	restaurantID kernel.UUID,
	fiscalYear int,
	createdAt time.Time,
) *billing.Transaction {
	transaction, err := billing.RestoreTransaction(
		kernel.NewUUID(),
		kernel.NewUUID(),
		restaurantID,
		suite.mustMoney("22.40"),
		suite.mustMoney("1.00"),
		suite.mustMoney("1.40"),
		suite.mustMoney("0.00"),
		fiscalYear,
		"RCP-"+kernel.NewUUID().String(),
		createdAt,
	)
	suite.Require().NoError(err)

	err = suite.transactionRepo.Add(context.Background(), transaction)
	suite.Require().NoError(err)

	return transaction
}
