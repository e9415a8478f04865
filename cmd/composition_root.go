package cmd

import (
	"log/slog"
	"time"

	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/restaurantrepo"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	taxRates   billing.TaxRates

	defaultLeadTime  time.Duration
	staleGracePeriod time.Duration

	logger *slog.Logger
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	taxRates billing.TaxRates,
	defaultLeadTime time.Duration,
	staleGracePeriod time.Duration,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:        publisher,
		taxRates:         taxRates,
		defaultLeadTime:  defaultLeadTime,
		staleGracePeriod: staleGracePeriod,
		logger:           logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateOrderCommandHandler(
		f,
		c.publisher,
		services.NewPricingService(),
		c.taxRates,
		c.defaultLeadTime,
		c.logger,
	)
	return &handler
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	var f commands.UpdateOrderStatusUoWFactory = FuncUpdateOrderStatusUoWFactory(func() commands.UpdateOrderStatusUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewUpdateOrderStatusCommandHandler(f, c.publisher, c.logger)
	return &handler
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantOrdersQueryHandler() queries.GetRestaurantOrdersQueryHandler {
	return queries.NewGetRestaurantOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantQueueQueryHandler() queries.GetRestaurantQueueQueryHandler {
	return queries.NewGetRestaurantQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionsQueryHandler() queries.GetTransactionsQueryHandler {
	return queries.NewGetTransactionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionQueryHandler() queries.GetTransactionQueryHandler {
	return queries.NewGetTransactionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSalesReportQueryHandler() queries.SalesReportQueryHandler {
	return queries.NewSalesReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTaxSummaryQueryHandler() queries.TaxSummaryQueryHandler {
	return queries.NewTaxSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportTransactionsQueryHandler() queries.ExportTransactionsQueryHandler {
	return queries.NewExportTransactionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateMenuItemRepository() ports.MenuItemRepository {
	return menurepo.NewGormMenuItemRepository(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateUpdateOrderStatusCommandHandler(),
		orderrepo.NewGormOrderRepository(c.gormDB, noTracking{}),
		restaurantrepo.NewGormRestaurantRepository(c.gormDB),
		c.staleGracePeriod,
		c.logger,
	)
}

// noTracking satisfies the repositories' aggregate tracker outside a unit
// of work, where read results never need commit-time bookkeeping.
type noTracking struct{}

func (noTracking) TrackAggregate(_ kernel.UUID, _ any) {}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncUpdateOrderStatusUoWFactory func() commands.UpdateOrderStatusUoW

func (f FuncUpdateOrderStatusUoWFactory) Create() commands.UpdateOrderStatusUoW {
	return f()
}
