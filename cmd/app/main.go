package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"restaurant/cmd"
	"restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/amqp"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/queuerepo"
	"restaurant/internal/adapters/out/postgres/restaurantrepo"
	"restaurant/internal/adapters/out/postgres/transactionrepo"
	"restaurant/internal/core/domain/model/billing"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := gorm.Open(gorm_postgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&queuerepo.SlotDTO{},
		&transactionrepo.TransactionDTO{},
		&menurepo.MenuItemDTO{},
		&restaurantrepo.RestaurantDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	connection, err := amqp.NewConnection(configs.AMQPURL, logger)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer connection.Close()
	publisher := amqp.NewPublisher(connection, logger)

	taxRates, err := billing.TaxRatesFromStrings(configs.TaxARate, configs.TaxBRate)
	if err != nil {
		log.Fatalf("Invalid tax rates: %v", err)
	}

	root := cmd.NewCompositionRoot(
		db,
		publisher,
		taxRates,
		durationConfig(configs.DefaultLeadTime, 30*time.Minute),
		durationConfig(configs.StaleGracePeriod, 15*time.Minute),
		logger,
	)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		AMQPURL:          goDotEnvVariable("AMQP_URL"),
		TaxARate:         goDotEnvVariable("TAX_A_RATE"),
		TaxBRate:         goDotEnvVariable("TAX_B_RATE"),
		DefaultLeadTime:  goDotEnvVariable("DEFAULT_LEAD_TIME"),
		StaleGracePeriod: goDotEnvVariable("STALE_GRACE_PERIOD"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationConfig(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration %q: %v", raw, err)
	}
	return parsed
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := http.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetRestaurantOrdersQueryHandler(),
		root.CreateGetCustomerOrdersQueryHandler(),
		root.CreateGetRestaurantQueueQueryHandler(),
		root.CreateGetTransactionsQueryHandler(),
		root.CreateGetTransactionQueryHandler(),
		root.CreateSalesReportQueryHandler(),
		root.CreateTaxSummaryQueryHandler(),
		root.CreateExportTransactionsQueryHandler(),
		root.CreateMenuItemRepository(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
