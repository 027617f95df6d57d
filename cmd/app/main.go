package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"orderentry/cmd"
	httpadapter "orderentry/internal/adapters/in/http"
	"orderentry/internal/adapters/out/postgres/customerrepo"
	"orderentry/internal/adapters/out/postgres/notificationrepo"
	"orderentry/internal/adapters/out/postgres/productrepo"
	"orderentry/internal/adapters/out/postgres/taxraterepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrateSchema(gormDB); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		FulfillmentBaseURL:       goDotEnvVariable("FULFILLMENT_BASE_URL"),
		RedisHost:                goDotEnvVariable("REDIS_HOST"),
		KafkaHost:                goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderConfirmedTopic: goDotEnvVariable("KAFKA_ORDER_CONFIRMED_TOPIC"),
	}

	ttl, err := strconv.Atoi(goDotEnvVariable("TAX_CACHE_TTL_SECONDS"))
	if err != nil {
		log.Fatalf("TAX_CACHE_TTL_SECONDS must be an integer")
	}
	config.TaxCacheTTLSeconds = ttl

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
}

func migrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&customerrepo.CustomerDTO{},
		&taxraterepo.TaxRateDTO{},
		&notificationrepo.NotificationDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	placeOrderHandler, err := app.CreatePlaceOrderCommandHandler()
	if err != nil {
		log.Fatalf("Failed to create place order handler: %v", err)
	}

	server := httpadapter.NewServer(
		placeOrderHandler,
		app.CreateGetCustomerQueryHandler(),
		app.CreateGetTaxRatesQueryHandler(),
		app.CreateProductRepository(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
