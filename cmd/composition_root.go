package cmd

import (
	"log/slog"
	"strings"
	"time"

	"orderentry/internal/adapters/out/fulfillment"
	"orderentry/internal/adapters/out/kafkapub"
	"orderentry/internal/adapters/out/postgres/customerrepo"
	"orderentry/internal/adapters/out/postgres/notificationrepo"
	"orderentry/internal/adapters/out/postgres/productrepo"
	"orderentry/internal/adapters/out/postgres/taxraterepo"
	"orderentry/internal/adapters/out/rediscache"
	"orderentry/internal/core/application/usecases/commands"
	"orderentry/internal/core/application/usecases/queries"
	"orderentry/internal/core/ports"
	"orderentry/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		gormDB: gormDB,
		logger: logger,
	}
}

func (c *CompositionRoot) CreateProductRepository() *productrepo.GormProductRepository {
	return productrepo.NewGormProductRepository(c.gormDB)
}

func (c *CompositionRoot) CreateTaxRateLookup() ports.TaxRateLookup {
	lookup := taxraterepo.NewGormTaxRateRepository(c.gormDB)

	if c.config.RedisHost == "" {
		return lookup
	}

	cache := rediscache.NewRedisCache(c.config.RedisHost, "orderentry")
	ttl := time.Duration(c.config.TaxCacheTTLSeconds) * time.Second
	return rediscache.NewTaxRateCache(lookup, cache, ttl)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() (commands.PlaceOrderCommandHandler, error) {
	dispatcher, err := fulfillment.NewClient(c.config.FulfillmentBaseURL)
	if err != nil {
		return commands.PlaceOrderCommandHandler{}, err
	}

	return commands.NewPlaceOrderCommandHandler(
		c.CreateProductRepository(),
		dispatcher,
		customerrepo.NewGormCustomerRepository(c.gormDB),
		c.CreateTaxRateLookup(),
		notificationrepo.NewGormNotificationRepository(c.gormDB),
	), nil
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTaxRatesQueryHandler() queries.GetTaxRatesQueryHandler {
	return queries.NewGetTaxRatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	publisher := kafkapub.NewPublisher(
		strings.Split(c.config.KafkaHost, ","),
		c.config.KafkaOrderConfirmedTopic,
	)

	return jobs.NewJobManager(
		notificationrepo.NewGormNotificationRepository(c.gormDB),
		publisher,
		c.logger,
	)
}
