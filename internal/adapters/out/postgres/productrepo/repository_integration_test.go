package productrepo_test

import (
	"context"
	"testing"
	"time"

	"orderentry/internal/adapters/out/postgres/productrepo"
	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/core/domain/model/product"
	"orderentry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductRepositoryIntegrationTestSuite provides integration tests for the
// product catalog repository using a PostgreSQL container.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
	suite.repository = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) makeProduct(skuValue string, price float64) product.Product {
	sku, err := kernel.NewSKU(skuValue)
	suite.Require().NoError(err)
	money, err := kernel.NewMoney(price)
	suite.Require().NoError(err)
	p, err := product.NewProduct(sku, "Product "+skuValue, money)
	suite.Require().NoError(err)
	return p
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGetBySKU() {
	ctx := context.Background()
	p := suite.makeProduct("SKU-1", 5)

	err := suite.repository.Add(ctx, p, 10)
	suite.Require().NoError(err)

	got, err := suite.repository.GetBySKU(ctx, p.SKU())
	suite.Require().NoError(err)
	suite.True(p.IsEqual(got))
	suite.Equal("Product SKU-1", got.Name())
	suite.InDelta(5.0, got.Price().Amount(), 1e-9)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetBySKU_NotFound() {
	ctx := context.Background()
	sku, err := kernel.NewSKU("SKU-MISSING")
	suite.Require().NoError(err)

	_, err = suite.repository.GetBySKU(ctx, sku)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestIsInStock() {
	ctx := context.Background()

	inStock := suite.makeProduct("SKU-IN", 5)
	suite.Require().NoError(suite.repository.Add(ctx, inStock, 3))

	depleted := suite.makeProduct("SKU-OUT", 5)
	suite.Require().NoError(suite.repository.Add(ctx, depleted, 0))

	got, err := suite.repository.IsInStock(ctx, inStock.SKU())
	suite.Require().NoError(err)
	suite.True(got)

	got, err = suite.repository.IsInStock(ctx, depleted.SKU())
	suite.Require().NoError(err)
	suite.False(got)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestIsInStock_UnknownSKUReportsFalse() {
	ctx := context.Background()
	sku, err := kernel.NewSKU("SKU-UNKNOWN")
	suite.Require().NoError(err)

	got, err := suite.repository.IsInStock(ctx, sku)

	suite.Require().NoError(err)
	suite.False(got)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdjustStock() {
	ctx := context.Background()
	p := suite.makeProduct("SKU-ADJ", 5)
	suite.Require().NoError(suite.repository.Add(ctx, p, 1))

	err := suite.repository.AdjustStock(ctx, p.SKU(), -1)
	suite.Require().NoError(err)

	inStock, err := suite.repository.IsInStock(ctx, p.SKU())
	suite.Require().NoError(err)
	suite.False(inStock)

	err = suite.repository.AdjustStock(ctx, p.SKU(), 5)
	suite.Require().NoError(err)

	inStock, err = suite.repository.IsInStock(ctx, p.SKU())
	suite.Require().NoError(err)
	suite.True(inStock)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdjustStock_UnknownSKU() {
	ctx := context.Background()
	sku, err := kernel.NewSKU("SKU-UNKNOWN")
	suite.Require().NoError(err)

	err = suite.repository.AdjustStock(ctx, sku, 1)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
