package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "orderentry/internal/adapters/in/http"
	"orderentry/internal/core/application/usecases/commands"
	"orderentry/internal/core/application/usecases/queries"
	"orderentry/internal/core/domain/model/customer"
	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/core/domain/model/order"
	"orderentry/internal/core/domain/model/product"
	"orderentry/internal/core/domain/model/tax"
	"orderentry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetBySKU(ctx context.Context, sku kernel.SKU) (product.Product, error) {
	args := m.Called(ctx, sku)
	return args.Get(0).(product.Product), args.Error(1)
}

type MockProductAvailability struct{ mock.Mock }

func (m *MockProductAvailability) IsInStock(ctx context.Context, sku kernel.SKU) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

type MockFulfillmentDispatcher struct{ mock.Mock }

func (m *MockFulfillmentDispatcher) Fulfill(ctx context.Context, o *order.Order) (order.Confirmation, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(order.Confirmation), args.Error(1)
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) GetCustomer(ctx context.Context, customerID int64) (customer.Customer, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(customer.Customer), args.Error(1)
}

type MockTaxRateLookup struct{ mock.Mock }

func (m *MockTaxRateLookup) GetTaxEntries(ctx context.Context, location kernel.Location) ([]tax.Entry, error) {
	args := m.Called(ctx, location)
	if entries := args.Get(0); entries != nil {
		return entries.([]tax.Entry), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendOrderConfirmationEmail(ctx context.Context, customerID int64, orderID int64) error {
	args := m.Called(ctx, customerID, orderID)
	return args.Error(0)
}

type serverFixture struct {
	catalog      *MockProductCatalog
	availability *MockProductAvailability
	fulfillment  *MockFulfillmentDispatcher
	customers    *MockCustomerDirectory
	taxRates     *MockTaxRateLookup
	notifier     *MockNotifier
	echo         *echo.Echo
}

func newServerFixture() *serverFixture {
	f := &serverFixture{
		catalog:      new(MockProductCatalog),
		availability: new(MockProductAvailability),
		fulfillment:  new(MockFulfillmentDispatcher),
		customers:    new(MockCustomerDirectory),
		taxRates:     new(MockTaxRateLookup),
		notifier:     new(MockNotifier),
		echo:         echo.New(),
	}

	placeOrderHandler := commands.NewPlaceOrderCommandHandler(
		f.availability, f.fulfillment, f.customers, f.taxRates, f.notifier)

	server := httpadapter.NewServer(
		placeOrderHandler,
		queries.GetCustomerQueryHandler{},
		queries.GetTaxRatesQueryHandler{},
		f.catalog,
	)
	server.RegisterRoutes(f.echo)
	return f
}

func (f *serverFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func makeProduct(t *testing.T, skuValue string, price float64) product.Product {
	t.Helper()

	sku, err := kernel.NewSKU(skuValue)
	require.NoError(t, err)
	money, err := kernel.NewMoney(price)
	require.NoError(t, err)
	p, err := product.NewProduct(sku, "Product "+skuValue, money)
	require.NoError(t, err)
	return p
}

func TestServer_Health(t *testing.T) {
	f := newServerFixture()

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestServer_PlaceOrder_Success(t *testing.T) {
	f := newServerFixture()

	p := makeProduct(t, "SKU-1", 5)
	location, err := kernel.NewLocation("98168", "USA")
	require.NoError(t, err)
	cust, err := customer.NewCustomer(123, "Bob", "bobby7@gmail.com", "5th ave s", "Seattle", "WA", location)
	require.NoError(t, err)
	confirmation, err := order.NewConfirmation(3242, "AL435DSD")
	require.NoError(t, err)
	entry, err := tax.NewEntry("State Sales tax", 9.0)
	require.NoError(t, err)

	f.catalog.On("GetBySKU", mock.Anything, p.SKU()).Return(p, nil)
	f.availability.On("IsInStock", mock.Anything, p.SKU()).Return(true, nil)
	f.fulfillment.On("Fulfill", mock.Anything, mock.Anything).Return(confirmation, nil).Once()
	f.customers.On("GetCustomer", mock.Anything, int64(123)).Return(cust, nil)
	f.taxRates.On("GetTaxEntries", mock.Anything, location).Return([]tax.Entry{entry}, nil)
	f.notifier.On("SendOrderConfirmationEmail", mock.Anything, int64(123), int64(3242)).Return(nil)

	rec := f.do(http.MethodPost, "/api/v1/orders",
		`{"customerId": 123, "items": [{"sku": "SKU-1", "quantity": 2}]}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, float64(3242), response["orderId"])
	assert.Equal(t, "AL435DSD", response["orderNumber"])
	assert.Equal(t, float64(123), response["customerId"])
	assert.InDelta(t, 10.0, response["netTotal"], 1e-9)
	assert.InDelta(t, 10.9, response["total"], 1e-9)
}

func TestServer_PlaceOrder_ValidationFailureReturns422(t *testing.T) {
	f := newServerFixture()

	p := makeProduct(t, "SKU-1", 5)
	f.catalog.On("GetBySKU", mock.Anything, p.SKU()).Return(p, nil)

	rec := f.do(http.MethodPost, "/api/v1/orders",
		`{"customerId": 123, "items": [{"sku": "SKU-1", "quantity": 1}, {"sku": "SKU-1", "quantity": 2}]}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	reasons, ok := response["reasons"].([]any)
	require.True(t, ok)
	assert.Contains(t, reasons, "Order Items are not unique by product.")
	f.fulfillment.AssertNumberOfCalls(t, "Fulfill", 0)
}

func TestServer_PlaceOrder_OutOfStockReturns422(t *testing.T) {
	f := newServerFixture()

	p := makeProduct(t, "SKU-1", 5)
	f.catalog.On("GetBySKU", mock.Anything, p.SKU()).Return(p, nil)
	f.availability.On("IsInStock", mock.Anything, p.SKU()).Return(false, nil)

	rec := f.do(http.MethodPost, "/api/v1/orders",
		`{"customerId": 123, "items": [{"sku": "SKU-1", "quantity": 1}]}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	reasons, ok := response["reasons"].([]any)
	require.True(t, ok)
	assert.Contains(t, reasons, "Some products are out of stock.")
}

func TestServer_PlaceOrder_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"customerId": `},
		{"missing customer id", `{"items": [{"sku": "SKU-1", "quantity": 1}]}`},
		{"negative customer id", `{"customerId": -1, "items": [{"sku": "SKU-1", "quantity": 1}]}`},
		{"no items", `{"customerId": 123, "items": []}`},
		{"zero quantity", `{"customerId": 123, "items": [{"sku": "SKU-1", "quantity": 0}]}`},
		{"blank sku", `{"customerId": 123, "items": [{"sku": "", "quantity": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture()

			rec := f.do(http.MethodPost, "/api/v1/orders", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			f.fulfillment.AssertNumberOfCalls(t, "Fulfill", 0)
		})
	}
}

func TestServer_PlaceOrder_UnknownSKUReturns404(t *testing.T) {
	f := newServerFixture()

	sku, err := kernel.NewSKU("SKU-MISSING")
	require.NoError(t, err)
	f.catalog.On("GetBySKU", mock.Anything, sku).
		Return(product.Product{}, errs.NewObjectNotFoundError("product", "SKU-MISSING"))

	rec := f.do(http.MethodPost, "/api/v1/orders",
		`{"customerId": 123, "items": [{"sku": "SKU-MISSING", "quantity": 1}]}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_GetCustomer_InvalidID(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"non-numeric id", "/api/v1/customers/abc"},
		{"zero id", "/api/v1/customers/0"},
		{"negative id", "/api/v1/customers/-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture()

			rec := f.do(http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestServer_GetTaxRates_MissingParameters(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"no parameters", "/api/v1/tax-rates"},
		{"missing country", "/api/v1/tax-rates?postalCode=98168"},
		{"missing postal code", "/api/v1/tax-rates?country=USA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture()

			rec := f.do(http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
