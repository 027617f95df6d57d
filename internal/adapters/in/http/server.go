// Package http exposes the order entry workflow over a JSON API.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"orderentry/internal/core/application/usecases/commands"
	"orderentry/internal/core/application/usecases/queries"
	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/core/domain/model/order"
	"orderentry/internal/core/ports"
	"orderentry/internal/pkg/errs"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler  commands.PlaceOrderCommandHandler
	getCustomerHandler queries.GetCustomerQueryHandler
	getTaxRatesHandler queries.GetTaxRatesQueryHandler
	catalog            ports.ProductCatalog
	validate           *validatorv10.Validate
}

// NewServer creates a new HTTP server with the required handlers. The
// catalog resolves request SKUs into priced products before an order is
// constructed.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	getCustomerHandler queries.GetCustomerQueryHandler,
	getTaxRatesHandler queries.GetTaxRatesQueryHandler,
	catalog ports.ProductCatalog,
) *Server {
	return &Server{
		placeOrderHandler:  placeOrderHandler,
		getCustomerHandler: getCustomerHandler,
		getTaxRatesHandler: getTaxRatesHandler,
		catalog:            catalog,
		validate:           validatorv10.New(),
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/customers/:id", s.GetCustomer)
	api.GET("/tax-rates", s.GetTaxRates)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders - places an order and returns its
// summary.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := s.validate.Struct(request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	requestCtx := ctx.Request().Context()

	items := make([]order.Item, 0, len(request.Items))
	for _, line := range request.Items {
		sku, err := kernel.NewSKU(line.SKU)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid order data: " + err.Error(),
			})
		}

		p, err := s.catalog.GetBySKU(requestCtx, sku)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return ctx.JSON(http.StatusNotFound, ErrorResponse{
					Code:    http.StatusNotFound,
					Message: "Unknown product: " + line.SKU,
				})
			}
			return internalError(ctx, "Failed to resolve product")
		}

		item, err := order.NewItem(p, line.Quantity)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid order data: " + err.Error(),
			})
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(request.CustomerID, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(o)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	summary, err := s.placeOrderHandler.Handle(requestCtx, cmd)
	if err != nil {
		var validationErr *errs.ValidationFailedError
		if errors.As(err, &validationErr) {
			return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Code:    http.StatusUnprocessableEntity,
				Message: "Order validation failed",
				Reasons: validationErr.Reasons,
			})
		}
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Customer not found",
			})
		}
		return internalError(ctx, "Failed to place order")
	}

	taxes := make([]TaxRateResponse, 0, len(summary.Taxes()))
	for _, entry := range summary.Taxes() {
		taxes = append(taxes, TaxRateResponse{
			Description: entry.Description(),
			Rate:        entry.Rate(),
		})
	}

	return ctx.JSON(http.StatusCreated, OrderSummaryResponse{
		OrderID:     summary.OrderID(),
		OrderNumber: summary.OrderNumber(),
		CustomerID:  summary.CustomerID(),
		Taxes:       taxes,
		NetTotal:    summary.NetTotal(),
		Total:       summary.Total(),
	})
}

// GetCustomer handles GET /api/v1/customers/:id - retrieves a customer profile.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	customer, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Customer not found",
			})
		}
		return internalError(ctx, "Failed to retrieve customer")
	}

	return ctx.JSON(http.StatusOK, CustomerResponse{
		ID:              customer.ID,
		Name:            customer.Name,
		Email:           customer.Email,
		AddressLine1:    customer.AddressLine1,
		City:            customer.City,
		StateOrProvince: customer.StateOrProvince,
		PostalCode:      customer.PostalCode,
		Country:         customer.Country,
	})
}

// GetTaxRates handles GET /api/v1/tax-rates - retrieves the rates for a
// location given by the postalCode and country query parameters.
func (s *Server) GetTaxRates(ctx echo.Context) error {
	query, err := queries.NewGetTaxRatesQuery(
		ctx.QueryParam("postalCode"),
		ctx.QueryParam("country"),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Both postalCode and country are required",
		})
	}

	rates, err := s.getTaxRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve tax rates")
	}

	response := make([]TaxRateResponse, 0, len(rates))
	for _, rate := range rates {
		response = append(response, TaxRateResponse{
			Description: rate.Description,
			Rate:        rate.Rate,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
