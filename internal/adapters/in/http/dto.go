package http

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	CustomerID int64              `json:"customerId" validate:"required,gt=0"`
	Items      []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderLineRequest is a single order line within a PlaceOrderRequest.
type OrderLineRequest struct {
	SKU      string `json:"sku" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// OrderSummaryResponse is returned when an order is placed successfully.
type OrderSummaryResponse struct {
	OrderID     int64             `json:"orderId"`
	OrderNumber string            `json:"orderNumber"`
	CustomerID  int64             `json:"customerId"`
	Taxes       []TaxRateResponse `json:"taxes"`
	NetTotal    float64           `json:"netTotal"`
	Total       float64           `json:"total"`
}

// TaxRateResponse is a single applicable tax rate.
type TaxRateResponse struct {
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
}

// CustomerResponse is the body of GET /api/v1/customers/:id.
type CustomerResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	AddressLine1    string `json:"addressLine1"`
	City            string `json:"city"`
	StateOrProvince string `json:"stateOrProvince"`
	PostalCode      string `json:"postalCode"`
	Country         string `json:"country"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Reasons []string `json:"reasons,omitempty"`
}
