// Package fulfillment dispatches validated orders to the downstream
// fulfillment service over HTTP.
package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orderentry/internal/core/domain/model/order"
	"orderentry/internal/pkg/errs"

	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// Client implements FulfillmentDispatcher against the fulfillment service's
// HTTP API. Every dispatch carries a fresh idempotency key so the downstream
// service can deduplicate retried requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a fulfillment client for the service at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type orderLineRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type fulfillRequest struct {
	CustomerID int64              `json:"customerId"`
	Items      []orderLineRequest `json:"items"`
}

type fulfillResponse struct {
	OrderID     int64  `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

// Fulfill dispatches the order and returns the downstream confirmation.
func (c *Client) Fulfill(ctx context.Context, o *order.Order) (order.Confirmation, error) {
	if err := o.Validate(); err != nil {
		return order.Confirmation{}, err
	}

	items := o.Items()
	request := fulfillRequest{
		CustomerID: o.CustomerID(),
		Items:      make([]orderLineRequest, 0, len(items)),
	}
	for _, item := range items {
		request.Items = append(request.Items, orderLineRequest{
			SKU:      item.Product().SKU().String(),
			Quantity: item.Quantity(),
		})
	}

	body, err := json.Marshal(request)
	if err != nil {
		return order.Confirmation{}, err
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return order.Confirmation{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return order.Confirmation{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return order.Confirmation{}, fmt.Errorf(
			"fulfillment service returned %d: %s", resp.StatusCode, payload)
	}

	var response fulfillResponse
	if err = json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return order.Confirmation{}, err
	}

	return order.NewConfirmation(response.OrderID, response.OrderNumber)
}
