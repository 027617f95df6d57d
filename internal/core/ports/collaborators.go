// Package ports defines the collaborator contracts consumed by the order
// placement workflow. The workflow orchestrates these capabilities and owns
// none of their implementations: catalog and stock, fulfillment, the customer
// directory, tax-rate lookup, and confirmation notification all live behind
// adapters. These interfaces establish contracts between the core and the
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"orderentry/internal/core/domain/model/customer"
	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/core/domain/model/order"
	"orderentry/internal/core/domain/model/product"
	"orderentry/internal/core/domain/model/tax"
)

// ProductAvailability reports current stock state from the product catalog.
type ProductAvailability interface {
	// IsInStock reports whether the product identified by sku can currently
	// be sold. Unknown SKUs report false.
	IsInStock(ctx context.Context, sku kernel.SKU) (bool, error)
}

// ProductCatalog resolves catalog products by their stable key.
type ProductCatalog interface {
	// GetBySKU retrieves the catalog product for sku.
	// Returns an ObjectNotFoundError for unknown SKUs.
	GetBySKU(ctx context.Context, sku kernel.SKU) (product.Product, error)
}

// FulfillmentDispatcher hands a validated order to downstream processing.
type FulfillmentDispatcher interface {
	// Fulfill dispatches the order and returns the downstream confirmation.
	// Dispatching is a side effect performed at most once per successful
	// validation; a fulfillment-specific error means the order could not be
	// processed downstream.
	Fulfill(ctx context.Context, o *order.Order) (order.Confirmation, error)
}

// CustomerDirectory resolves customer profiles.
type CustomerDirectory interface {
	// GetCustomer retrieves the profile for customerID.
	// Returns an ObjectNotFoundError for unknown identifiers.
	GetCustomer(ctx context.Context, customerID int64) (customer.Customer, error)
}

// TaxRateLookup resolves the tax entries applicable to a location.
type TaxRateLookup interface {
	// GetTaxEntries returns every tax entry applicable to the location.
	// The result may be empty; no entries means no tax applies.
	GetTaxEntries(ctx context.Context, location kernel.Location) ([]tax.Entry, error)
}

// Notifier triggers the order confirmation notice to the customer. Delivery
// policy (transport, retries) is owned by the implementation.
type Notifier interface {
	// SendOrderConfirmationEmail triggers a confirmation notice for the
	// fulfilled order. The workflow consumes no result beyond the error.
	SendOrderConfirmationEmail(ctx context.Context, customerID int64, orderID int64) error
}
