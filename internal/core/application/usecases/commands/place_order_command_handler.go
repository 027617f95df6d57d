package commands

import (
	"context"

	"orderentry/internal/core/domain/model/order"
	"orderentry/internal/core/domain/model/tax"
	"orderentry/internal/core/domain/services"
	"orderentry/internal/core/ports"
)

// PlaceOrderCommandHandler runs the order placement workflow: validation,
// fulfillment dispatch, customer and tax resolution, total computation,
// confirmation notification, and summary assembly.
//
// The workflow is a single linear pipeline with one branch point. A failed
// validation performs zero side effects; after validation passes, the
// fulfillment dispatch is performed exactly once and later collaborator
// failures propagate without compensation. Collaborator errors are returned
// unmodified so callers can classify them with errors.Is/As.
//
// The handler holds no mutable state; concurrent placements of independent
// orders are safe as long as the collaborators are.
type PlaceOrderCommandHandler struct {
	validator   services.OrderValidator
	fulfillment ports.FulfillmentDispatcher
	customers   ports.CustomerDirectory
	taxRates    ports.TaxRateLookup
	notifier    ports.Notifier
}

// NewPlaceOrderCommandHandler creates a handler wired to the five
// collaborators of the workflow.
func NewPlaceOrderCommandHandler(
	availability ports.ProductAvailability,
	fulfillment ports.FulfillmentDispatcher,
	customers ports.CustomerDirectory,
	taxRates ports.TaxRateLookup,
	notifier ports.Notifier,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		validator:   services.NewOrderValidator(availability),
		fulfillment: fulfillment,
		customers:   customers,
		taxRates:    taxRates,
		notifier:    notifier,
	}
}

// Handle places the order and returns its summary.
//
// The steps run in strict sequence:
//  1. validate the order; on violation return a ValidationFailedError
//     carrying every violated rule, with no side effects performed
//  2. dispatch to fulfillment and obtain the confirmation
//  3. resolve the customer profile
//  4. resolve the tax entries for the customer's location
//  5. compute net total and tax-inclusive grand total
//  6. trigger the confirmation notification; a notification failure
//     propagates and no summary is returned
//  7. assemble the summary from the confirmation, taxes, and totals
func (h PlaceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderCommand,
) (order.Summary, error) {
	if err := cmd.Validate(); err != nil {
		return order.Summary{}, err
	}

	o := cmd.Order()

	if err := h.validator.Validate(ctx, o); err != nil {
		return order.Summary{}, err
	}

	confirmation, err := h.fulfillment.Fulfill(ctx, o)
	if err != nil {
		return order.Summary{}, err
	}

	c, err := h.customers.GetCustomer(ctx, o.CustomerID())
	if err != nil {
		return order.Summary{}, err
	}

	taxEntries, err := h.taxRates.GetTaxEntries(ctx, c.Location())
	if err != nil {
		return order.Summary{}, err
	}

	netTotal := o.NetTotal()
	total := tax.GrandTotal(netTotal, taxEntries)

	if err = h.notifier.SendOrderConfirmationEmail(ctx, c.ID(), confirmation.OrderID()); err != nil {
		return order.Summary{}, err
	}

	return order.NewSummary(confirmation, c.ID(), taxEntries, netTotal, total)
}
