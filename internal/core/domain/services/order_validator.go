package services

import (
	"context"

	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/core/domain/model/order"
	"orderentry/internal/pkg/errs"
)

// Reason strings reported for violated placement rules. The texts are part of
// the service contract; callers match on them when presenting failures.
const (
	ReasonItemsNotUnique     = "Order Items are not unique by product."
	ReasonProductsNotInStock = "Some products are out of stock."
	ReasonNoItems            = "Order has no items."
)

// StockChecker reports whether a product is currently in stock. Satisfied by
// the product availability port; declared here so the domain service depends
// only on the capability it uses.
type StockChecker interface {
	IsInStock(ctx context.Context, sku kernel.SKU) (bool, error)
}

// OrderValidator evaluates the order placement business rules:
//
//  1. the order has at least one item
//  2. items are unique by product SKU
//  3. every item's product is in stock
//
// Rules are evaluated in that order and their violations accumulate: the
// resulting ValidationFailedError carries a reason for every rule that was
// evaluated and failed, not just the first. The stock rule is not evaluated
// once validation is already failing, so a rejected order never touches the
// availability collaborator; the stock rule's own scan stops at the first
// out-of-stock product.
type OrderValidator struct {
	stock StockChecker
}

// NewOrderValidator creates a validator using the given stock checker.
func NewOrderValidator(stock StockChecker) OrderValidator {
	return OrderValidator{stock: stock}
}

// Validate checks the order against every placement rule. It returns nil for
// a valid order, a *errs.ValidationFailedError listing every violated rule,
// or the stock checker's error unmodified if availability could not be
// determined.
func (v OrderValidator) Validate(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	var reasons []string

	if len(o.Items()) == 0 {
		reasons = append(reasons, ReasonNoItems)
	}

	if !o.ItemsUniqueByProduct() {
		reasons = append(reasons, ReasonItemsNotUnique)
	}

	// The stock check is the only rule that consults a collaborator; skip it
	// when validation is already failing.
	if len(reasons) == 0 {
		allInStock, err := v.allProductsInStock(ctx, o)
		if err != nil {
			return err
		}
		if !allInStock {
			reasons = append(reasons, ReasonProductsNotInStock)
		}
	}

	if len(reasons) > 0 {
		return errs.NewValidationFailedError(reasons...)
	}

	return nil
}

func (v OrderValidator) allProductsInStock(ctx context.Context, o *order.Order) (bool, error) {
	for _, item := range o.Items() {
		inStock, err := v.stock.IsInStock(ctx, item.Product().SKU())
		if err != nil {
			return false, err
		}
		if !inStock {
			return false, nil
		}
	}
	return true, nil
}
