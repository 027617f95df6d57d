// Package order provides the order aggregate placed through the order entry
// workflow, together with the fulfillment confirmation and the placement
// summary returned to the caller.
//
// The package includes:
//   - Order: the aggregate root holding the customer reference and order lines
//   - Item: one order line, a product reference with a positive quantity
//   - Confirmation: the fulfillment service's receipt (order id + number)
//   - Summary: the workflow output with taxes, net total, and grand total
//
// Key business rules:
//   - An order must reference a valid customer and every item must be valid
//   - Item uniqueness by product SKU is a business rule checked during
//     placement validation, not at construction; the aggregate exposes the
//     pure ItemsUniqueByProduct predicate for that rule
//   - Orders are immutable once constructed; the workflow never mutates them
package order
