// Package services provides domain services for the order entry workflow.
// Domain services hold business logic that spans an aggregate and an external
// capability and does not naturally belong to a single entity.
//
// The package includes:
//   - OrderValidator: evaluates the order placement business rules and
//     accumulates a reason for every violated rule
package services
