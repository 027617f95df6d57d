// Package kernel provides shared value objects used across the order entry
// domain model: product SKUs, monetary amounts, and customer locations.
//
// All kernel types are immutable value objects. Their zero values are invalid
// and fail Validate; instances must be created through the package's
// constructor functions, which enforce the invariants:
//   - SKU: non-empty stable catalog key
//   - Money: non-negative finite amount
//   - Location: non-empty postal code and country
//
// Monetary amounts use float64 arithmetic throughout the application. The tax
// and total computations tolerate the usual floating-point representation
// error and the repository documents this choice deliberately; no rounding
// mode is applied.
package kernel
