// Package kernel provides the value objects shared by the bakery domain model.
//
// The package includes:
//   - UUID: identifier of backend products and orders
//   - Money: a non-negative decimal amount used for prices and totals
//
// Both are immutable and safe for concurrent use.
package kernel
