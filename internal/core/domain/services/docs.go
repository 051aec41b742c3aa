// Package services provides domain services that span more than one
// aggregate of the bakery backend.
//
// The package includes:
//   - OrderPricer: matches requested order lines to catalog products and
//     snapshots their name and price into order items
package services
