// Package order provides the order side of the bakery domain.
//
// The package includes:
//   - Validate, Draft, Line: turn editor rows plus customer identity into a
//     submittable order draft, keeping only rows with a product and a positive quantity
//   - Status: the server-authoritative lifecycle pending -> processing -> completed | failed
//   - Record: the snapshot of an accepted order as returned by a status lookup
//   - Order: the backend aggregate that owns an accepted order and drives its status
//
// Key business rules:
//   - Customer name and email must be non-empty
//   - Invalid rows are dropped silently; the draft fails only when none remain
//   - completed and failed are terminal
//   - Line amounts are price x quantity, computed when rendered
package order
