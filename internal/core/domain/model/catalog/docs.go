// Package catalog models the bakery's purchasable products.
//
// The package includes:
//   - Product: an immutable catalog entry
//   - Catalog: the read-only product list a storefront view fetches once and
//     hands to the order line editor for product selection
package catalog
