// Package draft implements the order line editor: the mutable, position
// addressed list of (product, quantity) rows a customer composes before
// submitting an order.
//
// Key rules:
//   - A new editor holds exactly one blank row (no product, quantity 1)
//   - Rows are addressed by index; removing a row shifts the ones after it
//   - Quantity text is parsed leniently; text without leading digits becomes
//     the NaN quantity, which order validation rejects
package draft
