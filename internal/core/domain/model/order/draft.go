package order

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/draft"
)

var (
	// ErrDraftIsInvalid matches every validation failure. Its text is what
	// the order form shows.
	ErrDraftIsInvalid = errors.New("please fill all required fields correctly")

	ErrMissingCustomerInfo = fmt.Errorf("%w: customer name and email are required", ErrDraftIsInvalid)
	ErrEmptyOrder          = fmt.Errorf("%w: order has no items", ErrDraftIsInvalid)
	ErrNoValidItems        = fmt.Errorf("%w: no item has both a product and a positive quantity", ErrDraftIsInvalid)
)

// Line is a validated line item: a chosen product and a quantity of at least 1.
type Line struct {
	productID string
	quantity  int
}

func (l Line) ProductID() string {
	return l.productID
}

func (l Line) Quantity() int {
	return l.quantity
}

// Draft is a submittable order. It only exists for the duration of one
// submission attempt.
type Draft struct {
	customerName  string
	customerEmail string
	lines         []Line
}

// Validate builds a Draft from the customer's identity and the editor rows.
//
// Checks, in order:
//  1. name or email empty        -> ErrMissingCustomerInfo
//  2. no rows at all             -> ErrEmptyOrder
//  3. rows without a product or with a quantity that is NaN or < 1 are dropped
//  4. nothing left               -> ErrNoValidItems
//
// The email is only required to be non-empty.
func Validate(customerName, customerEmail string, items []draft.LineItem) (Draft, error) {
	if customerName == "" || customerEmail == "" {
		return Draft{}, ErrMissingCustomerInfo
	}
	if len(items) == 0 {
		return Draft{}, ErrEmptyOrder
	}

	valid := FilterValidItems(items)
	if len(valid) == 0 {
		return Draft{}, ErrNoValidItems
	}

	lines := make([]Line, 0, len(valid))
	for _, item := range valid {
		n, _ := item.Quantity.Int()
		lines = append(lines, Line{productID: item.ProductID, quantity: n})
	}

	return Draft{
		customerName:  customerName,
		customerEmail: customerEmail,
		lines:         lines,
	}, nil
}

// FilterValidItems keeps, in order, the rows that have a product and a
// positive numeric quantity. Filtering its own output returns it unchanged.
func FilterValidItems(items []draft.LineItem) []draft.LineItem {
	valid := make([]draft.LineItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != "" && item.Quantity.IsPositive() {
			valid = append(valid, item)
		}
	}
	return valid
}

func (d Draft) CustomerName() string {
	return d.customerName
}

func (d Draft) CustomerEmail() string {
	return d.customerEmail
}

// Lines returns a copy of the validated lines in their original relative order.
func (d Draft) Lines() []Line {
	out := make([]Line, len(d.lines))
	copy(out, d.lines)
	return out
}
