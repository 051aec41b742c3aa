package commands

import (
	"errors"

	"bakery/internal/core/domain/model/draft"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand is a customer's request to place the order they composed
// in the storefront. Building it runs order validation, so a constructed
// command always carries a submittable draft.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand("Ann", "a@x.com", editor.Items())
//	if errors.Is(err, order.ErrDraftIsInvalid) {
//	    // show "Please fill all required fields correctly."
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	draft order.Draft

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand validates the customer identity and editor rows.
// It returns one of order.ErrMissingCustomerInfo, order.ErrEmptyOrder or
// order.ErrNoValidItems on failure.
func NewSubmitOrderCommand(customerName, customerEmail string, items []draft.LineItem) (SubmitOrderCommand, error) {
	d, err := order.Validate(customerName, customerEmail, items)
	if err != nil {
		return SubmitOrderCommand{}, err
	}

	return SubmitOrderCommand{
		draft: d,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Draft returns the validated order draft.
func (c SubmitOrderCommand) Draft() order.Draft {
	return c.draft
}
