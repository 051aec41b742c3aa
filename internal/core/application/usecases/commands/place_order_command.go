package commands

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer_name is required")
	ErrCustomerEmailIsRequired = errors.New("customer_email is required")
	ErrItemsAreRequired        = errors.New("items are required")
	ErrQuantityIsInvalid       = errors.New("quantity must be greater than 0")
)

// PlaceOrderCommand is the backend side of an order submission: a customer
// and the product lines they asked for, not yet priced.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), "Ann", "a@x.com", []services.RequestedLine{
//	    {ProductID: croissantID, Quantity: 2},
//	})
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	customerEmail string
	lines         []services.RequestedLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the request shape. Product existence is
// checked by the handler against the catalog.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerName, customerEmail string,
	lines []services.RequestedLine,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customerName, customerEmail),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

func (c PlaceOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Lines returns a copy of the requested lines.
func (c PlaceOrderCommand) Lines() []services.RequestedLine {
	out := make([]services.RequestedLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ProductIDs returns the distinct requested product identifiers.
func (c PlaceOrderCommand) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, line := range c.lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomer(name, email string) error {
	var err error
	if name == "" {
		err = errors.Join(err, ErrCustomerNameIsRequired)
	}
	if email == "" {
		err = errors.Join(err, ErrCustomerEmailIsRequired)
	}
	if err != nil {
		return err
	}
	c.customerName = name
	c.customerEmail = email
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []services.RequestedLine) error {
	if len(lines) == 0 {
		return ErrItemsAreRequired
	}
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("item %d: %w", i, ErrQuantityIsInvalid)
		}
	}
	c.lines = make([]services.RequestedLine, len(lines))
	copy(c.lines, lines)
	return nil
}
