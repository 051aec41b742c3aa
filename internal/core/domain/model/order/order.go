package order

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned for Order values not built by
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Item is a priced line of an accepted order. Name and price are copied
// from the catalog when the order is placed.
type Item struct {
	productID kernel.UUID
	name      string
	price     kernel.Money
	quantity  int
}

// NewItem validates and builds an Item.
func NewItem(productID kernel.UUID, name string, price kernel.Money, quantity int) (Item, error) {
	var err error
	if idErr := productID.Validate(); idErr != nil {
		err = errors.Join(err, idErr)
	}
	if name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("name"))
	}
	if quantity < 1 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err != nil {
		return Item{}, err
	}
	return Item{productID: productID, name: name, price: price, quantity: quantity}, nil
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Price() kernel.Money {
	return i.price
}

func (i Item) Quantity() int {
	return i.quantity
}

// Amount is price x quantity.
func (i Item) Amount() kernel.Money {
	return i.price.Times(i.quantity)
}

// Order is the backend aggregate for an accepted order.
//
// Invariants:
//   - valid identifier, non-empty customer name and email
//   - at least one item
//   - total equals the sum of item amounts
//   - status changes only through Start, Complete and Fail
type Order struct {
	id            kernel.UUID
	customerName  string
	customerEmail string
	createdAt     time.Time
	status        Status
	total         kernel.Money
	items         []Item

	isConstructed bool
}

// NewOrder creates a pending order and prices it from its items.
func NewOrder(id kernel.UUID, customerName, customerEmail string, items []Item, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerName, customerEmail),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. The stored total is
// kept as is, since it was fixed when the order was placed.
func RestoreOrder(
	id kernel.UUID,
	customerName, customerEmail string,
	items []Item,
	total kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerName, customerEmail),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.total = total
	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) TotalAmount() kernel.Money {
	return o.total
}

// Items returns a copy of the order items.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Start moves the order into processing.
func (o *Order) Start() error {
	next, err := o.status.Start()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Complete marks a processing order as fulfilled.
func (o *Order) Complete() error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Fail marks a non-terminal order as failed.
func (o *Order) Fail() error {
	next, err := o.status.Fail()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Record returns the snapshot served by the status endpoint.
func (o *Order) Record() Record {
	items := make([]RecordItem, 0, len(o.items))
	for _, it := range o.items {
		items = append(items, RecordItem{Name: it.name, Price: it.price, Quantity: it.quantity})
	}
	return Record{
		OrderID:      o.id.String(),
		CustomerName: o.customerName,
		CreatedAt:    o.createdAt,
		Status:       o.status,
		TotalAmount:  o.total,
		Items:        items,
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(name, email string) error {
	var err error
	if name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("customer_name"))
	}
	if email == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("customer_email"))
	}
	if err != nil {
		return err
	}
	o.customerName = name
	o.customerEmail = email
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	total := kernel.Money{}
	for _, it := range items {
		total = total.Add(it.Amount())
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}
