package view

import (
	"context"
	"errors"
	"sync"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/draft"
	"bakery/internal/core/domain/model/order"
)

const (
	OrderPlacedMessage     = "Your order has been placed successfully!"
	OrderInvalidMessage    = "Please fill all required fields correctly."
	OrderSubmitFailMessage = "Failed to place your order. Please try again."
)

type OrderSubmitHandler interface {
	Handle(ctx context.Context, cmd commands.SubmitOrderCommand) (string, error)
}

// OrderFormView is the place order screen: customer identity, the line
// editor and the catalog the product choices come from. The submit state
// holds the accepted order id on success.
type OrderFormView struct {
	mu            sync.Mutex
	customerName  string
	customerEmail string
	editor        *draft.Editor

	products *CatalogView
	submit   OrderSubmitHandler
	state    *Holder[string]
}

func NewOrderFormView(loader CatalogLoader, submit OrderSubmitHandler) *OrderFormView {
	return &OrderFormView{
		editor:   draft.NewEditor(),
		products: NewCatalogView(loader),
		submit:   submit,
		state:    NewHolder[string](),
	}
}

// LoadCatalog fills the product choices. A failure leaves the choice list
// empty; the form stays usable.
func (v *OrderFormView) LoadCatalog(ctx context.Context) error {
	return v.products.Load(ctx)
}

func (v *OrderFormView) Catalog() *catalog.Catalog {
	return v.products.Catalog()
}

func (v *OrderFormView) CatalogState() State[*catalog.Catalog] {
	return v.products.State()
}

func (v *OrderFormView) SetCustomer(name, email string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.customerName = name
	v.customerEmail = email
}

func (v *OrderFormView) Customer() (name, email string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.customerName, v.customerEmail
}

func (v *OrderFormView) AddItem() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editor.AddItem()
}

func (v *OrderFormView) RemoveItem(index int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editor.RemoveItem(index)
}

func (v *OrderFormView) UpdateItem(index int, field draft.Field, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editor.UpdateItem(index, field, value)
}

func (v *OrderFormView) Items() []draft.LineItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editor.Items()
}

func (v *OrderFormView) CanRemove() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editor.CanRemove()
}

// Submit validates the form and sends it once. Validation failures never
// reach the backend. While a submission is in flight further calls return
// ErrBusy. On success the form is cleared and the order id returned.
func (v *OrderFormView) Submit(ctx context.Context) (string, error) {
	ticket, err := v.state.Begin()
	if err != nil {
		return "", err
	}

	v.mu.Lock()
	cmd, err := commands.NewSubmitOrderCommand(v.customerName, v.customerEmail, v.editor.Items())
	v.mu.Unlock()
	if err != nil {
		v.state.Reject(ticket, err)
		return "", err
	}

	orderID, err := v.submit.Handle(ctx, cmd)
	if err != nil {
		v.state.Reject(ticket, err)
		return "", err
	}

	if v.state.Resolve(ticket, orderID) {
		v.clear()
	}
	return orderID, nil
}

func (v *OrderFormView) State() State[string] {
	return v.state.State()
}

// Message is the banner text for the current submit state.
func (v *OrderFormView) Message() string {
	s := v.state.State()
	switch s.Phase {
	case Success:
		return OrderPlacedMessage
	case Failure:
		if errors.Is(s.Err, order.ErrDraftIsInvalid) {
			return OrderInvalidMessage
		}
		return OrderSubmitFailMessage
	default:
		return ""
	}
}

// PlaceAnother dismisses the previous result and shows an empty form.
func (v *OrderFormView) PlaceAnother() {
	v.state.Reset()
	v.clear()
}

func (v *OrderFormView) Close() {
	v.state.Close()
	v.products.Close()
}

func (v *OrderFormView) clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.customerName = ""
	v.customerEmail = ""
	v.editor.Reset()
}
