package draft

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Field names the editable column of a row.
type Field int

const (
	// FieldProduct selects the product_id column.
	FieldProduct Field = iota + 1
	// FieldQuantity selects the quantity column.
	FieldQuantity
)

func (f Field) String() string {
	switch f {
	case FieldProduct:
		return "product_id"
	case FieldQuantity:
		return "quantity"
	default:
		return "unknown"
	}
}

// LineItem is one editable row. ProductID is empty until a product is chosen.
type LineItem struct {
	ProductID string
	Quantity  Quantity
}

// BlankLineItem is the row appended by AddItem.
func BlankLineItem() LineItem {
	return LineItem{ProductID: "", Quantity: NewQuantity(1)}
}

// Editor owns the rows of one order draft. It is not safe for concurrent use;
// the owning view serializes access.
type Editor struct {
	items []LineItem
}

// NewEditor returns an editor holding one blank row.
func NewEditor() *Editor {
	return &Editor{items: []LineItem{BlankLineItem()}}
}

// AddItem appends a blank row.
func (e *Editor) AddItem() {
	e.items = append(e.items, BlankLineItem())
}

// RemoveItem deletes the row at index. Removing the last remaining row is
// allowed here; views only offer removal while CanRemove is true.
func (e *Editor) RemoveItem(index int) error {
	if err := e.checkIndex(index); err != nil {
		return err
	}
	e.items = append(e.items[:index], e.items[index+1:]...)
	return nil
}

// UpdateItem sets one column of the row at index. For FieldQuantity the value
// is parsed with ParseQuantity.
func (e *Editor) UpdateItem(index int, field Field, value string) error {
	if err := e.checkIndex(index); err != nil {
		return err
	}
	switch field {
	case FieldProduct:
		e.items[index].ProductID = value
	case FieldQuantity:
		e.items[index].Quantity = ParseQuantity(value)
	default:
		return errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%d is not an editable field", int(field)))
	}
	return nil
}

// Items returns a copy of the rows in display order.
func (e *Editor) Items() []LineItem {
	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// Item returns the row at index.
func (e *Editor) Item(index int) (LineItem, error) {
	if err := e.checkIndex(index); err != nil {
		return LineItem{}, err
	}
	return e.items[index], nil
}

// Len returns the number of rows.
func (e *Editor) Len() int {
	return len(e.items)
}

// CanRemove reports whether a remove action should be offered.
func (e *Editor) CanRemove() bool {
	return len(e.items) > 1
}

// Reset drops all rows and starts over with one blank row.
func (e *Editor) Reset() {
	e.items = []LineItem{BlankLineItem()}
}

func (e *Editor) checkIndex(index int) error {
	if index < 0 || index >= len(e.items) {
		return errs.NewValueIsOutOfRangeError("index", index, 0, len(e.items)-1)
	}
	return nil
}
