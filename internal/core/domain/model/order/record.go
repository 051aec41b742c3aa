package order

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
)

// RecordItem is one line of an accepted order as reported by the backend.
type RecordItem struct {
	Name     string
	Price    kernel.Money
	Quantity int
}

// Amount is price x quantity. It is always recomputed rather than taken
// from the backend.
func (i RecordItem) Amount() kernel.Money {
	return i.Price.Times(i.Quantity)
}

// Record is a snapshot of an accepted order. The backend owns the order;
// a Record is never written back.
type Record struct {
	OrderID      string
	CustomerName string
	CreatedAt    time.Time
	Status       Status
	TotalAmount  kernel.Money
	Items        []RecordItem
}

// IsFinal reports whether polling this order can stop.
func (r Record) IsFinal() bool {
	return r.Status.IsTerminal()
}
