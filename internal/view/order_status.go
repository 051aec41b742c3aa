package view

import (
	"context"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/order"
)

const OrderLookupFailMessage = "Order not found or error checking status."

type StatusLookupHandler interface {
	Handle(ctx context.Context, query queries.LookupOrderStatusQuery) (order.Record, error)
}

// OrderStatusView is the order status screen. A failed lookup replaces any
// record shown before it.
type OrderStatusView struct {
	lookup StatusLookupHandler
	state  *Holder[order.Record]
}

func NewOrderStatusView(lookup StatusLookupHandler) *OrderStatusView {
	return &OrderStatusView{
		lookup: lookup,
		state:  NewHolder[order.Record](),
	}
}

// Lookup fetches the order typed by the customer. A blank id is ignored and
// returns queries.ErrOrderIDIsRequired without touching the state.
func (v *OrderStatusView) Lookup(ctx context.Context, orderID string) (order.Record, error) {
	query, err := queries.NewLookupOrderStatusQuery(orderID)
	if err != nil {
		return order.Record{}, err
	}

	ticket, err := v.state.Begin()
	if err != nil {
		return order.Record{}, err
	}

	record, err := v.lookup.Handle(ctx, query)
	if err != nil {
		v.state.Reject(ticket, err)
		return order.Record{}, err
	}
	v.state.Resolve(ticket, record)
	return record, nil
}

func (v *OrderStatusView) State() State[order.Record] {
	return v.state.State()
}

func (v *OrderStatusView) Message() string {
	if v.state.State().Phase == Failure {
		return OrderLookupFailMessage
	}
	return ""
}

func (v *OrderStatusView) Close() {
	v.state.Close()
}
