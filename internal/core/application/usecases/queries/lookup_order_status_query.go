package queries

import (
	"errors"
	"strings"

	"bakery/internal/pkg/guard"
)

var (
	ErrLookupOrderStatusQueryIsNotConstructed = errors.New(
		"LookupOrderStatusQuery must be created via NewLookupOrderStatusQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// LookupOrderStatusQuery fetches the current state of one order by the
// identifier the customer typed.
type LookupOrderStatusQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewLookupOrderStatusQuery trims surrounding whitespace and rejects an
// empty identifier. The identifier is otherwise opaque.
func NewLookupOrderStatusQuery(orderID string) (LookupOrderStatusQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return LookupOrderStatusQuery{}, ErrOrderIDIsRequired
	}
	return LookupOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LookupOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrLookupOrderStatusQueryIsNotConstructed)
}

func (q LookupOrderStatusQuery) OrderID() string {
	return q.orderID
}
