package services

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

// ErrNothingToPrice is returned when no lines are requested.
var ErrNothingToPrice = errors.New("order has no lines to price")

// RequestedLine is a line of an incoming order before pricing.
type RequestedLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// OrderPricer turns requested lines into priced order items using the
// current catalog. The order total is the sum of price x quantity; there are
// no discounts, taxes or fees.
//
// Business rules:
//   - Every requested product must exist in the catalog
//   - Quantities must be at least 1
//   - Item name and price are copied so later catalog changes do not alter
//     an accepted order
//
// Example usage:
//
//	pricer := NewOrderPricer()
//	items, err := pricer.Price(lines, products)
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) {
//	    // unknown product
//	}
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price returns one item per requested line, in request order. The first
// unknown product aborts pricing with an ObjectNotFoundError.
func (OrderPricer) Price(lines []RequestedLine, products []*catalog.Product) ([]order.Item, error) {
	if len(lines) == 0 {
		return nil, ErrNothingToPrice
	}

	byID := make(map[string]*catalog.Product, len(products))
	for _, p := range products {
		if p != nil {
			byID[p.ID()] = p
		}
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID.String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", line.ProductID.String())
		}

		item, err := order.NewItem(line.ProductID, product.Name(), product.Price(), line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("price line for product %s: %w", line.ProductID, err)
		}
		items = append(items, item)
	}

	return items, nil
}
