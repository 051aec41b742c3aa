// Package queries contains read-only operations. Storefront queries go
// through the order backend ports; backend queries read the database
// directly with raw SQL.
package queries

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrLoadCatalogQueryIsNotConstructed = errors.New(
	"LoadCatalogQuery must be created via NewLoadCatalogQuery constructor",
)

// LoadCatalogQuery fetches the purchasable products for the storefront.
//
// Example:
//
//	query := NewLoadCatalogQuery()
//	c, err := handler.Handle(ctx, query)
//	if errors.Is(err, ports.ErrCatalogUnavailable) {
//	    // show "Failed to load products. Please try again later."
//	}
type LoadCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewLoadCatalogQuery creates a parameterless catalog query.
func NewLoadCatalogQuery() LoadCatalogQuery {
	return LoadCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q LoadCatalogQuery) Validate() error {
	return q.guard.Validate(ErrLoadCatalogQueryIsNotConstructed)
}
