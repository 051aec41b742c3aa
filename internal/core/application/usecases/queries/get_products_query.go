package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery lists the catalog for the products endpoint.
//
// Example:
//
//	query := NewGetProductsQuery()
//	handler := NewGetProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	for _, p := range products {
//	    fmt.Printf("%s %s\n", p.Name, p.Price)
//	}
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a parameterless products query.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse is one catalog row.
type GetProductsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Category    string
}
