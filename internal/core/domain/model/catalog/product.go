package catalog

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// Product is a catalog entry. It is immutable once built.
type Product struct {
	id          string
	name        string
	description string
	price       kernel.Money
	category    string
}

// NewProduct validates and builds a Product. The identifier is opaque to the
// storefront; the backend happens to use UUIDs.
func NewProduct(id, name, description string, price kernel.Money, category string) (*Product, error) {
	var err error
	if id == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("id"))
	}
	if name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("name"))
	}
	if err != nil {
		return nil, err
	}

	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		category:    category,
	}, nil
}

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) Category() string {
	return p.category
}

// Label is the text shown in product pickers, e.g. "Croissant ($2.50)".
func (p *Product) Label() string {
	return p.name + " ($" + p.price.String() + ")"
}
