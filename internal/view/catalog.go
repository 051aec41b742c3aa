package view

import (
	"context"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/catalog"
)

const CatalogFailureMessage = "Failed to load products. Please try again later."

type CatalogLoader interface {
	Handle(ctx context.Context, query queries.LoadCatalogQuery) (*catalog.Catalog, error)
}

// CatalogView is the product list screen. The catalog is fetched once per
// Load and never mutated afterwards.
type CatalogView struct {
	loader CatalogLoader
	state  *Holder[*catalog.Catalog]
}

func NewCatalogView(loader CatalogLoader) *CatalogView {
	return &CatalogView{
		loader: loader,
		state:  NewHolder[*catalog.Catalog](),
	}
}

// Load fetches the catalog. It returns ErrBusy if a load is already running.
func (v *CatalogView) Load(ctx context.Context) error {
	ticket, err := v.state.Begin()
	if err != nil {
		return err
	}

	c, err := v.loader.Handle(ctx, queries.NewLoadCatalogQuery())
	if err != nil {
		v.state.Reject(ticket, err)
		return err
	}
	v.state.Resolve(ticket, c)
	return nil
}

func (v *CatalogView) State() State[*catalog.Catalog] {
	return v.state.State()
}

// Catalog returns the loaded catalog, or nil before a successful load.
func (v *CatalogView) Catalog() *catalog.Catalog {
	s := v.state.State()
	if s.Phase != Success {
		return nil
	}
	return s.Data
}

func (v *CatalogView) Message() string {
	if v.state.State().Phase == Failure {
		return CatalogFailureMessage
	}
	return ""
}

func (v *CatalogView) Close() {
	v.state.Close()
}
