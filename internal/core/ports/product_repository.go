package ports

import (
	"context"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
)

// ProductRepository defines read access to the catalog.
type ProductRepository interface {
	// GetAll returns every product ordered by name.
	GetAll(ctx context.Context) ([]*catalog.Product, error)

	// GetByIDs returns the products among ids that exist. Missing ids are
	// not an error; callers compare the result with what they asked for.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)
}
