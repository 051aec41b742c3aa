package queries

import (
	"context"
	"log/slog"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/ports"
)

// LoadCatalogQueryHandler reads the catalog from the order backend.
type LoadCatalogQueryHandler struct {
	source ports.CatalogSource
	logger *slog.Logger
}

// NewLoadCatalogQueryHandler creates a handler bound to a catalog source.
func NewLoadCatalogQueryHandler(source ports.CatalogSource, logger *slog.Logger) LoadCatalogQueryHandler {
	return LoadCatalogQueryHandler{
		source: source,
		logger: logger.With("component", "load_catalog"),
	}
}

// Handle returns the catalog in backend order. Any failure is reported as
// ports.ErrCatalogUnavailable.
func (h LoadCatalogQueryHandler) Handle(ctx context.Context, query LoadCatalogQuery) (*catalog.Catalog, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.source.ListProducts(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "Catalog load failed", "error", err)
		return nil, ports.ErrCatalogUnavailable
	}

	return catalog.NewCatalog(products), nil
}
