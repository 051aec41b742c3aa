package queries

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"
)

const (
	// ProductsCacheKey holds the serialized catalog.
	ProductsCacheKey = "all_products"

	DefaultProductsCacheTTL = 5 * time.Minute
)

// ProductsReader is the uncached catalog source.
type ProductsReader interface {
	Handle(ctx context.Context, query GetProductsQuery) ([]GetProductsQueryResponse, error)
}

// CachedGetProductsQueryHandler serves the catalog from a cache and falls
// back to next on a miss, storing what next returned for ttl. Cache errors
// are logged and never fail the query.
type CachedGetProductsQueryHandler struct {
	next   ProductsReader
	cache  ports.ProductCache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedGetProductsQueryHandler(
	next ProductsReader,
	cache ports.ProductCache,
	ttl time.Duration,
	logger *slog.Logger,
) CachedGetProductsQueryHandler {
	if ttl <= 0 {
		ttl = DefaultProductsCacheTTL
	}
	return CachedGetProductsQueryHandler{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "products_cache"),
	}
}

type cachedProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
}

func (h CachedGetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	raw, err := h.cache.Get(ctx, ProductsCacheKey)
	switch {
	case err == nil:
		products, decodeErr := decodeProducts(raw)
		if decodeErr == nil {
			h.logger.DebugContext(ctx, "Serving products from cache")
			return products, nil
		}
		h.logger.WarnContext(ctx, "Discarding unreadable cache entry", "error", decodeErr)
	case !errors.Is(err, ports.ErrCacheMiss):
		h.logger.WarnContext(ctx, "Products cache unavailable", "error", err)
	default:
		h.logger.DebugContext(ctx, "Cache miss, fetching products from database")
	}

	products, err := h.next.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	if raw, err = encodeProducts(products); err == nil {
		err = h.cache.Set(ctx, ProductsCacheKey, raw, h.ttl)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to cache products", "error", err)
	}
	return products, nil
}

func encodeProducts(products []GetProductsQueryResponse) ([]byte, error) {
	entries := make([]cachedProduct, 0, len(products))
	for _, p := range products {
		entries = append(entries, cachedProduct{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.String(),
			Category:    p.Category,
		})
	}
	return json.Marshal(entries)
}

func decodeProducts(raw []byte) ([]GetProductsQueryResponse, error) {
	var entries []cachedProduct
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	products := make([]GetProductsQueryResponse, 0, len(entries))
	for _, e := range entries {
		id, err := kernel.UUIDFromString(e.ID)
		if err != nil {
			return nil, err
		}
		price, err := kernel.MoneyFromString(e.Price)
		if err != nil {
			return nil, err
		}
		products = append(products, GetProductsQueryResponse{
			ID:          id,
			Name:        e.Name,
			Description: e.Description,
			Price:       price,
			Category:    e.Category,
		})
	}
	return products, nil
}
