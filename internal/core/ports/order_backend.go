package ports

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/order"
)

// Errors surfaced by the order backend ports. Adapters return these bare
// sentinels; the underlying cause is logged, never returned, so callers
// cannot branch on it.
var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrSubmissionFailed   = errors.New("submission failed")
	ErrLookupFailed       = errors.New("order not found or error checking status")
)

// CatalogSource fetches the purchasable products.
type CatalogSource interface {
	ListProducts(ctx context.Context) ([]*catalog.Product, error)
}

// OrderSubmitter sends a validated draft to the backend. Each call makes
// exactly one request; there are no retries and no idempotency key, so a
// resubmission after a failure may create a duplicate order.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, d order.Draft) (orderID string, err error)
}

// OrderStatusSource fetches the current snapshot of an accepted order.
// Unknown identifiers and transport failures both yield ErrLookupFailed.
type OrderStatusSource interface {
	FetchStatus(ctx context.Context, orderID string) (order.Record, error)
}
