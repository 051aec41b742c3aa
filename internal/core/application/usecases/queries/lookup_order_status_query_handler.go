package queries

import (
	"context"
	"log/slog"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

// LookupOrderStatusQueryHandler reads an order snapshot from the backend.
type LookupOrderStatusQueryHandler struct {
	source ports.OrderStatusSource
	logger *slog.Logger
}

// NewLookupOrderStatusQueryHandler creates a handler bound to a status source.
func NewLookupOrderStatusQueryHandler(source ports.OrderStatusSource, logger *slog.Logger) LookupOrderStatusQueryHandler {
	return LookupOrderStatusQueryHandler{
		source: source,
		logger: logger.With("component", "lookup_order_status"),
	}
}

// Handle returns the order record. Unknown orders and transport failures
// are both reported as ports.ErrLookupFailed.
func (h LookupOrderStatusQueryHandler) Handle(ctx context.Context, query LookupOrderStatusQuery) (order.Record, error) {
	if err := query.Validate(); err != nil {
		return order.Record{}, err
	}

	record, err := h.source.FetchStatus(ctx, query.OrderID())
	if err != nil {
		h.logger.WarnContext(ctx, "Order lookup failed", "order_id", query.OrderID(), "error", err)
		return order.Record{}, ports.ErrLookupFailed
	}

	return record, nil
}
