package ports

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// OrderPublisher hands accepted orders to fulfillment.
type OrderPublisher interface {
	// PublishOrderPlaced enqueues the order for the fulfillment worker.
	// It is called after the order is committed.
	PublishOrderPlaced(ctx context.Context, placed *order.Order) error
}
