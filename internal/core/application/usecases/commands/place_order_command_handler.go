package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
)

// PlaceOrderCommandHandler accepts an order: it prices the requested lines
// from the catalog, stores the order as pending, and hands it to
// fulfillment once the transaction is committed.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher, logger)
//	placed, err := handler.Handle(ctx, cmd)
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) {
//	    // respond 404
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderPublisher
	pricer     services.OrderPricer
	now        func() time.Time
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderPublisher,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		pricer:     services.NewOrderPricer(),
		now:        time.Now,
		logger:     logger.With("component", "place_order"),
	}
}

// Handle places the order and returns it. Unknown products yield an
// errs.ObjectNotFoundError and nothing is stored. A publish failure is
// returned after the order was committed; the order then stays pending.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := uow.ProductRepository().GetByIDs(ctx, cmd.ProductIDs())
	if err != nil {
		return nil, err
	}

	items, err := h.pricer.Price(cmd.Lines(), products)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.CustomerName(), cmd.CustomerEmail(), items, h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.publisher.PublishOrderPlaced(ctx, placed); err != nil {
		h.logger.ErrorContext(ctx, "Order stored but not queued for fulfillment",
			"order_id", placed.ID().String(), "error", err)
		return nil, fmt.Errorf("queue order %s: %w", placed.ID(), err)
	}

	h.logger.InfoContext(ctx, "Order placed",
		"order_id", placed.ID().String(),
		"total_amount", placed.TotalAmount().String(),
		"items", len(items))
	return placed, nil
}
