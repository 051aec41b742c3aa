package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

// Default fulfillment delays.
const (
	DefaultProcessingDelay = 3 * time.Second
	DefaultCompletionDelay = 2 * time.Second
)

// errAlreadyFinal marks a redelivered order that has already finished.
var errAlreadyFinal = errors.New("order is already final")

// ProcessOrderCommandHandler simulates fulfillment of one order:
//
//	wait processingDelay -> pending to processing
//	wait completionDelay -> processing to completed
//
// Each transition is committed on its own so status lookups observe the
// intermediate state. If a step fails after the order was loaded, the order
// is marked failed. Cancellation of ctx is not a failure: the order keeps its
// last committed status and a redelivery resumes it.
//
// Example:
//
//	handler := NewProcessOrderCommandHandler(uowFactory, 3*time.Second, 2*time.Second, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // nack the message
//	}
type ProcessOrderCommandHandler struct {
	uowFactory      OrderUoWFactory
	processingDelay time.Duration
	completionDelay time.Duration
	logger          *slog.Logger
}

// NewProcessOrderCommandHandler creates a fulfillment handler. Negative
// delays are treated as zero.
func NewProcessOrderCommandHandler(
	uowFactory OrderUoWFactory,
	processingDelay, completionDelay time.Duration,
	logger *slog.Logger,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory:      uowFactory,
		processingDelay: max(processingDelay, 0),
		completionDelay: max(completionDelay, 0),
		logger:          logger.With("component", "process_order"),
	}
}

// Handle runs the order to completion. An order that is already completed
// or failed is left untouched and nil is returned, so redelivered messages
// are harmless. An unknown order is returned as errs.ObjectNotFoundError.
func (h ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	id := cmd.OrderID()

	if err := wait(ctx, h.processingDelay); err != nil {
		return err
	}

	err := h.advance(ctx, id, func(o *order.Order) error {
		if o.Status() == order.Processing {
			return nil
		}
		return o.Start()
	})
	switch {
	case errors.Is(err, errAlreadyFinal):
		h.logger.InfoContext(ctx, "Order already final, skipping", "order_id", id.String())
		return nil
	case errors.Is(err, errs.ErrObjectNotFound), interrupted(ctx, err):
		return err
	case err != nil:
		return h.fail(ctx, id, err)
	}
	h.logger.InfoContext(ctx, "Order processing", "order_id", id.String())

	if err = wait(ctx, h.completionDelay); err != nil {
		h.logger.WarnContext(ctx, "Order processing interrupted", "order_id", id.String(), "error", err)
		return err
	}

	if err = h.advance(ctx, id, (*order.Order).Complete); err != nil {
		if errors.Is(err, errAlreadyFinal) {
			return nil
		}
		if interrupted(ctx, err) {
			return err
		}
		return h.fail(ctx, id, err)
	}

	h.logger.InfoContext(ctx, "Order completed", "order_id", id.String())
	return nil
}

// advance loads the order, applies a transition and commits it.
func (h ProcessOrderCommandHandler) advance(ctx context.Context, id kernel.UUID, transition func(*order.Order) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, id)
	if err != nil {
		return err
	}
	if o.Status().IsTerminal() {
		return errAlreadyFinal
	}

	if err = transition(o); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// fail marks the order failed and returns cause. The status write uses a
// context that survives cancellation of ctx.
func (h ProcessOrderCommandHandler) fail(ctx context.Context, id kernel.UUID, cause error) error {
	h.logger.ErrorContext(ctx, "Order processing failed", "order_id", id.String(), "error", cause)

	failCtx := context.WithoutCancel(ctx)
	if err := h.advance(failCtx, id, (*order.Order).Fail); err != nil && !errors.Is(err, errAlreadyFinal) {
		h.logger.ErrorContext(failCtx, "Failed to mark order as failed", "order_id", id.String(), "error", err)
	}
	return cause
}

func interrupted(ctx context.Context, err error) bool {
	return ctx.Err() != nil && errors.Is(err, ctx.Err())
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
