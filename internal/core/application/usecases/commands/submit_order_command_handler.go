package commands

import (
	"context"
	"log/slog"

	"bakery/internal/core/ports"
)

// SubmitOrderCommandHandler sends a validated draft to the order backend.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(backendClient, logger)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ports.ErrSubmissionFailed) {
//	    // let the customer retry
//	}
type SubmitOrderCommandHandler struct {
	submitter ports.OrderSubmitter
	logger    *slog.Logger
}

// NewSubmitOrderCommandHandler creates a handler bound to an order submitter.
func NewSubmitOrderCommandHandler(submitter ports.OrderSubmitter, logger *slog.Logger) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		submitter: submitter,
		logger:    logger.With("component", "submit_order"),
	}
}

// Handle submits the draft once and returns the backend's order identifier.
// Every failure, whatever its cause, is reported as ports.ErrSubmissionFailed.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	d := cmd.Draft()
	orderID, err := h.submitter.SubmitOrder(ctx, d)
	if err != nil {
		h.logger.WarnContext(ctx, "Order submission failed", "error", err, "lines", len(d.Lines()))
		return "", ports.ErrSubmissionFailed
	}

	h.logger.InfoContext(ctx, "Order submitted", "order_id", orderID, "lines", len(d.Lines()))
	return orderID, nil
}
