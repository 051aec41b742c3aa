// Package rabbitmq feeds fulfillment messages from the order queue into the
// process order use case.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"bakery/internal/adapters/out/rabbitmq"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/metrics"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrMalformedMessage is returned for bodies that do not name a valid order.
var ErrMalformedMessage = errors.New("malformed order message")

// ProcessOrderHandler runs fulfillment for one order.
type ProcessOrderHandler interface {
	Handle(ctx context.Context, cmd commands.ProcessOrderCommand) error
}

// Delivery is the part of amqp.Delivery the consumer acknowledges through.
type Delivery interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// Consumer takes one message at a time from the order queue. A message is
// acked when fulfillment succeeds and nacked without requeue otherwise.
type Consumer struct {
	conn    *amqp.Connection
	queue   string
	handler ProcessOrderHandler
	metrics *metrics.OrderMetrics
	logger  *slog.Logger
}

// NewConsumer creates a consumer for queue on conn. m may be nil.
func NewConsumer(
	conn *amqp.Connection,
	queue string,
	handler ProcessOrderHandler,
	m *metrics.OrderMetrics,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		conn:    conn,
		queue:   queue,
		handler: handler,
		metrics: m,
		logger:  logger.With("component", "order_consumer"),
	}
}

// Run consumes until ctx is cancelled or the channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err = rabbitmq.DeclareOrderQueue(ch, c.queue); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	if err = ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	msgs, err := ch.Consume(
		c.queue,
		"bakery-worker", // consumer tag
		false,           // autoAck
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	c.logger.InfoContext(ctx, "Worker started. Waiting for orders...", "queue", c.queue)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Stopping order consumer")
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("messages channel closed")
			}
			c.Dispatch(ctx, msg.Body, msg)
		}
	}
}

// Dispatch handles one message body and settles it on d. A message whose
// processing was cut short by cancellation of ctx is requeued.
func (c *Consumer) Dispatch(ctx context.Context, body []byte, d Delivery) {
	outcome := "completed"
	err := c.handle(ctx, body)
	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			c.logger.ErrorContext(ctx, "Ack failed", "error", ackErr)
		}
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		// Interrupted by shutdown. A redelivery resumes the order or skips it once final.
		outcome = "requeued"
		c.logger.WarnContext(ctx, "Processing interrupted, requeueing", "error", err)
		if nackErr := d.Nack(false, true); nackErr != nil {
			c.logger.ErrorContext(ctx, "Nack failed", "error", nackErr)
		}
	default:
		outcome = "failed"
		if errors.Is(err, ErrMalformedMessage) {
			outcome = "malformed"
		}
		c.logger.ErrorContext(ctx, "Error processing message", "error", err)
		if nackErr := d.Nack(false, false); nackErr != nil {
			c.logger.ErrorContext(ctx, "Nack failed", "error", nackErr)
		}
	}

	if c.metrics != nil {
		c.metrics.Processed.WithLabelValues(outcome).Inc()
	}
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var msg rabbitmq.OrderPlacedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	orderID, err := kernel.UUIDFromString(msg.OrderID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	c.logger.InfoContext(ctx, "Received order", "order_id", msg.OrderID, "customer_name", msg.CustomerName)
	return c.handler.Handle(ctx, cmd)
}
