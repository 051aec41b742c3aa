// Package rabbitmq publishes accepted orders to the fulfillment queue.
package rabbitmq

import (
	"bakery/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderQueue is the durable queue the fulfillment worker consumes.
const OrderQueue = "order_queue"

// OrderPlacedMessage is the body of a fulfillment message.
type OrderPlacedMessage struct {
	OrderID       string  `json:"order_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	TotalAmount   float64 `json:"total_amount"`
}

// NewOrderPlacedMessage builds the message for an accepted order.
func NewOrderPlacedMessage(placed *order.Order) OrderPlacedMessage {
	return OrderPlacedMessage{
		OrderID:       placed.ID().String(),
		CustomerName:  placed.CustomerName(),
		CustomerEmail: placed.CustomerEmail(),
		TotalAmount:   placed.TotalAmount().Float64(),
	}
}

// DeclareOrderQueue declares the durable order queue on ch. Publisher and
// consumer both call it so either side can start first.
func DeclareOrderQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	return err
}
