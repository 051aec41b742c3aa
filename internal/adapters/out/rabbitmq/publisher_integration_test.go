package rabbitmq_test

import (
	"encoding/json"
	"testing"
	"time"

	"bakery/internal/adapters/out/rabbitmq"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/testutil"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_PublishOrderPlaced(t *testing.T) {
	_, conn := testutil.StartRabbitMQ(t)

	publisher, err := rabbitmq.NewPublisher(conn, rabbitmq.OrderQueue)
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Close() })

	price, err := kernel.MoneyFromString("2.50")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Croissant", price, 3)
	require.NoError(t, err)
	placed, err := order.NewOrder(kernel.NewUUID(), "Ann", "a@x.com", []order.Item{item}, time.Now())
	require.NoError(t, err)

	require.NoError(t, publisher.PublishOrderPlaced(t.Context(), placed))

	ch, err := conn.Channel()
	require.NoError(t, err)
	t.Cleanup(func() { _ = ch.Close() })

	var msg amqp.Delivery
	require.Eventually(t, func() bool {
		var ok bool
		msg, ok, err = ch.Get(rabbitmq.OrderQueue, true)
		return err == nil && ok
	}, 10*time.Second, 100*time.Millisecond)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

	var body rabbitmq.OrderPlacedMessage
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, rabbitmq.OrderPlacedMessage{
		OrderID:       placed.ID().String(),
		CustomerName:  "Ann",
		CustomerEmail: "a@x.com",
		TotalAmount:   7.5,
	}, body)
}
