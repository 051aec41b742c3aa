package order_test

import (
	"testing"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_AmountsAreComputedFromLines(t *testing.T) {
	price, err := kernel.MoneyFromFloat(2.5)
	require.NoError(t, err)
	total, err := kernel.MoneyFromString("12.50")
	require.NoError(t, err)

	r := order.Record{
		OrderID:     "O123",
		Status:      order.Completed,
		TotalAmount: total,
		Items:       []order.RecordItem{{Name: "Croissant", Price: price, Quantity: 5}},
	}

	assert.Equal(t, "12.50", r.TotalAmount.String())
	assert.Equal(t, "12.50", r.Items[0].Amount().String())
	assert.Equal(t, "status-completed", r.Status.Class())
	assert.True(t, r.IsFinal())
}

func TestRecord_IsFinal(t *testing.T) {
	assert.False(t, order.Record{Status: order.Pending}.IsFinal())
	assert.False(t, order.Record{Status: order.Processing}.IsFinal())
	assert.True(t, order.Record{Status: order.Failed}.IsFinal())
	assert.False(t, order.Record{Status: "archived"}.IsFinal())
}
