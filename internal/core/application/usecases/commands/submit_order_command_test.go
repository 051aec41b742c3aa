package commands_test

import (
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/draft"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(productID string, qty int) draft.LineItem {
	return draft.LineItem{ProductID: productID, Quantity: draft.NewQuantity(qty)}
}

func TestNewSubmitOrderCommand_ValidInput(t *testing.T) {
	items := []draft.LineItem{line("1", 2), draft.BlankLineItem()}

	cmd, err := commands.NewSubmitOrderCommand("Ann", "a@x.com", items)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	d := cmd.Draft()
	assert.Equal(t, "Ann", d.CustomerName())
	assert.Equal(t, "a@x.com", d.CustomerEmail())
	require.Len(t, d.Lines(), 1)
	assert.Equal(t, "1", d.Lines()[0].ProductID())
	assert.Equal(t, 2, d.Lines()[0].Quantity())
}

func TestNewSubmitOrderCommand_MissingCustomer(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand("", "a@x.com", []draft.LineItem{line("1", 1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrMissingCustomerInfo)
	assert.ErrorIs(t, err, order.ErrDraftIsInvalid)
}

func TestNewSubmitOrderCommand_NoValidItems(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand("Ann", "a@x.com", []draft.LineItem{line("1", 0)})
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrNoValidItems)
}

func TestSubmitOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	cmd := commands.SubmitOrderCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOrderCommandIsNotConstructed)
}
