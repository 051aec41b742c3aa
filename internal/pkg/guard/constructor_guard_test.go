package guard_test

import (
	"errors"
	"testing"

	"bakery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type submitCommand struct {
		customerName string
		guard        guard.ConstructorGuard
	}
	errNotConstructed := errors.New("submitCommand must be created via newSubmitCommand")

	newSubmitCommand := func(name string) (submitCommand, error) {
		if name == "" {
			return submitCommand{}, errors.New("name is required")
		}
		return submitCommand{customerName: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed", func(t *testing.T) {
		cmd, err := newSubmitCommand("Ann")
		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
		assert.Equal(t, "Ann", cmd.customerName)
	})

	t.Run("literal", func(t *testing.T) {
		cmd := submitCommand{customerName: "Ann"}
		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})
}
