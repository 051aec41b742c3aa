package view_test

import (
	"errors"
	"testing"

	"bakery/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolder_StartsIdle(t *testing.T) {
	h := view.NewHolder[string]()

	s := h.State()
	assert.Equal(t, view.Idle, s.Phase)
	assert.Empty(t, s.Data)
	assert.NoError(t, s.Err)
}

func TestHolder_ResolveAndReject(t *testing.T) {
	h := view.NewHolder[string]()

	ticket, err := h.Begin()
	require.NoError(t, err)
	assert.Equal(t, view.Loading, h.State().Phase)

	require.True(t, h.Resolve(ticket, "O123"))
	assert.Equal(t, view.State[string]{Phase: view.Success, Data: "O123"}, h.State())

	ticket, err = h.Begin()
	require.NoError(t, err)
	assert.Empty(t, h.State().Data, "loading clears the previous result")

	cause := errors.New("boom")
	require.True(t, h.Reject(ticket, cause))
	s := h.State()
	assert.Equal(t, view.Failure, s.Phase)
	assert.Empty(t, s.Data)
	assert.ErrorIs(t, s.Err, cause)
}

func TestHolder_RefusesSecondRequestWhileLoading(t *testing.T) {
	h := view.NewHolder[int]()

	_, err := h.Begin()
	require.NoError(t, err)

	_, err = h.Begin()
	require.ErrorIs(t, err, view.ErrBusy)
}

func TestHolder_DropsStaleCompletion(t *testing.T) {
	h := view.NewHolder[int]()

	stale, err := h.Begin()
	require.NoError(t, err)
	h.Reset()

	fresh, err := h.Begin()
	require.NoError(t, err)

	assert.False(t, h.Resolve(stale, 1))
	assert.Equal(t, view.Loading, h.State().Phase)

	assert.True(t, h.Resolve(fresh, 2))
	assert.Equal(t, 2, h.State().Data)

	assert.False(t, h.Reject(fresh, errors.New("late")), "a ticket completes only once")
	assert.Equal(t, view.Success, h.State().Phase)
}

func TestHolder_DropsCompletionAfterClose(t *testing.T) {
	h := view.NewHolder[int]()

	ticket, err := h.Begin()
	require.NoError(t, err)
	h.Close()

	assert.False(t, h.Resolve(ticket, 7))
	assert.Equal(t, view.Loading, h.State().Phase)

	_, err = h.Begin()
	require.ErrorIs(t, err, view.ErrClosed)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", view.Idle.String())
	assert.Equal(t, "loading", view.Loading.String())
	assert.Equal(t, "success", view.Success.String())
	assert.Equal(t, "failure", view.Failure.String())
	assert.Equal(t, "unknown", view.Phase(42).String())
}
