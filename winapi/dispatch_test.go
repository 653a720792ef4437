package winapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_SubmitsWholeBatch(t *testing.T) {
	port := NewFakePort(800, 600, false)
	d := NewDispatcher(port)

	err := d.Dispatch(KeyInput(VKShift, true), KeyInput(VKShift, false))
	require.NoError(t, err)

	batches := port.Batches()
	require.Len(t, batches, 1)
	assert.Len(t, batches[0].Inputs, 2)
}

func TestDispatch_EmptyIsNoop(t *testing.T) {
	port := NewFakePort(800, 600, false)
	require.NoError(t, NewDispatcher(port).Dispatch())
	assert.Empty(t, port.Batches())
}

func TestDispatch_PartialAcceptance(t *testing.T) {
	port := NewFakePort(800, 600, false)
	port.AcceptLimit = 1

	err := NewDispatcher(port).Dispatch(UnicodeKeyInputs("ab")...)
	require.Error(t, err)

	var dispatchErr *DispatchError
	require.True(t, errors.As(err, &dispatchErr))
	assert.Equal(t, 4, dispatchErr.Submitted)
	assert.Equal(t, 1, dispatchErr.Accepted)
	assert.Contains(t, err.Error(), "1 of 4")
	assert.False(t, IsInvalidArgument(err))

	// no replay of the batch
	assert.Len(t, port.Batches(), 1)
}
