package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitInRegistrationOrder(t *testing.T) {
	e := NewEmitter[int]()

	var order []string

	e.Add(func(int) { order = append(order, "first") })
	e.Add(func(int) { order = append(order, "second") })
	e.Add(func(int) { order = append(order, "third") })

	e.Emit(1)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestEmitDeliversValue(t *testing.T) {
	e := NewEmitter[string]()

	var got []string

	e.Add(func(v string) { got = append(got, v) })

	e.Emit("plugged")
	e.Emit("unplugged")

	assert.Equal(t, []string{"plugged", "unplugged"}, got)
}

func TestRemove(t *testing.T) {
	e := NewEmitter[int]()

	var calls int

	id := e.Add(func(int) { calls++ })
	require.Equal(t, 1, e.Len())

	assert.True(t, e.Remove(id))
	assert.Equal(t, 0, e.Len())

	e.Emit(1)
	assert.Zero(t, calls)

	// Removing twice is a no-op.
	assert.False(t, e.Remove(id))
	assert.False(t, e.Remove(uuid.New()))
}

func TestRemoveKeepsRemainingListeners(t *testing.T) {
	e := NewEmitter[int]()

	var first, second int

	firstID := e.Add(func(int) { first++ })
	e.Add(func(int) { second++ })

	e.Remove(firstID)
	e.Emit(1)

	assert.Zero(t, first)
	assert.Equal(t, 1, second)
}

func TestEmitWithNoListeners(t *testing.T) {
	e := NewEmitter[int]()

	// Must not panic.
	e.Emit(1)

	assert.Equal(t, 0, e.Len())
}

func TestClose(t *testing.T) {
	e := NewEmitter[int]()

	var calls int

	e.Add(func(int) { calls++ })
	e.Add(func(int) { calls++ })

	e.Close()

	assert.Equal(t, 0, e.Len())

	e.Emit(1)
	assert.Zero(t, calls)
}

func TestListenerAddedDuringEmitNotInvoked(t *testing.T) {
	e := NewEmitter[int]()

	var nested int

	e.Add(func(int) {
		e.Add(func(int) { nested++ })
	})

	e.Emit(1)

	// The nested listener only sees later emissions.
	assert.Zero(t, nested)
	assert.Equal(t, 2, e.Len())
}
