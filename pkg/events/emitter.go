// Package events provides a small synchronous event emitter. Listeners are
// invoked in registration order on the caller's goroutine; emission of one
// event completes before the next is handled.
package events

import (
	"sync"

	"github.com/google/uuid"
)

// ListenerID identifies a registered listener for later removal.
type ListenerID = uuid.UUID

type listener[T any] struct {
	id uuid.UUID
	fn func(T)
}

// Emitter dispatches values of type T to registered listeners.
type Emitter[T any] struct {
	mu        sync.Mutex
	listeners []listener[T]
}

// NewEmitter creates an empty emitter.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// Add registers a listener and returns its ID.
func (e *Emitter[T]) Add(fn func(T)) ListenerID {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := uuid.New()
	e.listeners = append(e.listeners, listener[T]{id: id, fn: fn})

	return id
}

// Remove unregisters the listener with the given ID. It reports whether a
// listener was removed.
func (e *Emitter[T]) Remove(id ListenerID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return true
		}
	}

	return false
}

// Len returns the number of registered listeners.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.listeners)
}

// Emit invokes every registered listener with v, in registration order.
// Listeners run synchronously on the calling goroutine.
func (e *Emitter[T]) Emit(v T) {
	e.mu.Lock()
	snapshot := make([]listener[T], len(e.listeners))
	copy(snapshot, e.listeners)
	e.mu.Unlock()

	for _, l := range snapshot {
		l.fn(v)
	}
}

// Close drops all registered listeners.
func (e *Emitter[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.listeners = nil
}
