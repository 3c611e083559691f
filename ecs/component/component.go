package component

import "sync/atomic"

// ID identifies a registered component type.
type ID uint32

var nextID atomic.Uint32

// Handle is a typed reference to a component storage slot.
type Handle[T any] struct {
	id ID
}

// NewComponent registers a component type and returns its handle. Handles are
// package-level vars created at init time.
func NewComponent[T any]() Handle[T] {
	return Handle[T]{id: ID(nextID.Add(1))}
}

// Kind returns the untyped component id, used for queries.
func (h Handle[T]) Kind() ID {
	return h.id
}
