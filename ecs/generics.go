package ecs

import "github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"

// Add attaches a component value to an entity and returns a stable pointer to
// the stored copy. Adding over an existing component replaces it.
func Add[T any](w *World, e Entity, h component.Handle[T], v T) *T {
	if w == nil || !w.IsAlive(e) {
		return nil
	}
	ptr := &v
	w.Store(h.Kind()).Set(e, ptr)
	return ptr
}

// Get returns a pointer to the entity's component, if present. Mutations
// through the pointer are visible to every system.
func Get[T any](w *World, e Entity, h component.Handle[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	v := w.Store(h.Kind()).Get(e)
	if v == nil {
		return nil, false
	}
	ptr, ok := v.(*T)
	return ptr, ok
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	return w != nil && w.Store(h.Kind()).Has(e)
}

// Remove detaches the component from the entity.
func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	if w == nil {
		return false
	}
	return w.Store(h.Kind()).Remove(e)
}

// ForEach visits every entity that has the component. The entity list is
// copied first so callbacks may add or remove components safely.
func ForEach[T any](w *World, h component.Handle[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	ents := append([]Entity(nil), w.Store(h.Kind()).Entities()...)
	for _, e := range ents {
		if v, ok := Get(w, e, h); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every entity that has both components.
func ForEach2[A, B any](w *World, ha component.Handle[A], hb component.Handle[B], fn func(e Entity, a *A, b *B)) {
	if w == nil || fn == nil {
		return
	}
	ents := append([]Entity(nil), w.Store(ha.Kind()).Entities()...)
	for _, e := range ents {
		a, ok := Get(w, e, ha)
		if !ok {
			continue
		}
		b, ok := Get(w, e, hb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 visits every entity that has all three components.
func ForEach3[A, B, C any](w *World, ha component.Handle[A], hb component.Handle[B], hc component.Handle[C], fn func(e Entity, a *A, b *B, c *C)) {
	if w == nil || fn == nil {
		return
	}
	ents := append([]Entity(nil), w.Store(ha.Kind()).Entities()...)
	for _, e := range ents {
		a, ok := Get(w, e, ha)
		if !ok {
			continue
		}
		b, ok := Get(w, e, hb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, hc)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}
