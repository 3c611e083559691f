package ecs

import (
	"math"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// System updates a world once per fixed simulation tick.
type System interface {
	Update(w *World)
}

// World owns entities, component storages, the simulation clock, and the
// attached physics world. All state is mutated from the single update
// goroutine; there is no locking by design.
type World struct {
	entities entityStore
	stores   map[component.ID]*SparseSet
	events   EventQueue

	now float64
	dt  float64

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty world with the clock at zero.
func NewWorld() *World {
	return &World{stores: make(map[component.ID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Now returns the simulation time in seconds.
func (w *World) Now() float64 {
	if w == nil {
		return 0
	}
	return w.now
}

// Advance moves the simulation clock forward by dt seconds. Called exactly
// once per tick, before any system runs.
func (w *World) Advance(dt float64) {
	if w == nil || dt <= 0 || math.IsNaN(dt) {
		return
	}
	w.now += dt
	w.dt = dt
}

// Delta returns the duration of the current tick in seconds. Before the
// first Advance it reports the nominal 60 Hz step.
func (w *World) Delta() float64 {
	if w == nil || w.dt <= 0 {
		return 1.0 / 60
	}
	return w.dt
}

// Store returns the storage for a component kind, creating it if needed.
func (w *World) Store(kind component.ID) *SparseSet {
	if w == nil {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ID]*SparseSet)
	}
	s, ok := w.stores[kind]
	if !ok {
		s = &SparseSet{}
		w.stores[kind] = s
	}
	return s
}

// Query returns entities that have every listed component kind.
func (w *World) Query(kinds ...component.ID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	smallest := w.Store(kinds[0])
	for _, k := range kinds[1:] {
		if s := w.Store(k); s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
next:
	for _, e := range smallest.Entities() {
		for _, k := range kinds {
			if !w.Store(k).Has(e) {
				continue next
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns any one entity that has the component kind.
func (w *World) First(kind component.ID) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	ents := w.Store(kind).Entities()
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}
