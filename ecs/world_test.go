package ecs

import (
	"testing"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			for _, e := range ents {
				if !w.IsAlive(e) {
					t.Fatalf("entity %v should be alive", e)
				}
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("double destroy should return false")
				}
			}
		})
	}
}

func TestEntityGenerationsDoNotAlias(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	stale := w.CreateEntity()
	Add(w, stale, h, 7)
	if !w.DestroyEntity(stale) {
		t.Fatal("destroy failed")
	}

	// Reuses the slot with a bumped generation.
	fresh := w.CreateEntity()
	if fresh == stale {
		t.Fatalf("recycled entity should differ from stale handle")
	}
	if w.IsAlive(stale) {
		t.Fatalf("stale handle should be dead")
	}
	if _, ok := Get(w, stale, h); ok {
		t.Fatalf("stale handle should not reach the recycled slot's components")
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()
	ha := component.NewComponent[int]()
	hb := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	Add(w, e1, ha, 10)
	Add(w, e2, ha, 20)
	Add(w, e2, hb, "b")

	v, ok := Get(w, e1, ha)
	if !ok || *v != 10 {
		t.Fatalf("expected 10, got %v ok=%v", v, ok)
	}

	// Mutation through the pointer must stick.
	*v = 11
	if got, _ := Get(w, e1, ha); *got != 11 {
		t.Fatalf("mutation lost, got %d", *got)
	}

	both := w.Query(ha.Kind(), hb.Kind())
	if len(both) != 1 || both[0] != e2 {
		t.Fatalf("query intersection = %v, want [e2]", both)
	}

	if !Remove(w, e1, ha) {
		t.Fatal("remove failed")
	}
	if Has(w, e1, ha) {
		t.Fatal("component still present after remove")
	}
}

func TestDestroyClearsComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e := w.CreateEntity()
	Add(w, e, h, 1)
	w.DestroyEntity(e)

	var visited []Entity
	ForEach(w, h, func(e Entity, _ *int) { visited = append(visited, e) })
	if len(visited) != 0 {
		t.Fatalf("dead entity visited: %v", visited)
	}
}

func TestClock(t *testing.T) {
	w := NewWorld()
	if w.Now() != 0 {
		t.Fatalf("fresh world clock = %v, want 0", w.Now())
	}

	w.Advance(1.0 / 60)
	w.Advance(1.0 / 60)
	if got := w.Now(); got < 0.033 || got > 0.034 {
		t.Fatalf("clock after two ticks = %v", got)
	}
	if got := w.Delta(); got != 1.0/60 {
		t.Fatalf("delta = %v, want %v", got, 1.0/60)
	}

	// Invalid deltas are ignored.
	before := w.Now()
	w.Advance(-1)
	w.Advance(0)
	if w.Now() != before {
		t.Fatalf("invalid advance moved the clock")
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: EventMeleeHit})
	w.Events().Push(Event{Type: EventBossState, Data: "idle"})

	events := w.Events().Drain()
	if len(events) != 2 {
		t.Fatalf("drained %d events, want 2", len(events))
	}
	if events[0].Type != EventMeleeHit || events[1].Type != EventBossState {
		t.Fatalf("wrong order: %v", events)
	}
	if again := w.Events().Drain(); len(again) != 0 {
		t.Fatalf("second drain should be empty, got %v", again)
	}
}
