package ecs

// Event is a generic world event payload. Systems push, the shell drains.
type Event struct {
	Type   string
	Entity Entity
	Data   any
}

const (
	EventMeleeHit     = "melee_hit"
	EventBossState    = "boss_state"
	EventBossDefeated = "boss_defeated"
	EventAgentDied    = "agent_died"
)

// EventQueue is a simple FIFO queue drained once per tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
