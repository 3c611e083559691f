package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// NeverSeen is the last-seen sentinel for an agent that has no target memory.
var NeverSeen = math.Inf(-1)

// Perception holds an agent's sensory memory of the target: the last position
// it was seen at and when. The invariant is that an expired memory is always
// cleared, never left "stale but present".
type Perception struct {
	Remembered    cp.Vector
	HasRemembered bool
	LastSeenAt    float64
	VisibleNow    bool
}

// NewPerception returns an empty memory.
func NewPerception() Perception {
	return Perception{LastSeenAt: NeverSeen}
}

// Remembering reports whether the memory is still inside the window. It is
// independent of current visibility: this is what lets an agent keep chasing
// briefly after losing sight.
func (p *Perception) Remembering(now, memoryDuration float64) bool {
	return p != nil && p.HasRemembered && now-p.LastSeenAt <= memoryDuration
}

// Forget clears the memory back to the sentinel state.
func (p *Perception) Forget() {
	if p == nil {
		return
	}
	p.Remembered = cp.Vector{}
	p.HasRemembered = false
	p.LastSeenAt = NeverSeen
}

var PerceptionComponent = NewComponent[Perception]()
