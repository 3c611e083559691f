package component

import "github.com/jakecoffman/cp"

// PatrolRoute is an ordered pair of waypoints walked back and forth, with an
// optional pause at each end. PendingIndex is only meaningful while Paused and
// is committed to Index exactly once, at pause end.
type PatrolRoute struct {
	A, B  cp.Vector
	Index int // 0 or 1

	PauseDuration float64 // 0 disables pausing

	Paused         bool
	PauseStartedAt float64
	PendingIndex   int
}

// Target returns the waypoint the route currently points at.
func (p *PatrolRoute) Target() cp.Vector {
	if p == nil || p.Index == 0 {
		return p.A
	}
	return p.B
}

// Toggle flips the waypoint index immediately.
func (p *PatrolRoute) Toggle() {
	if p == nil {
		return
	}
	p.Index = 1 - p.Index
}

var PatrolRouteComponent = NewComponent[PatrolRoute]()
