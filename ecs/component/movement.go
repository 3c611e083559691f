package component

import "github.com/jakecoffman/cp"

// MovementModel is the pluggable locomotion capability of an agent. It
// replaces the walking/flying subclass split: decision logic stays shared and
// the model only decides how a desired velocity maps onto the body.
type MovementModel interface {
	// ProjectVelocity maps the steered desired velocity onto the body,
	// given the body's current velocity.
	ProjectVelocity(desired, current cp.Vector) cp.Vector
	// CanAscendWhenBlocked reports whether steering may bias the agent
	// upward to escape a pinch.
	CanAscendWhenBlocked() bool
}

// GroundMovement locks the agent to gravity: only the horizontal component of
// the desired velocity is used, the vertical stays whatever gravity made it.
type GroundMovement struct{}

func (GroundMovement) ProjectVelocity(desired, current cp.Vector) cp.Vector {
	return cp.Vector{X: desired.X, Y: current.Y}
}

func (GroundMovement) CanAscendWhenBlocked() bool { return false }

// FlightMovement moves freely in 2D.
type FlightMovement struct{}

func (FlightMovement) ProjectVelocity(desired, current cp.Vector) cp.Vector {
	return desired
}

func (FlightMovement) CanAscendWhenBlocked() bool { return true }
