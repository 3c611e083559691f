package component

// Transform is an entity's world position.
type Transform struct {
	X, Y float64
}

// Velocity is the authoritative per-tick velocity in world units per second.
// The movement system pushes it into the physics body when one exists.
type Velocity struct {
	X, Y float64
}

var TransformComponent = NewComponent[Transform]()
var VelocityComponent = NewComponent[Velocity]()
