package component

import "github.com/jakecoffman/cp"

// PhysicsBody links an entity to its Chipmunk body and shape.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape
}

// Collider is the entity's axis-aligned hurt area, centered on the transform
// plus offset. Used for melee trigger overlap, not by the physics engine.
type Collider struct {
	Width, Height    float64
	OffsetX, OffsetY float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
var ColliderComponent = NewComponent[Collider]()
