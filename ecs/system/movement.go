package system

import (
	"github.com/jakecoffman/cp"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// MovementSystem applies decided velocities. Entities with a physics body get
// the velocity pushed into the body and the transform pulled back after the
// step; body-less entities are integrated directly, which is what the tests
// use. Runs last in the scheduler so it sees every system's final velocity.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem { return &MovementSystem{} }

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach2(w,
		component.VelocityComponent,
		component.TransformComponent,
		func(e ecs.Entity, v *component.Velocity, t *component.Transform) {
			if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && pb.Body != nil {
				pb.Body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
				return
			}
			t.X += v.X * dt
			t.Y += v.Y * dt
		})

	if pw := w.PhysicsWorld(); pw != nil {
		pw.Step(dt)
	}

	// Pull authoritative positions and velocities back from the bodies so the
	// next tick's decisions see what physics actually did.
	ecs.ForEach2(w,
		component.PhysicsBodyComponent,
		component.TransformComponent,
		func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
			if pb.Body == nil {
				return
			}
			pos := pb.Body.Position()
			t.X, t.Y = pos.X, pos.Y
			if v, ok := ecs.Get(w, e, component.VelocityComponent); ok {
				vel := pb.Body.Velocity()
				v.X, v.Y = vel.X, vel.Y
			}
		})
}
