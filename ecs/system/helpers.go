package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// Animation signals the combat systems depend on.
const (
	SignalHitFrame  = "hit_frame"
	SignalEndFrame  = "end_frame"
	SignalDamageOn  = "damage_on"
	SignalDamageOff = "damage_off"
)

// playerPosition locates the single player entity, preferring the physics
// body position over the transform.
func playerPosition(w *ecs.World) (cp.Vector, bool) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	if pb, ok := ecs.Get(w, player, component.PhysicsBodyComponent); ok && pb.Body != nil {
		return pb.Body.Position(), true
	}
	if t, ok := ecs.Get(w, player, component.TransformComponent); ok {
		return cp.Vector{X: t.X, Y: t.Y}, true
	}
	return cp.Vector{}, false
}

func positionOf(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && pb.Body != nil {
		return pb.Body.Position(), true
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
		return cp.Vector{X: t.X, Y: t.Y}, true
	}
	return cp.Vector{}, false
}

// currentVelocity reads the body velocity when a body exists, otherwise the
// velocity component. Gravity only shows up in body velocities, which is what
// lets ground agents preserve their fall speed.
func currentVelocity(w *ecs.World, e ecs.Entity) cp.Vector {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok && pb.Body != nil {
		return pb.Body.Velocity()
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent); ok {
		return cp.Vector{X: v.X, Y: v.Y}
	}
	return cp.Vector{}
}

// setVelocity writes the authoritative velocity component; the movement
// system pushes it into the physics body.
func setVelocity(w *ecs.World, e ecs.Entity, v cp.Vector) {
	if vc, ok := ecs.Get(w, e, component.VelocityComponent); ok {
		vc.X, vc.Y = v.X, v.Y
		return
	}
	ecs.Add(w, e, component.VelocityComponent, component.Velocity{X: v.X, Y: v.Y})
}

func faceByVelocity(w *ecs.World, e ecs.Entity, vx float64) {
	if math.Abs(vx) < 1e-3 {
		return
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent); ok {
		sprite.FacingLeft = vx < 0
	}
}

func lineClear(q ecs.ObstacleQuery, a, b cp.Vector) bool {
	if q == nil {
		return true
	}
	_, hit := q.Raycast(a, b)
	return !hit
}

func directionTo(from, to cp.Vector) cp.Vector {
	diff := to.Sub(from)
	length := diff.Length()
	if length == 0 {
		return cp.Vector{}
	}
	return diff.Mult(1 / length)
}

func aabbOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// colliderAABB returns the top-left corner and size of an entity's hurt area.
func colliderAABB(pos cp.Vector, c *component.Collider) (x, y, w, h float64) {
	width := c.Width
	height := c.Height
	if width <= 0 {
		width = 32
	}
	if height <= 0 {
		height = 32
	}
	return pos.X + c.OffsetX - width/2, pos.Y + c.OffsetY - height/2, width, height
}
