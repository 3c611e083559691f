package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Coordinates are screen-space: x grows right, y grows down, so gravity is a
// positive y value and "up" is negative y.

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeActor
)

const (
	categorySolid uint = 1 << iota
	categoryActor
)

// obstacleFilter matches static level geometry only, so rays never collide
// with the agents casting them.
var obstacleFilter = cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categorySolid)

// RayHit describes the nearest obstacle along a segment.
type RayHit struct {
	Point  cp.Vector
	Normal cp.Vector
	Alpha  float64
}

// ObstacleQuery is the geometry service consumed by perception, the local
// path planner, and steering. A miss means "no obstacle", never an error.
type ObstacleQuery interface {
	Raycast(origin, end cp.Vector) (RayHit, bool)
}

// StaticRect is an axis-aligned obstacle in world coordinates.
type StaticRect struct {
	X, Y, W, H float64
}

// PhysicsWorld owns the Chipmunk space, static collision shapes, and the
// dynamic bodies of spawned actors. It implements ObstacleQuery.
type PhysicsWorld struct {
	space *cp.Space
}

// NewPhysicsWorld creates a space with the given gravity and static geometry.
func NewPhysicsWorld(gravity float64, rects []StaticRect) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	pw := &PhysicsWorld{space: space}
	for _, r := range rects {
		pw.addStaticRect(r)
	}
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Step advances the physics simulation by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// Raycast returns the nearest static-geometry hit between origin and end.
func (pw *PhysicsWorld) Raycast(origin, end cp.Vector) (RayHit, bool) {
	if pw == nil || pw.space == nil {
		return RayHit{}, false
	}
	info := pw.space.SegmentQueryFirst(origin, end, 0, obstacleFilter)
	if info.Shape == nil {
		return RayHit{}, false
	}
	return RayHit{Point: info.Point, Normal: info.Normal, Alpha: info.Alpha}, true
}

// AddActorBody creates a fixed-rotation dynamic box body for an actor.
// Flying actors opt out of gravity the same way the physics engine expects:
// a velocity update func that integrates with zero gravity.
func (pw *PhysicsWorld) AddActorBody(x, y, width, height float64, flying bool) (*cp.Body, *cp.Shape) {
	if pw == nil || pw.space == nil {
		return nil, nil
	}
	if width <= 0 {
		width = 32
	}
	if height <= 0 {
		height = 32
	}

	mass := 1.0
	body := cp.NewBody(mass, math.Inf(1))
	body.SetAngle(0)
	body.SetAngularVelocity(0)
	body.SetPosition(cp.Vector{X: x, Y: y})
	if flying {
		body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(b, cp.Vector{}, damping, dt)
		})
	}

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeActor)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryActor, cp.ALL_CATEGORIES))

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	return body, shape
}

// RemoveActorBody detaches a dead actor from the space.
func (pw *PhysicsWorld) RemoveActorBody(body *cp.Body, shape *cp.Shape) {
	if pw == nil || pw.space == nil {
		return
	}
	if shape != nil {
		pw.space.RemoveShape(shape)
	}
	if body != nil {
		pw.space.RemoveBody(body)
	}
}

func (pw *PhysicsWorld) addStaticRect(r StaticRect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	bb := cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categorySolid, cp.ALL_CATEGORIES))
	pw.space.AddShape(shape)
}
