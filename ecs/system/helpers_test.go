package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// rectWorld is a minimal obstacle query for tests: axis-aligned rectangles
// with slab-test raycasts, no physics engine involved.
type rectWorld struct {
	rects []testRect
}

type testRect struct {
	x, y, w, h float64
}

func (rw rectWorld) Raycast(origin, end cp.Vector) (ecs.RayHit, bool) {
	d := end.Sub(origin)
	best := math.Inf(1)
	var bestHit ecs.RayHit
	found := false

	for _, r := range rw.rects {
		t, normal, ok := segmentVsRect(origin, d, r)
		if ok && t < best {
			best = t
			bestHit = ecs.RayHit{
				Point:  origin.Add(d.Mult(t)),
				Normal: normal,
				Alpha:  t,
			}
			found = true
		}
	}
	return bestHit, found
}

func segmentVsRect(o, d cp.Vector, r testRect) (float64, cp.Vector, bool) {
	tmin, tmax := 0.0, 1.0
	normal := cp.Vector{}

	if d.X == 0 {
		if o.X < r.x || o.X > r.x+r.w {
			return 0, normal, false
		}
	} else {
		inv := 1 / d.X
		t1 := (r.x - o.X) * inv
		t2 := (r.x + r.w - o.X) * inv
		n := cp.Vector{X: -1}
		if t1 > t2 {
			t1, t2 = t2, t1
			n = cp.Vector{X: 1}
		}
		if t1 > tmin {
			tmin = t1
			normal = n
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, normal, false
		}
	}

	if d.Y == 0 {
		if o.Y < r.y || o.Y > r.y+r.h {
			return 0, normal, false
		}
	} else {
		inv := 1 / d.Y
		t1 := (r.y - o.Y) * inv
		t2 := (r.y + r.h - o.Y) * inv
		n := cp.Vector{Y: -1}
		if t1 > t2 {
			t1, t2 = t2, t1
			n = cp.Vector{Y: 1}
		}
		if t1 > tmin {
			tmin = t1
			normal = n
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, normal, false
		}
	}

	if tmin <= 0 {
		// starts inside the rect
		return 0, normal, false
	}
	return tmin, normal, true
}

// newAgentEntity spawns a body-less agent for system tests. Positions are
// driven through the transform and velocities integrate directly.
func newAgentEntity(w *ecs.World, x, y float64, agent component.Agent) ecs.Entity {
	e := w.CreateEntity()
	ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y})
	ecs.Add(w, e, component.VelocityComponent, component.Velocity{})
	ecs.Add(w, e, component.AgentComponent, agent)
	ecs.Add(w, e, component.PerceptionComponent, component.NewPerception())
	ecs.Add(w, e, component.HealthComponent, component.NewHealth(40))
	return e
}

func newPlayerEntity(w *ecs.World, x, y float64) ecs.Entity {
	e := w.CreateEntity()
	ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y})
	ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{})
	ecs.Add(w, e, component.ColliderComponent, component.Collider{Width: 24, Height: 40})
	ecs.Add(w, e, component.HealthComponent, component.NewHealth(100))
	return e
}

func movePlayer(w *ecs.World, player ecs.Entity, x, y float64) {
	if t, ok := ecs.Get(w, player, component.TransformComponent); ok {
		t.X, t.Y = x, y
	}
}

func velocityOf(w *ecs.World, e ecs.Entity) cp.Vector {
	v, ok := ecs.Get(w, e, component.VelocityComponent)
	if !ok {
		return cp.Vector{}
	}
	return cp.Vector{X: v.X, Y: v.Y}
}

// step advances the clock one tick and runs the listed systems in order.
func step(w *ecs.World, systems ...ecs.System) {
	w.Advance(1.0 / 60)
	for _, s := range systems {
		s.Update(w)
	}
}
