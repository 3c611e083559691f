package entity

import (
	"image/color"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// AgentParams collects everything needed to spawn one regular enemy. The
// Patrol route, Melee attack, and animation clips are optional.
type AgentParams struct {
	X, Y          float64
	Flying        bool
	Width, Height float64
	Color         color.RGBA
	Health        float64

	Agent  component.Agent
	Patrol *component.PatrolRoute
	Melee  *component.MeleeAttack
	Clips  map[string][]component.Cue
}

// NewAgent spawns a patrol/chase enemy.
func NewAgent(w *ecs.World, p AgentParams) ecs.Entity {
	if p.Agent.Model == nil {
		if p.Flying {
			p.Agent.Model = component.FlightMovement{}
		} else {
			p.Agent.Model = component.GroundMovement{}
		}
	}

	e := w.CreateEntity()
	ecs.Add(w, e, component.TransformComponent, component.Transform{X: p.X, Y: p.Y})
	ecs.Add(w, e, component.VelocityComponent, component.Velocity{})
	ecs.Add(w, e, component.AgentComponent, p.Agent)
	ecs.Add(w, e, component.PerceptionComponent, component.NewPerception())
	ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Width:  p.Width,
		Height: p.Height,
		Color:  p.Color,
	})
	ecs.Add(w, e, component.ColliderComponent, component.Collider{Width: p.Width, Height: p.Height})
	ecs.Add(w, e, component.HealthComponent, component.NewHealth(p.Health))

	if p.Patrol != nil {
		ecs.Add(w, e, component.PatrolRouteComponent, *p.Patrol)
	}
	if p.Melee != nil {
		ecs.Add(w, e, component.MeleeAttackComponent, component.NewMeleeAttack(*p.Melee))
	}
	if len(p.Clips) > 0 {
		ecs.Add(w, e, component.AnimationComponent, component.Animation{Clips: p.Clips})
	}

	if pw := w.PhysicsWorld(); pw != nil {
		body, shape := pw.AddActorBody(p.X, p.Y, p.Width, p.Height, p.Flying)
		ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Body: body, Shape: shape})
	}
	return e
}
