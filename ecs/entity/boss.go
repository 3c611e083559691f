package entity

import (
	"image/color"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// BossParams collects everything needed to spawn the boss.
type BossParams struct {
	X, Y          float64
	Width, Height float64
	Color         color.RGBA
	Health        float64

	Config component.Boss
	Clips  map[string][]component.Cue
}

// NewBoss spawns the boss. Incoming damage is recorded into the runtime's
// sliding-window log through the health damage callback, which is what feeds
// the retreat decision.
func NewBoss(w *ecs.World, p BossParams) ecs.Entity {
	e := w.CreateEntity()
	ecs.Add(w, e, component.TransformComponent, component.Transform{X: p.X, Y: p.Y})
	ecs.Add(w, e, component.VelocityComponent, component.Velocity{})
	ecs.Add(w, e, component.BossComponent, p.Config)
	rt := ecs.Add(w, e, component.BossRuntimeComponent, component.NewBossRuntime(w.Now()))
	ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Width:  p.Width,
		Height: p.Height,
		Color:  p.Color,
	})
	ecs.Add(w, e, component.ColliderComponent, component.Collider{Width: p.Width, Height: p.Height})

	hp := component.NewHealth(p.Health)
	hp.OnDamage = func(_ *component.Health, amount float64) {
		rt.RecordDamage(w.Now(), amount)
	}
	ecs.Add(w, e, component.HealthComponent, hp)

	if len(p.Clips) > 0 {
		ecs.Add(w, e, component.AnimationComponent, component.Animation{Clips: p.Clips})
	}

	if pw := w.PhysicsWorld(); pw != nil {
		body, shape := pw.AddActorBody(p.X, p.Y, p.Width, p.Height, false)
		ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Body: body, Shape: shape})
	}
	return e
}
