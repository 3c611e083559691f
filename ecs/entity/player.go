package entity

import (
	"image/color"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// NewPlayer spawns the player actor at a position. The player is the sole
// chase target of every agent and boss in the level.
func NewPlayer(w *ecs.World, x, y, maxHealth float64) ecs.Entity {
	e := w.CreateEntity()
	ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y})
	ecs.Add(w, e, component.VelocityComponent, component.Velocity{})
	ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{})
	ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Width:  24,
		Height: 40,
		Color:  color.RGBA{R: 90, G: 170, B: 240, A: 255},
	})
	ecs.Add(w, e, component.ColliderComponent, component.Collider{Width: 24, Height: 40})
	ecs.Add(w, e, component.HealthComponent, component.NewHealth(maxHealth))

	if pw := w.PhysicsWorld(); pw != nil {
		body, shape := pw.AddActorBody(x, y, 24, 40, false)
		ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Body: body, Shape: shape})
	}
	return e
}
