package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// PlayerInputSystem is the minimal keyboard control used to exercise the
// enemies: the player moves with arrows/WASD and jumps with space. It is not
// part of the decision core and is left out of headless tests.
type PlayerInputSystem struct {
	MoveSpeed float64
	JumpSpeed float64
}

func NewPlayerInputSystem() *PlayerInputSystem {
	return &PlayerInputSystem{MoveSpeed: 180, JumpSpeed: 420}
}

func (s *PlayerInputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	if hp, ok := ecs.Get(w, player, component.HealthComponent); ok && hp.Dead {
		setVelocity(w, player, cp.Vector{})
		return
	}

	vel := currentVelocity(w, player)
	vx := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		vx -= s.MoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		vx += s.MoveSpeed
	}

	vy := vel.Y
	grounded := math.Abs(vel.Y) < 1
	if grounded && ebiten.IsKeyPressed(ebiten.KeySpace) {
		vy = -s.JumpSpeed
	}

	setVelocity(w, player, cp.Vector{X: vx, Y: vy})
	faceByVelocity(w, player, vx)
}
