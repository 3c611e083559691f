package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// Renderer draws the placeholder scene: colored boxes for actors, health
// bars, and an optional debug layer with vision ranges and patrol routes.
type Renderer struct {
	Debug bool
}

func NewRenderer(debug bool) *Renderer {
	return &Renderer{Debug: debug}
}

func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	if screen == nil || w == nil {
		return
	}

	ecs.ForEach2(w,
		component.SpriteComponent,
		component.TransformComponent,
		func(e ecs.Entity, sprite *component.Sprite, t *component.Transform) {
			x := float32(t.X - sprite.Width/2)
			y := float32(t.Y - sprite.Height/2)
			vector.DrawFilledRect(screen, x, y, float32(sprite.Width), float32(sprite.Height), sprite.Color, false)

			if hp, ok := ecs.Get(w, e, component.HealthComponent); ok && !hp.Dead {
				r.drawHealthBar(screen, t, sprite, hp)
			}
		})

	if r.Debug {
		r.drawDebug(screen, w)
	}
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, t *component.Transform, sprite *component.Sprite, hp *component.Health) {
	barW := float32(sprite.Width)
	x := float32(t.X - sprite.Width/2)
	y := float32(t.Y-sprite.Height/2) - 6
	vector.DrawFilledRect(screen, x, y, barW, 3, color.RGBA{R: 60, G: 60, B: 60, A: 255}, false)
	vector.DrawFilledRect(screen, x, y, barW*float32(hp.Fraction()), 3, color.RGBA{R: 200, G: 40, B: 40, A: 255}, false)
}

func (r *Renderer) drawDebug(screen *ebiten.Image, w *ecs.World) {
	seen := color.RGBA{R: 80, G: 200, B: 80, A: 120}
	blind := color.RGBA{R: 200, G: 200, B: 80, A: 120}
	route := color.RGBA{R: 80, G: 120, B: 220, A: 160}

	ecs.ForEach3(w,
		component.AgentComponent,
		component.PerceptionComponent,
		component.TransformComponent,
		func(e ecs.Entity, agent *component.Agent, per *component.Perception, t *component.Transform) {
			clr := blind
			if per.VisibleNow {
				clr = seen
			}
			vector.StrokeCircle(screen, float32(t.X), float32(t.Y),
				float32(agent.VisionRadius+agent.VisionBonus), 1, clr, false)

			if pr, ok := ecs.Get(w, e, component.PatrolRouteComponent); ok {
				vector.StrokeLine(screen,
					float32(pr.A.X), float32(pr.A.Y),
					float32(pr.B.X), float32(pr.B.Y), 1, route, false)
			}
		})

	ecs.ForEach2(w,
		component.BossRuntimeComponent,
		component.TransformComponent,
		func(e ecs.Entity, rt *component.BossRuntime, t *component.Transform) {
			label := string(rt.State)
			if rt.Enraged {
				label += " (enraged)"
			}
			ebitenutil.DebugPrintAt(screen, label, int(t.X)-20, int(t.Y)-40)
		})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("t=%.2fs", w.Now()), 4, 4)
}
