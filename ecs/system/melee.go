package system

import (
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// MeleeSystem drives enemy melee attacks. Timing is split between two clocks:
// the cooldown is measured against the simulation clock, while the damage
// moment and the swing end arrive as animation signals. If the animation never
// fires the end signal the attack simply stays in its phase; there is no
// timeout by choice, a missing cue is an asset bug we want to see.
type MeleeSystem struct {
	hooks Hooks
}

func NewMeleeSystem(hooks Hooks) *MeleeSystem {
	return &MeleeSystem{hooks: hooks}
}

func (s *MeleeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()

	ecs.ForEach2(w,
		component.MeleeAttackComponent,
		component.TransformComponent,
		func(e ecs.Entity, m *component.MeleeAttack, t *component.Transform) {
			if hp, ok := ecs.Get(w, e, component.HealthComponent); ok && hp.Dead {
				return
			}
			inside := s.targetsInside(w, e, m)

			switch m.Phase {
			case component.MeleeIdle:
				if len(inside) > 0 && m.CooldownElapsed(now) {
					s.beginWindup(w, e, m, now)
				}
			case component.MeleeWindup:
				if m.CancelWhenEmpty && len(inside) == 0 {
					m.Phase = component.MeleeIdle
					m.PhaseEnteredAt = now
					playClip(w, e, "idle", now)
				}
			case component.MeleeStrike:
				// waiting for the end frame signal
			case component.MeleeCooldown:
				if now-m.PhaseEnteredAt < m.Cooldown {
					return
				}
				if m.RepeatWhileInside && len(inside) > 0 {
					s.beginWindup(w, e, m, now)
					return
				}
				m.Phase = component.MeleeIdle
				m.PhaseEnteredAt = now
			default:
				m.Phase = component.MeleeIdle
				m.PhaseEnteredAt = now
			}
		})
}

// HandleAnimationSignal reacts to the hit and end frames of the attack clip.
// The damage snapshot is taken at the hit frame, not at windup start: a target
// that walked in mid swing is hit, one that left is spared.
func (s *MeleeSystem) HandleAnimationSignal(w *ecs.World, e ecs.Entity, signal string) {
	m, ok := ecs.Get(w, e, component.MeleeAttackComponent)
	if !ok {
		return
	}
	now := w.Now()

	switch signal {
	case SignalHitFrame:
		if m.Phase != component.MeleeWindup {
			return
		}
		inside := s.targetsInside(w, e, m)
		for _, target := range inside {
			hp, ok := ecs.Get(w, target, component.HealthComponent)
			if !ok {
				continue
			}
			hp.TakeDamage(m.Damage)
			w.Events().Push(ecs.Event{Type: ecs.EventMeleeHit, Entity: target, Data: m.Damage})
		}
		if len(inside) > 0 {
			s.hooks.audio("melee_hit")
		}
		m.Phase = component.MeleeStrike
		m.PhaseEnteredAt = now
	case SignalEndFrame:
		if m.Phase != component.MeleeStrike && m.Phase != component.MeleeWindup {
			return
		}
		m.Phase = component.MeleeCooldown
		m.PhaseEnteredAt = now
		m.CooldownStartedAt = now
		playClip(w, e, "idle", now)
	}
}

func (s *MeleeSystem) beginWindup(w *ecs.World, e ecs.Entity, m *component.MeleeAttack, now float64) {
	m.Phase = component.MeleeWindup
	m.PhaseEnteredAt = now
	playClip(w, e, "attack", now)
	s.hooks.audio("attack_windup")
}

// targetsInside returns the player entities overlapping the trigger area.
// Hostile melee only ever considers the player; enemies never cut each other.
func (s *MeleeSystem) targetsInside(w *ecs.World, attacker ecs.Entity, m *component.MeleeAttack) []ecs.Entity {
	pos, ok := positionOf(w, attacker)
	if !ok {
		return nil
	}
	offX := m.TriggerOffsetX
	if sprite, ok := ecs.Get(w, attacker, component.SpriteComponent); ok && sprite.FacingLeft {
		offX = -offX
	}
	tx := pos.X + offX - m.TriggerWidth/2
	ty := pos.Y + m.TriggerOffsetY - m.TriggerHeight/2

	var out []ecs.Entity
	ecs.ForEach2(w,
		component.PlayerTagComponent,
		component.ColliderComponent,
		func(target ecs.Entity, _ *component.PlayerTag, c *component.Collider) {
			if target == attacker {
				return
			}
			if hp, ok := ecs.Get(w, target, component.HealthComponent); ok && hp.Dead {
				return
			}
			tp, ok := positionOf(w, target)
			if !ok {
				return
			}
			cx, cy, cw, ch := colliderAABB(tp, c)
			if aabbOverlap(tx, ty, m.TriggerWidth, m.TriggerHeight, cx, cy, cw, ch) {
				out = append(out, target)
			}
		})
	return out
}

func playClip(w *ecs.World, e ecs.Entity, name string, now float64) {
	if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok {
		anim.Play(name, now)
	}
}
