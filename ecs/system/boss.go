package system

import (
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// BossSystem runs the boss combat state machine. All timing is expressed as
// state-entry timestamps compared against the world clock, so the machine is
// deterministic under a driven clock and trivially save/restorable.
//
// The boss has no perception step: it always knows the player's position.
type BossSystem struct {
	hooks Hooks
	rng   *rand.Rand

	// hitThisSwing guards each damage window so one swing hits a target once
	// even though the window spans several ticks.
	hitThisSwing map[ecs.Entity]map[ecs.Entity]struct{}
}

func NewBossSystem(hooks Hooks, rng *rand.Rand) *BossSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &BossSystem{
		hooks:        hooks,
		rng:          rng,
		hitThisSwing: make(map[ecs.Entity]map[ecs.Entity]struct{}),
	}
}

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()
	playerPos, playerFound := playerPosition(w)

	ecs.ForEach3(w,
		component.BossComponent,
		component.BossRuntimeComponent,
		component.HealthComponent,
		func(e ecs.Entity, cfg *component.Boss, rt *component.BossRuntime, hp *component.Health) {
			s.updateBoss(w, e, cfg, rt, hp, playerPos, playerFound, now)
		})
}

func (s *BossSystem) updateBoss(w *ecs.World, e ecs.Entity, cfg *component.Boss, rt *component.BossRuntime, hp *component.Health, playerPos cp.Vector, playerFound bool, now float64) {
	if rt.State == component.BossDead {
		setVelocity(w, e, cp.Vector{})
		return
	}
	if hp.Dead {
		s.enterDead(w, e, rt, now)
		return
	}

	// Enrage flips on the first update after health crosses the threshold
	// and never resets.
	if !rt.Enraged && cfg.EnrageThreshold > 0 && hp.Fraction() <= cfg.EnrageThreshold {
		rt.Enraged = true
		s.hooks.audio("boss_enrage")
		w.Events().Push(ecs.Event{Type: ecs.EventBossState, Entity: e, Data: "enraged"})
	}

	pos, ok := positionOf(w, e)
	if !ok {
		return
	}
	speed, windup, recover := effectiveTempo(cfg, rt.Enraged)
	elapsed := now - rt.StateEnteredAt

	switch rt.State {
	case component.BossIdle:
		s.stop(w, e)
		if elapsed >= cfg.IdleDelay {
			s.transition(w, e, rt, component.BossApproach, now)
		}

	case component.BossApproach:
		if !playerFound {
			s.stop(w, e)
			return
		}
		if s.retreatEligible(cfg, rt, now) {
			s.enterRetreat(w, e, cfg, rt, pos, playerPos, now)
			return
		}
		s.facePlayer(w, e, pos, playerPos)
		if s.playerInAttackArea(w, e, cfg, pos) && now >= rt.NextAttackReadyAt {
			s.stop(w, e)
			s.transition(w, e, rt, component.BossWindup, now)
			playClip(w, e, "windup", now)
			s.hooks.audio("boss_windup")
			return
		}
		dir := 1.0
		if playerPos.X < pos.X {
			dir = -1
		}
		s.walk(w, e, dir*speed)

	case component.BossWindup:
		s.stop(w, e)
		if elapsed >= windup {
			s.enterAttacking(w, e, rt, now)
		}

	case component.BossAttacking:
		s.stop(w, e)
		if rt.DamageWindowOpen {
			s.dealAreaDamage(w, e, cfg, pos)
		}
		if elapsed >= cfg.AttackDuration {
			rt.DamageWindowOpen = false
			rt.NextAttackReadyAt = now + s.rollCooldown(cfg)
			s.transition(w, e, rt, component.BossRecovering, now)
		}

	case component.BossRecovering:
		s.stop(w, e)
		if elapsed >= recover {
			if s.retreatEligible(cfg, rt, now) {
				s.enterRetreat(w, e, cfg, rt, pos, playerPos, now)
				return
			}
			s.transition(w, e, rt, component.BossApproach, now)
		}

	case component.BossRetreating:
		if now-rt.RetreatStartedAt >= cfg.RetreatDuration || s.atEdge(cfg, pos) {
			s.stop(w, e)
			s.transition(w, e, rt, component.BossApproach, now)
			return
		}
		s.walk(w, e, rt.DashDirX*speed)
		if rt.RetreatDashesRemaining > 0 && now-rt.LastDashAt >= cfg.RedashInterval {
			s.enterDash(w, e, rt, pos, playerPos, now)
		}

	case component.BossDashing:
		if s.atEdge(cfg, pos) {
			s.stop(w, e)
			s.transition(w, e, rt, component.BossApproach, now)
			return
		}
		s.walk(w, e, rt.DashDirX*cfg.DashSpeed)
		if elapsed >= cfg.DashDuration {
			if rt.RetreatDashesRemaining > 0 {
				s.transition(w, e, rt, component.BossRetreating, now)
			} else {
				s.stop(w, e)
				s.transition(w, e, rt, component.BossApproach, now)
			}
		}

	default:
		s.transition(w, e, rt, component.BossIdle, now)
	}
}

// HandleAnimationSignal opens and closes the swing damage window.
func (s *BossSystem) HandleAnimationSignal(w *ecs.World, e ecs.Entity, signal string) {
	rt, ok := ecs.Get(w, e, component.BossRuntimeComponent)
	if !ok {
		return
	}
	switch signal {
	case SignalDamageOn:
		if rt.State == component.BossAttacking {
			rt.DamageWindowOpen = true
		}
	case SignalDamageOff:
		rt.DamageWindowOpen = false
	}
}

func (s *BossSystem) transition(w *ecs.World, e ecs.Entity, rt *component.BossRuntime, next component.BossState, now float64) {
	rt.State = next
	rt.StateEnteredAt = now
	w.Events().Push(ecs.Event{Type: ecs.EventBossState, Entity: e, Data: string(next)})
}

func (s *BossSystem) enterAttacking(w *ecs.World, e ecs.Entity, rt *component.BossRuntime, now float64) {
	s.hitThisSwing[e] = make(map[ecs.Entity]struct{})
	rt.DamageWindowOpen = false
	s.transition(w, e, rt, component.BossAttacking, now)
	playClip(w, e, "attack", now)
	s.hooks.audio("boss_attack")
}

// enterRetreat starts a retreat and immediately performs the first dash.
// LastRetreatAt is stamped on entry, which makes the cooldown self-enforcing
// even if the retreat is cut short at an arena edge.
func (s *BossSystem) enterRetreat(w *ecs.World, e ecs.Entity, cfg *component.Boss, rt *component.BossRuntime, pos, playerPos cp.Vector, now float64) {
	rt.LastRetreatAt = now
	rt.RetreatStartedAt = now
	rt.DamageLog = rt.DamageLog[:0]

	span := cfg.MaxDashes - cfg.MinDashes
	if span < 0 {
		span = 0
	}
	rt.RetreatDashesRemaining = cfg.MinDashes + s.rng.Intn(span+1)
	if rt.RetreatDashesRemaining < 1 {
		rt.RetreatDashesRemaining = 1
	}

	s.transition(w, e, rt, component.BossRetreating, now)
	s.hooks.audio("boss_retreat")
	s.enterDash(w, e, rt, pos, playerPos, now)
}

func (s *BossSystem) enterDash(w *ecs.World, e ecs.Entity, rt *component.BossRuntime, pos, playerPos cp.Vector, now float64) {
	rt.RetreatDashesRemaining--
	rt.LastDashAt = now
	rt.DashDirX = awayDir(pos, playerPos)
	s.transition(w, e, rt, component.BossDashing, now)
	playClip(w, e, "dash", now)
}

func (s *BossSystem) enterDead(w *ecs.World, e ecs.Entity, rt *component.BossRuntime, now float64) {
	s.transition(w, e, rt, component.BossDead, now)
	s.stop(w, e)
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
		if pw := w.PhysicsWorld(); pw != nil {
			pw.RemoveActorBody(pb.Body, pb.Shape)
		}
		ecs.Remove(w, e, component.PhysicsBodyComponent)
	}
	if !rt.Defeated {
		rt.Defeated = true
		w.Events().Push(ecs.Event{Type: ecs.EventBossDefeated, Entity: e})
		s.hooks.bossDefeated()
		s.hooks.achievement("boss_defeated")
		s.hooks.sceneTransition("victory")
	}
}

// retreatEligible checks the sliding-window damage sum against the threshold
// and the retreat cooldown. A non-positive threshold disables retreating.
func (s *BossSystem) retreatEligible(cfg *component.Boss, rt *component.BossRuntime, now float64) bool {
	if cfg.RetreatDamageThreshold <= 0 {
		return false
	}
	if now-rt.LastRetreatAt < cfg.RetreatCooldown {
		return false
	}
	return rt.PruneDamageLog(now, cfg.DamageTrackingWindow) >= cfg.RetreatDamageThreshold
}

func (s *BossSystem) dealAreaDamage(w *ecs.World, attacker ecs.Entity, cfg *component.Boss, pos cp.Vector) {
	hit := s.hitThisSwing[attacker]
	if hit == nil {
		hit = make(map[ecs.Entity]struct{})
		s.hitThisSwing[attacker] = hit
	}

	ax, ay, aw, ah := s.attackArea(w, attacker, cfg, pos)
	ecs.ForEach2(w,
		component.PlayerTagComponent,
		component.ColliderComponent,
		func(target ecs.Entity, _ *component.PlayerTag, c *component.Collider) {
			if _, done := hit[target]; done {
				return
			}
			hp, ok := ecs.Get(w, target, component.HealthComponent)
			if !ok || hp.Dead {
				return
			}
			tp, ok := positionOf(w, target)
			if !ok {
				return
			}
			cx, cy, cw, ch := colliderAABB(tp, c)
			if !aabbOverlap(ax, ay, aw, ah, cx, cy, cw, ch) {
				return
			}
			hit[target] = struct{}{}
			hp.TakeDamage(cfg.AttackDamage)
			w.Events().Push(ecs.Event{Type: ecs.EventMeleeHit, Entity: target, Data: cfg.AttackDamage})
			s.hooks.audio("boss_hit")
		})
}

func (s *BossSystem) playerInAttackArea(w *ecs.World, e ecs.Entity, cfg *component.Boss, pos cp.Vector) bool {
	ax, ay, aw, ah := s.attackArea(w, e, cfg, pos)
	found := false
	ecs.ForEach2(w,
		component.PlayerTagComponent,
		component.ColliderComponent,
		func(target ecs.Entity, _ *component.PlayerTag, c *component.Collider) {
			if found {
				return
			}
			tp, ok := positionOf(w, target)
			if !ok {
				return
			}
			cx, cy, cw, ch := colliderAABB(tp, c)
			found = aabbOverlap(ax, ay, aw, ah, cx, cy, cw, ch)
		})
	return found
}

// attackArea is the facing-mirrored rectangle in front of the boss.
func (s *BossSystem) attackArea(w *ecs.World, e ecs.Entity, cfg *component.Boss, pos cp.Vector) (x, y, width, height float64) {
	x = pos.X
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent); ok && sprite.FacingLeft {
		x = pos.X - cfg.AttackReach
	}
	return x, pos.Y - cfg.AttackAreaHeight/2, cfg.AttackReach, cfg.AttackAreaHeight
}

func (s *BossSystem) rollCooldown(cfg *component.Boss) float64 {
	span := cfg.AttackCooldownMax - cfg.AttackCooldownMin
	if span < 0 {
		span = 0
	}
	return cfg.AttackCooldownMin + s.rng.Float64()*span
}

func (s *BossSystem) atEdge(cfg *component.Boss, pos cp.Vector) bool {
	if cfg.EdgeRightX <= cfg.EdgeLeftX {
		return false
	}
	return pos.X <= cfg.EdgeLeftX+cfg.EdgeBuffer || pos.X >= cfg.EdgeRightX-cfg.EdgeBuffer
}

func (s *BossSystem) facePlayer(w *ecs.World, e ecs.Entity, pos, playerPos cp.Vector) {
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent); ok {
		sprite.FacingLeft = playerPos.X < pos.X
	}
}

// walk sets a horizontal gait, preserving the vertical velocity the body has.
func (s *BossSystem) walk(w *ecs.World, e ecs.Entity, vx float64) {
	current := currentVelocity(w, e)
	setVelocity(w, e, cp.Vector{X: vx, Y: current.Y})
}

func (s *BossSystem) stop(w *ecs.World, e ecs.Entity) {
	current := currentVelocity(w, e)
	setVelocity(w, e, cp.Vector{X: 0, Y: current.Y})
}

func effectiveTempo(cfg *component.Boss, enraged bool) (speed, windup, recover float64) {
	speed = cfg.MoveSpeed
	windup = cfg.WindupDuration
	recover = cfg.RecoverDuration
	if !enraged {
		return speed, windup, recover
	}
	if cfg.EnrageSpeedMultiplier > 0 {
		speed *= cfg.EnrageSpeedMultiplier
	}
	if cfg.EnrageTempoDivisor > 0 {
		windup /= cfg.EnrageTempoDivisor
		recover /= cfg.EnrageTempoDivisor
	}
	return speed, windup, recover
}

func awayDir(pos, playerPos cp.Vector) float64 {
	if pos.X < playerPos.X {
		return -1
	}
	return 1
}
