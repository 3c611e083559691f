package system

import (
	"github.com/jakecoffman/cp"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// PerceptionSystem runs the sight test and target-memory decay for every
// agent, before the decision core picks a behavior.
type PerceptionSystem struct {
	obstacles ecs.ObstacleQuery
}

func NewPerceptionSystem(obstacles ecs.ObstacleQuery) *PerceptionSystem {
	return &PerceptionSystem{obstacles: obstacles}
}

func (s *PerceptionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	target, found := playerPosition(w)
	now := w.Now()

	ecs.ForEach3(w,
		component.AgentComponent,
		component.PerceptionComponent,
		component.TransformComponent,
		func(e ecs.Entity, agent *component.Agent, per *component.Perception, t *component.Transform) {
			pos := cp.Vector{X: t.X, Y: t.Y}
			UpdatePerception(per, pos, target, found, now,
				agent.VisionRadius+agent.VisionBonus, agent.MemoryDuration, s.obstacles)
		})
}

// UpdatePerception advances one agent's sensory memory by one tick.
//
// The sight radius already includes the vision bonus: the notice range is
// deliberately wider than the radii used for tactical decisions. A target in
// range is visible only with a clear line of sight. A sighting overwrites the
// memory unconditionally; once the target is neither visible nor inside the
// memory window the memory is cleared so stale goals never leak into later
// decisions.
func UpdatePerception(p *component.Perception, agentPos, target cp.Vector, targetFound bool, now, sightRadius, memoryDuration float64, q ecs.ObstacleQuery) {
	if p == nil {
		return
	}

	visible := false
	if targetFound && sightRadius > 0 && agentPos.Distance(target) <= sightRadius {
		visible = lineClear(q, agentPos, target)
	}
	p.VisibleNow = visible

	if visible {
		p.Remembered = target
		p.HasRemembered = true
		p.LastSeenAt = now
		return
	}
	if !p.Remembering(now, memoryDuration) {
		p.Forget()
	}
}
