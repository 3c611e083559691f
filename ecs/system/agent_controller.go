package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/common"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// AgentSystem is the per-tick decision core for regular enemies. Each agent
// picks a behavior (chase, patrol, idle), runs the goal through the local
// planner and the obstacle steering, and ramps the velocity toward the result
// under its acceleration limit.
type AgentSystem struct {
	obstacles ecs.ObstacleQuery
	buried    map[ecs.Entity]struct{}
}

func NewAgentSystem(obstacles ecs.ObstacleQuery) *AgentSystem {
	return &AgentSystem{
		obstacles: obstacles,
		buried:    make(map[ecs.Entity]struct{}),
	}
}

func (s *AgentSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()
	dt := w.Delta()

	ecs.ForEach3(w,
		component.AgentComponent,
		component.PerceptionComponent,
		component.TransformComponent,
		func(e ecs.Entity, agent *component.Agent, per *component.Perception, t *component.Transform) {
			if hp, ok := ecs.Get(w, e, component.HealthComponent); ok && hp.Dead {
				s.bury(w, e)
				return
			}

			pos := cp.Vector{X: t.X, Y: t.Y}
			current := currentVelocity(w, e)
			model := agent.Model
			if model == nil {
				model = component.GroundMovement{}
			}

			desired := s.desiredVelocity(w, e, agent, per, pos, now)
			steered := AvoidObstacles(pos, desired, s.obstacles, agent.Steering, model.CanAscendWhenBlocked())
			projected := model.ProjectVelocity(steered, current)
			next := common.MoveTowardsVec(current, projected, agent.Acceleration*dt)

			setVelocity(w, e, next)
			faceByVelocity(w, e, next.X)
		})
}

// bury stops a dead agent and detaches it from the physics space, once.
func (s *AgentSystem) bury(w *ecs.World, e ecs.Entity) {
	setVelocity(w, e, cp.Vector{})
	if _, done := s.buried[e]; done {
		return
	}
	s.buried[e] = struct{}{}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
		if pw := w.PhysicsWorld(); pw != nil {
			pw.RemoveActorBody(pb.Body, pb.Shape)
		}
		ecs.Remove(w, e, component.PhysicsBodyComponent)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventAgentDied, Entity: e})
}

// desiredVelocity selects the behavior for this tick. A remembered target
// always wins over patrolling, even when the sighting itself has lapsed.
func (s *AgentSystem) desiredVelocity(w *ecs.World, e ecs.Entity, agent *component.Agent, per *component.Perception, pos cp.Vector, now float64) cp.Vector {
	if per.Remembering(now, agent.MemoryDuration) {
		return s.chaseVelocity(agent, per, pos)
	}
	if route, ok := ecs.Get(w, e, component.PatrolRouteComponent); ok {
		return s.patrolVelocity(route, agent, pos, now)
	}
	return cp.Vector{}
}

func (s *AgentSystem) chaseVelocity(agent *component.Agent, per *component.Perception, pos cp.Vector) cp.Vector {
	goal := per.Remembered
	goal.Y = pushVertical(goal.Y, pos.Y, agent.VerticalSeparation)
	corrected := ReachablePoint(pos, goal, s.obstacles, agent.Planner)

	// At the last known spot with no fresh sighting there is nothing left to
	// chase; hold position until the memory lapses.
	if !per.VisibleNow && pos.Distance(corrected) <= agent.ArrivalThreshold {
		return cp.Vector{}
	}

	mult := agent.ChaseSpeedMultiplier
	if mult <= 0 {
		mult = 1
	}
	return directionTo(pos, corrected).Mult(agent.MoveSpeed * mult)
}

func (s *AgentSystem) patrolVelocity(route *component.PatrolRoute, agent *component.Agent, pos cp.Vector, now float64) cp.Vector {
	if route.Paused {
		if now-route.PauseStartedAt < route.PauseDuration {
			return cp.Vector{}
		}
		route.Index = route.PendingIndex
		route.Paused = false
	}

	target := route.Target()
	if pos.Distance(target) <= agent.ArrivalThreshold {
		if route.PauseDuration > 0 {
			route.Paused = true
			route.PauseStartedAt = now
			route.PendingIndex = 1 - route.Index
			return cp.Vector{}
		}
		route.Toggle()
		target = route.Target()
	}

	corrected := ReachablePoint(pos, target, s.obstacles, agent.Planner)
	return directionTo(pos, corrected).Mult(agent.MoveSpeed)
}

// pushVertical keeps the chase goal at least sep away from the agent's own
// height. Screen coordinates grow downward, so a level target is pushed below
// by default.
func pushVertical(goalY, selfY, sep float64) float64 {
	if sep <= 0 {
		return goalY
	}
	dy := goalY - selfY
	if math.Abs(dy) >= sep {
		return goalY
	}
	if dy >= 0 {
		return selfY + sep
	}
	return selfY - sep
}
