package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// ReachablePoint converts a raw goal into a locally reachable point.
//
// If the straight line from origin to the goal is clear (or the two points
// nearly coincide) the goal is returned unchanged. Otherwise candidates are
// sampled in concentric rings around the goal, innermost ring first and in
// angular order within a ring; the first candidate with a clear line from the
// origin wins. Outer rings are displaced further upward so they try harder to
// escape vertically, e.g. from under a platform lip. The search is greedy and
// has no global map knowledge; it can fail in concave pockets, in which case
// the goal is nudged up by the full bias as a last resort.
func ReachablePoint(origin, rawGoal cp.Vector, q ecs.ObstacleQuery, cfg component.PlannerConfig) cp.Vector {
	cfg = cfg.Sanitized()

	if origin.Distance(rawGoal) <= cfg.Epsilon || lineClear(q, origin, rawGoal) {
		return rawGoal
	}

	for ring := 1; ring <= cfg.Rings; ring++ {
		frac := float64(ring) / float64(cfg.Rings)
		radius := cfg.MaxRadius * frac
		lift := cfg.UpBias * frac
		for i := 0; i < cfg.SamplesPerRing; i++ {
			angle := 2 * math.Pi * float64(i) / float64(cfg.SamplesPerRing)
			candidate := cp.Vector{
				X: rawGoal.X + math.Cos(angle)*radius,
				Y: rawGoal.Y + math.Sin(angle)*radius - lift,
			}
			if lineClear(q, origin, candidate) {
				return candidate
			}
		}
	}

	return cp.Vector{X: rawGoal.X, Y: rawGoal.Y - cfg.UpBias}
}
