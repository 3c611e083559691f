package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/common"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// AvoidObstacles blends a desired velocity away from nearby obstacles.
//
// Rays are fanned symmetrically across the configured spread around the
// desired direction; every hit accumulates the surface normal. The averaged
// normal is blended into the direction, scaled by the avoidance strength.
// Agents that can ascend get an extra upward bias to climb out of a pinch;
// ground-locked agents have the vertical component clamped to a small band
// instead. The output always keeps the input speed: only direction changes.
func AvoidObstacles(pos, desired cp.Vector, q ecs.ObstacleQuery, cfg component.SteeringConfig, canAscend bool) cp.Vector {
	cfg = cfg.Sanitized()

	speed := desired.Length()
	if speed == 0 || q == nil || cfg.RayDistance <= 0 {
		return desired
	}
	dir := desired.Mult(1 / speed)

	spread := cfg.SpreadDegrees * math.Pi / 180
	var accum cp.Vector
	hits := 0
	for i := 0; i < cfg.RayCount; i++ {
		offset := 0.0
		if cfg.RayCount > 1 {
			offset = -spread/2 + spread*float64(i)/float64(cfg.RayCount-1)
		}
		rayDir := dir.Rotate(cp.ForAngle(offset))
		end := pos.Add(rayDir.Mult(cfg.RayDistance))
		if hit, ok := q.Raycast(pos, end); ok {
			accum = accum.Add(hit.Normal)
			hits++
		}
	}
	if hits == 0 {
		return desired
	}

	avg := accum.Mult(1 / float64(hits))
	if avg.Length() < 1e-9 {
		// opposing normals cancelled out
		return desired
	}

	blended := dir.Add(avg.Mult(cfg.AvoidanceStrength))
	if canAscend {
		blended.Y -= cfg.AscendBias
	} else {
		blended.Y = common.Clamp(blended.Y, -cfg.GroundVerticalBand, cfg.GroundVerticalBand)
	}
	if blended.Length() < 1e-9 {
		return desired
	}
	return blended.Normalize().Mult(speed)
}
