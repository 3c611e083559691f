package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MoveTowards advances current toward target by at most maxDelta, never
// overshooting.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// MoveTowardsVec advances current toward target by at most maxDelta in
// length. This is the bounded-acceleration ramp used for velocity smoothing.
func MoveTowardsVec(current, target cp.Vector, maxDelta float64) cp.Vector {
	diff := target.Sub(current)
	dist := diff.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(diff.Mult(maxDelta / dist))
}

func Approximately(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}
