package component

// PlannerConfig tunes the ring-sampled local path planner.
type PlannerConfig struct {
	Rings          int
	SamplesPerRing int
	MaxRadius      float64
	UpBias         float64
	Epsilon        float64
}

// Sanitized clamps count-like parameters to a minimum of 1 and distances to
// non-negative values, so a zeroed config degrades instead of failing.
func (c PlannerConfig) Sanitized() PlannerConfig {
	if c.Rings < 1 {
		c.Rings = 1
	}
	if c.SamplesPerRing < 1 {
		c.SamplesPerRing = 1
	}
	if c.MaxRadius < 0 {
		c.MaxRadius = 0
	}
	if c.UpBias < 0 {
		c.UpBias = 0
	}
	if c.Epsilon <= 0 {
		c.Epsilon = 0.5
	}
	return c
}

// SteeringConfig tunes the multi-ray obstacle avoidance blend.
type SteeringConfig struct {
	RayCount          int
	SpreadDegrees     float64
	RayDistance       float64
	AvoidanceStrength float64
	AscendBias        float64
	// GroundVerticalBand clamps the vertical component of the blended
	// direction for ground-locked agents so they never try to climb walls.
	GroundVerticalBand float64
}

func (c SteeringConfig) Sanitized() SteeringConfig {
	if c.RayCount < 1 {
		c.RayCount = 1
	}
	if c.SpreadDegrees < 0 {
		c.SpreadDegrees = 0
	}
	if c.RayDistance < 0 {
		c.RayDistance = 0
	}
	if c.AvoidanceStrength < 0 {
		c.AvoidanceStrength = 0
	}
	if c.AscendBias < 0 {
		c.AscendBias = 0
	}
	if c.GroundVerticalBand < 0 {
		c.GroundVerticalBand = 0
	}
	return c
}

// Agent is the immutable movement/decision configuration of a patrol or
// chase enemy, validated once at construction.
type Agent struct {
	MoveSpeed            float64
	Acceleration         float64 // max velocity change per second
	ChaseSpeedMultiplier float64
	VisionRadius         float64
	VisionBonus          float64
	MemoryDuration       float64
	// VerticalSeparation pushes the chase goal away from the agent's own
	// height so flyers don't hover exactly level with the target.
	VerticalSeparation float64
	ArrivalThreshold   float64

	Planner  PlannerConfig
	Steering SteeringConfig
	Model    MovementModel
}

var AgentComponent = NewComponent[Agent]()
