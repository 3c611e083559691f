package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/entity"
)

// LoadSpec reads and unmarshals one prefab file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// AgentSpec is the authoring format of a regular enemy.
type AgentSpec struct {
	Name     string     `yaml:"name"`
	Movement string     `yaml:"movement"` // "ground" or "flying"
	Width    float64    `yaml:"width"`
	Height   float64    `yaml:"height"`
	Color    *YAMLColor `yaml:"color"`
	Health   float64    `yaml:"health"`

	MoveSpeed            float64 `yaml:"move_speed"`
	Acceleration         float64 `yaml:"acceleration"`
	ChaseSpeedMultiplier float64 `yaml:"chase_speed_multiplier"`
	VisionRadius         float64 `yaml:"vision_radius"`
	VisionBonus          float64 `yaml:"vision_bonus"`
	MemoryDuration       float64 `yaml:"memory_duration"`
	VerticalSeparation   float64 `yaml:"vertical_separation"`
	ArrivalThreshold     float64 `yaml:"arrival_threshold"`

	Planner  PlannerSpec  `yaml:"planner"`
	Steering SteeringSpec `yaml:"steering"`
	Patrol   *PatrolSpec  `yaml:"patrol"`
	Melee    *MeleeSpec   `yaml:"melee"`

	Clips map[string][]CueSpec `yaml:"clips"`
}

type PlannerSpec struct {
	Rings          int     `yaml:"rings"`
	SamplesPerRing int     `yaml:"samples_per_ring"`
	MaxRadius      float64 `yaml:"max_radius"`
	UpBias         float64 `yaml:"up_bias"`
	Epsilon        float64 `yaml:"epsilon"`
}

type SteeringSpec struct {
	RayCount           int     `yaml:"ray_count"`
	SpreadDegrees      float64 `yaml:"spread_degrees"`
	RayDistance        float64 `yaml:"ray_distance"`
	AvoidanceStrength  float64 `yaml:"avoidance_strength"`
	AscendBias         float64 `yaml:"ascend_bias"`
	GroundVerticalBand float64 `yaml:"ground_vertical_band"`
}

// PatrolSpec describes the second waypoint relative to the spawn point.
type PatrolSpec struct {
	OffsetX      float64 `yaml:"offset_x"`
	OffsetY      float64 `yaml:"offset_y"`
	PauseSeconds float64 `yaml:"pause_seconds"`
}

type MeleeSpec struct {
	Damage            float64 `yaml:"damage"`
	OffsetX           float64 `yaml:"offset_x"`
	OffsetY           float64 `yaml:"offset_y"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Cooldown          float64 `yaml:"cooldown"`
	CancelWhenEmpty   bool    `yaml:"cancel_when_empty"`
	RepeatWhileInside bool    `yaml:"repeat_while_inside"`
}

type CueSpec struct {
	At     float64 `yaml:"at"`
	Signal string  `yaml:"signal"`
}

// Validate rejects specs that cannot produce a working enemy. Tuning values
// are left to the component sanitizers; only structural mistakes fail here.
func (s *AgentSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("prefabs: agent spec missing name")
	}
	if s.Movement != "ground" && s.Movement != "flying" {
		return fmt.Errorf("prefabs: agent %s: movement must be ground or flying, got %q", s.Name, s.Movement)
	}
	if s.MoveSpeed <= 0 {
		return fmt.Errorf("prefabs: agent %s: move_speed must be positive", s.Name)
	}
	if s.Health <= 0 {
		return fmt.Errorf("prefabs: agent %s: health must be positive", s.Name)
	}
	if s.MemoryDuration < 0 {
		return fmt.Errorf("prefabs: agent %s: memory_duration must not be negative", s.Name)
	}
	if s.Melee != nil && s.Melee.Damage <= 0 {
		return fmt.Errorf("prefabs: agent %s: melee damage must be positive", s.Name)
	}
	return nil
}

// Params converts the spec into spawn parameters at a position.
func (s *AgentSpec) Params(x, y float64) entity.AgentParams {
	agent := component.Agent{
		MoveSpeed:            s.MoveSpeed,
		Acceleration:         s.Acceleration,
		ChaseSpeedMultiplier: s.ChaseSpeedMultiplier,
		VisionRadius:         s.VisionRadius,
		VisionBonus:          s.VisionBonus,
		MemoryDuration:       s.MemoryDuration,
		VerticalSeparation:   s.VerticalSeparation,
		ArrivalThreshold:     s.ArrivalThreshold,
		Planner: component.PlannerConfig{
			Rings:          s.Planner.Rings,
			SamplesPerRing: s.Planner.SamplesPerRing,
			MaxRadius:      s.Planner.MaxRadius,
			UpBias:         s.Planner.UpBias,
			Epsilon:        s.Planner.Epsilon,
		}.Sanitized(),
		Steering: component.SteeringConfig{
			RayCount:           s.Steering.RayCount,
			SpreadDegrees:      s.Steering.SpreadDegrees,
			RayDistance:        s.Steering.RayDistance,
			AvoidanceStrength:  s.Steering.AvoidanceStrength,
			AscendBias:         s.Steering.AscendBias,
			GroundVerticalBand: s.Steering.GroundVerticalBand,
		}.Sanitized(),
	}

	p := entity.AgentParams{
		X:      x,
		Y:      y,
		Flying: s.Movement == "flying",
		Width:  s.Width,
		Height: s.Height,
		Color:  s.Color.Or(color.RGBA{R: 200, G: 90, B: 90, A: 255}),
		Health: s.Health,
		Agent:  agent,
		Clips:  toClips(s.Clips),
	}

	if s.Patrol != nil {
		p.Patrol = &component.PatrolRoute{
			A:             cp.Vector{X: x, Y: y},
			B:             cp.Vector{X: x + s.Patrol.OffsetX, Y: y + s.Patrol.OffsetY},
			PauseDuration: s.Patrol.PauseSeconds,
		}
	}
	if s.Melee != nil {
		p.Melee = &component.MeleeAttack{
			Damage:            s.Melee.Damage,
			TriggerOffsetX:    s.Melee.OffsetX,
			TriggerOffsetY:    s.Melee.OffsetY,
			TriggerWidth:      s.Melee.Width,
			TriggerHeight:     s.Melee.Height,
			Cooldown:          s.Melee.Cooldown,
			CancelWhenEmpty:   s.Melee.CancelWhenEmpty,
			RepeatWhileInside: s.Melee.RepeatWhileInside,
		}
	}
	return p
}

// BossSpec is the authoring format of the boss. Arena edges are a level
// property and injected at spawn, not authored here.
type BossSpec struct {
	Name   string     `yaml:"name"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
	Health float64    `yaml:"health"`

	MoveSpeed        float64 `yaml:"move_speed"`
	AttackDamage     float64 `yaml:"attack_damage"`
	AttackReach      float64 `yaml:"attack_reach"`
	AttackAreaHeight float64 `yaml:"attack_area_height"`

	IdleDelay         float64 `yaml:"idle_delay"`
	WindupDuration    float64 `yaml:"windup_duration"`
	AttackDuration    float64 `yaml:"attack_duration"`
	RecoverDuration   float64 `yaml:"recover_duration"`
	AttackCooldownMin float64 `yaml:"attack_cooldown_min"`
	AttackCooldownMax float64 `yaml:"attack_cooldown_max"`

	EnrageThreshold       float64 `yaml:"enrage_threshold"`
	EnrageSpeedMultiplier float64 `yaml:"enrage_speed_multiplier"`
	EnrageTempoDivisor    float64 `yaml:"enrage_tempo_divisor"`

	RetreatDamageThreshold float64 `yaml:"retreat_damage_threshold"`
	DamageTrackingWindow   float64 `yaml:"damage_tracking_window"`
	RetreatCooldown        float64 `yaml:"retreat_cooldown"`
	RetreatDuration        float64 `yaml:"retreat_duration"`
	MinDashes              int     `yaml:"min_dashes"`
	MaxDashes              int     `yaml:"max_dashes"`
	DashSpeed              float64 `yaml:"dash_speed"`
	DashDuration           float64 `yaml:"dash_duration"`
	RedashInterval         float64 `yaml:"redash_interval"`

	Clips map[string][]CueSpec `yaml:"clips"`
}

func (s *BossSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("prefabs: boss spec missing name")
	}
	if s.Health <= 0 {
		return fmt.Errorf("prefabs: boss %s: health must be positive", s.Name)
	}
	if s.MoveSpeed <= 0 {
		return fmt.Errorf("prefabs: boss %s: move_speed must be positive", s.Name)
	}
	if s.AttackDamage <= 0 || s.AttackReach <= 0 {
		return fmt.Errorf("prefabs: boss %s: attack damage and reach must be positive", s.Name)
	}
	if s.EnrageThreshold < 0 || s.EnrageThreshold > 1 {
		return fmt.Errorf("prefabs: boss %s: enrage_threshold must be in [0, 1]", s.Name)
	}
	if s.MaxDashes < s.MinDashes {
		return fmt.Errorf("prefabs: boss %s: max_dashes below min_dashes", s.Name)
	}
	if s.AttackCooldownMax < s.AttackCooldownMin {
		return fmt.Errorf("prefabs: boss %s: attack_cooldown_max below attack_cooldown_min", s.Name)
	}
	return nil
}

// Params converts the spec into spawn parameters, with arena edges injected
// from the level.
func (s *BossSpec) Params(x, y, edgeLeft, edgeRight, edgeBuffer float64) entity.BossParams {
	return entity.BossParams{
		X:      x,
		Y:      y,
		Width:  s.Width,
		Height: s.Height,
		Color:  s.Color.Or(color.RGBA{R: 150, G: 60, B: 180, A: 255}),
		Health: s.Health,
		Config: component.Boss{
			MoveSpeed:              s.MoveSpeed,
			AttackDamage:           s.AttackDamage,
			AttackReach:            s.AttackReach,
			AttackAreaHeight:       s.AttackAreaHeight,
			IdleDelay:              s.IdleDelay,
			WindupDuration:         s.WindupDuration,
			AttackDuration:         s.AttackDuration,
			RecoverDuration:        s.RecoverDuration,
			AttackCooldownMin:      s.AttackCooldownMin,
			AttackCooldownMax:      s.AttackCooldownMax,
			EnrageThreshold:        s.EnrageThreshold,
			EnrageSpeedMultiplier:  s.EnrageSpeedMultiplier,
			EnrageTempoDivisor:     s.EnrageTempoDivisor,
			RetreatDamageThreshold: s.RetreatDamageThreshold,
			DamageTrackingWindow:   s.DamageTrackingWindow,
			RetreatCooldown:        s.RetreatCooldown,
			RetreatDuration:        s.RetreatDuration,
			MinDashes:              s.MinDashes,
			MaxDashes:              s.MaxDashes,
			DashSpeed:              s.DashSpeed,
			DashDuration:           s.DashDuration,
			RedashInterval:         s.RedashInterval,
			EdgeLeftX:              edgeLeft,
			EdgeRightX:             edgeRight,
			EdgeBuffer:             edgeBuffer,
		},
		Clips: toClips(s.Clips),
	}
}

// LevelSpec is the authoring format of an arena.
type LevelSpec struct {
	Name    string  `yaml:"name"`
	Gravity float64 `yaml:"gravity"`

	Player struct {
		X      float64 `yaml:"x"`
		Y      float64 `yaml:"y"`
		Health float64 `yaml:"health"`
	} `yaml:"player"`

	Arena struct {
		LeftX      float64 `yaml:"left_x"`
		RightX     float64 `yaml:"right_x"`
		EdgeBuffer float64 `yaml:"edge_buffer"`
	} `yaml:"arena"`

	Rects  []RectSpec  `yaml:"rects"`
	Spawns []SpawnSpec `yaml:"spawns"`
	Boss   *SpawnSpec  `yaml:"boss"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type SpawnSpec struct {
	Prefab string  `yaml:"prefab"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

func (s *LevelSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("prefabs: level spec missing name")
	}
	if s.Player.Health <= 0 {
		return fmt.Errorf("prefabs: level %s: player health must be positive", s.Name)
	}
	if s.Arena.RightX <= s.Arena.LeftX {
		return fmt.Errorf("prefabs: level %s: arena right_x must exceed left_x", s.Name)
	}
	for i, sp := range s.Spawns {
		if sp.Prefab == "" {
			return fmt.Errorf("prefabs: level %s: spawn %d missing prefab", s.Name, i)
		}
	}
	if s.Boss != nil && s.Boss.Prefab == "" {
		return fmt.Errorf("prefabs: level %s: boss spawn missing prefab", s.Name)
	}
	return nil
}

func toClips(specs map[string][]CueSpec) map[string][]component.Cue {
	if len(specs) == 0 {
		return nil
	}
	clips := make(map[string][]component.Cue, len(specs))
	for name, cues := range specs {
		out := make([]component.Cue, 0, len(cues))
		for _, c := range cues {
			out = append(out, component.Cue{At: c.At, Signal: c.Signal})
		}
		clips[name] = out
	}
	return clips
}

// YAMLColor parses "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	Value color.RGBA
}

// Or returns the parsed color, or fallback when the spec omitted one.
func (c *YAMLColor) Or(fallback color.RGBA) color.RGBA {
	if c == nil {
		return fallback
	}
	return c.Value
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Value = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
