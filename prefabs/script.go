package prefabs

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ApplyDifficulty runs the named tengo script over an agent spec, letting it
// rescale combat stats for the chosen difficulty. The script sees the stats as
// plain globals and writes them back; it runs once at spawn and never during
// the simulation.
func ApplyDifficulty(spec *AgentSpec, scriptName string, difficulty float64) error {
	if spec == nil || scriptName == "" {
		return nil
	}
	src, err := LoadScript(scriptName)
	if err != nil {
		return fmt.Errorf("prefabs: load script %s: %w", scriptName, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	vars := map[string]any{
		"difficulty": difficulty,
		"kind":       spec.Name,
		"health":     spec.Health,
		"move_speed": spec.MoveSpeed,
		"damage":     meleeDamage(spec),
		"vision":     spec.VisionRadius,
		"memory":     spec.MemoryDuration,
	}
	for name, v := range vars {
		if err := script.Add(name, v); err != nil {
			return fmt.Errorf("prefabs: script %s: add %s: %w", scriptName, name, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	compiled, err := script.RunContext(ctx)
	if err != nil {
		return fmt.Errorf("prefabs: run script %s: %w", scriptName, err)
	}

	spec.Health = positiveOr(compiled.Get("health").Float(), spec.Health)
	spec.MoveSpeed = positiveOr(compiled.Get("move_speed").Float(), spec.MoveSpeed)
	spec.VisionRadius = positiveOr(compiled.Get("vision").Float(), spec.VisionRadius)
	spec.MemoryDuration = positiveOr(compiled.Get("memory").Float(), spec.MemoryDuration)
	if spec.Melee != nil {
		spec.Melee.Damage = positiveOr(compiled.Get("damage").Float(), spec.Melee.Damage)
	}
	return nil
}

func meleeDamage(spec *AgentSpec) float64 {
	if spec.Melee == nil {
		return 0
	}
	return spec.Melee.Damage
}

// positiveOr guards against scripts zeroing a stat by mistake.
func positiveOr(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}
