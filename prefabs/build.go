package prefabs

import (
	"fmt"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/entity"
)

// DefaultGravity is used when a level omits gravity. Screen coordinates grow
// downward, so gravity is positive.
const DefaultGravity = 900.0

// BuildLevel loads a level file, creates its physics world, and spawns the
// player, every enemy, and the boss. The difficulty script, when named, is
// applied to each agent spec before spawning.
func BuildLevel(w *ecs.World, levelFile, difficultyScript string, difficulty float64) error {
	level, err := LoadSpec[LevelSpec](levelFile)
	if err != nil {
		return err
	}
	if err := level.Validate(); err != nil {
		return err
	}

	gravity := level.Gravity
	if gravity == 0 {
		gravity = DefaultGravity
	}
	rects := make([]ecs.StaticRect, 0, len(level.Rects))
	for _, r := range level.Rects {
		rects = append(rects, ecs.StaticRect{X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(gravity, rects))

	entity.NewPlayer(w, level.Player.X, level.Player.Y, level.Player.Health)

	for _, spawn := range level.Spawns {
		if err := spawnAgent(w, spawn, difficultyScript, difficulty); err != nil {
			return err
		}
	}

	if level.Boss != nil {
		boss, err := LoadSpec[BossSpec](level.Boss.Prefab)
		if err != nil {
			return err
		}
		if err := boss.Validate(); err != nil {
			return err
		}
		entity.NewBoss(w, boss.Params(level.Boss.X, level.Boss.Y,
			level.Arena.LeftX, level.Arena.RightX, level.Arena.EdgeBuffer))
	}
	return nil
}

func spawnAgent(w *ecs.World, spawn SpawnSpec, difficultyScript string, difficulty float64) error {
	spec, err := LoadSpec[AgentSpec](spawn.Prefab)
	if err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}
	if difficultyScript != "" {
		if err := ApplyDifficulty(&spec, difficultyScript, difficulty); err != nil {
			return fmt.Errorf("prefabs: scale %s: %w", spawn.Prefab, err)
		}
	}
	entity.NewAgent(w, spec.Params(spawn.X, spawn.Y))
	return nil
}
