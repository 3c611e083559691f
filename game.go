package main

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/system"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 520

	tickDt = 1.0 / 60
)

// Game is the ebiten shell around the simulation: one fixed 60 Hz tick per
// Update, prefab hot reload, and event-to-log plumbing.
type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *system.Renderer
	watcher   *prefabs.Watcher

	levelFile  string
	scriptFile string
	difficulty float64
	debug      bool
}

func NewGame(levelFile, scriptFile string, difficulty float64, debug bool) (*Game, error) {
	g := &Game{
		levelFile:  levelFile,
		scriptFile: scriptFile,
		difficulty: difficulty,
		debug:      debug,
		renderer:   system.NewRenderer(debug),
	}
	if err := g.buildWorld(); err != nil {
		return nil, err
	}

	watcher, err := prefabs.NewWatcher(prefabs.Dir())
	if err != nil {
		log.Printf("prefabs: hot reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}
	return g, nil
}

// buildWorld constructs a fresh world from the level prefab and wires the
// system pipeline. Called at startup and again on every prefab reload.
func (g *Game) buildWorld() error {
	w := ecs.NewWorld()
	if err := prefabs.BuildLevel(w, g.levelFile, g.scriptFile, g.difficulty); err != nil {
		return err
	}

	hooks := system.Hooks{
		AudioCue:        func(name string) { log.Printf("audio: %s", name) },
		SceneTransition: func(name string) { log.Printf("scene: %s", name) },
		BossDefeated:    func() { log.Printf("boss: defeated") },
		Achievement:     func(name string) { log.Printf("achievement: %s", name) },
	}

	obstacles := w.PhysicsWorld()
	melee := system.NewMeleeSystem(hooks)
	boss := system.NewBossSystem(hooks, rand.New(rand.NewSource(time.Now().UnixNano())))

	g.world = w
	g.scheduler = ecs.NewScheduler(
		system.NewPlayerInputSystem(),
		system.NewPerceptionSystem(obstacles),
		system.NewAgentSystem(obstacles),
		melee,
		boss,
		system.NewAnimationSystem(hooks, melee, boss),
		system.NewMovementSystem(),
	)
	return nil
}

func (g *Game) Update() error {
	g.drainWatcher()

	g.world.Advance(tickDt)
	g.scheduler.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventBossState:
			log.Printf("boss: %v -> %v", evt.Entity, evt.Data)
		case ecs.EventAgentDied:
			log.Printf("ai: %v died", evt.Entity)
		case ecs.EventBossDefeated:
			log.Printf("boss: %v down", evt.Entity)
		}
	}
	return nil
}

// drainWatcher rebuilds the world when a prefab or script file changed on
// disk. A failed rebuild keeps the current world running.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name := <-g.watcher.Events:
			log.Printf("prefabs: changed %s", name)
			changed = true
		case err := <-g.watcher.Errors:
			log.Printf("prefabs: watch error: %v", err)
		default:
			if changed {
				if err := g.buildWorld(); err != nil {
					log.Printf("prefabs: reload failed: %v", err)
				} else {
					log.Printf("prefabs: reloaded %s", g.levelFile)
				}
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 26, B: 34, A: 255})
	g.renderer.Draw(screen, g.world)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
