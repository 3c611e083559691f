package system

import (
	"math/rand"
	"testing"

	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/entity"
)

func bossConfig() component.Boss {
	return component.Boss{
		MoveSpeed:        90,
		AttackDamage:     14,
		AttackReach:      72,
		AttackAreaHeight: 80,

		IdleDelay:       0.5,
		WindupDuration:  0.6,
		AttackDuration:  0.5,
		RecoverDuration: 0.8,

		EnrageThreshold:       0.3,
		EnrageSpeedMultiplier: 1.5,
		EnrageTempoDivisor:    1.6,

		RetreatDamageThreshold: 40,
		DamageTrackingWindow:   6,
		RetreatCooldown:        10,
		RetreatDuration:        2.5,
		MinDashes:              2,
		MaxDashes:              2,
		DashSpeed:              420,
		DashDuration:           0.25,
		RedashInterval:         0.6,

		EdgeLeftX:  0,
		EdgeRightX: 1000,
		EdgeBuffer: 24,
	}
}

func newBossWorld(t *testing.T, cfg component.Boss, bossX, playerX float64) (*ecs.World, ecs.Entity, ecs.Entity, *BossSystem) {
	t.Helper()
	w := ecs.NewWorld()
	player := newPlayerEntity(w, playerX, 300)
	boss := entity.NewBoss(w, entity.BossParams{
		X: bossX, Y: 300,
		Width: 56, Height: 72,
		Health: 100,
		Config: cfg,
	})
	sys := NewBossSystem(Hooks{}, rand.New(rand.NewSource(1)))
	return w, boss, player, sys
}

func bossRuntime(t *testing.T, w *ecs.World, boss ecs.Entity) *component.BossRuntime {
	t.Helper()
	rt, ok := ecs.Get(w, boss, component.BossRuntimeComponent)
	if !ok {
		t.Fatal("boss runtime missing")
	}
	return rt
}

func stepFor(w *ecs.World, seconds float64, systems ...ecs.System) {
	ticks := int(seconds*60) + 1
	for i := 0; i < ticks; i++ {
		step(w, systems...)
	}
}

func TestBossIdleDelayThenApproach(t *testing.T) {
	w, boss, _, sys := newBossWorld(t, bossConfig(), 500, 100)
	rt := bossRuntime(t, w, boss)

	step(w, sys)
	if rt.State != component.BossIdle {
		t.Fatalf("state = %v, want idle during the delay", rt.State)
	}

	stepFor(w, 0.5, sys)
	if rt.State != component.BossApproach {
		t.Fatalf("state = %v, want approaching after idle delay", rt.State)
	}
	if v := velocityOf(w, boss); v.X >= 0 {
		t.Fatalf("boss should walk toward the player on the left, got %v", v)
	}
}

func TestBossAttackCycle(t *testing.T) {
	// Player parked inside the attack area to the boss's right.
	w, boss, _, sys := newBossWorld(t, bossConfig(), 500, 530)
	rt := bossRuntime(t, w, boss)

	stepFor(w, 0.6, sys)
	if rt.State != component.BossWindup {
		t.Fatalf("state = %v, want windup with player in reach", rt.State)
	}
	if v := velocityOf(w, boss); v.X != 0 {
		t.Fatalf("boss must stand still in windup, got %v", v)
	}

	stepFor(w, 0.65, sys)
	if rt.State != component.BossAttacking {
		t.Fatalf("state = %v, want attacking after windup", rt.State)
	}

	stepFor(w, 0.55, sys)
	if rt.State != component.BossRecovering {
		t.Fatalf("state = %v, want recovering after the swing", rt.State)
	}

	stepFor(w, 0.85, sys)
	if rt.State != component.BossWindup && rt.State != component.BossApproach {
		t.Fatalf("state = %v, want back in the loop after recovery", rt.State)
	}
}

func TestBossDamageWindowHitsOncePerSwing(t *testing.T) {
	w, boss, player, sys := newBossWorld(t, bossConfig(), 500, 530)
	rt := bossRuntime(t, w, boss)

	stepFor(w, 1.3, sys)
	if rt.State != component.BossAttacking {
		t.Fatalf("state = %v, want attacking", rt.State)
	}

	// Window closed: no contact damage yet.
	hp, _ := ecs.Get(w, player, component.HealthComponent)
	if hp.Current != 100 {
		t.Fatalf("health = %v before damage_on, want 100", hp.Current)
	}

	sys.HandleAnimationSignal(w, boss, SignalDamageOn)
	step(w, sys)
	step(w, sys)
	step(w, sys)

	if hp.Current != 86 {
		t.Fatalf("health = %v, want exactly one hit (86)", hp.Current)
	}

	sys.HandleAnimationSignal(w, boss, SignalDamageOff)
	if rt.DamageWindowOpen {
		t.Fatal("damage window should be closed")
	}
}

func TestBossRetreatGating(t *testing.T) {
	// Player far to the left so the boss stays in approach.
	w, boss, _, sys := newBossWorld(t, bossConfig(), 500, 100)
	rt := bossRuntime(t, w, boss)
	hp, _ := ecs.Get(w, boss, component.HealthComponent)

	stepFor(w, 0.6, sys)
	if rt.State != component.BossApproach {
		t.Fatalf("state = %v, want approaching", rt.State)
	}

	// Three bursts of 10 stay under the 40 threshold.
	for i := 0; i < 3; i++ {
		hp.TakeDamage(10)
	}
	step(w, sys)
	if rt.State != component.BossApproach {
		t.Fatalf("state = %v, 30 damage must not trigger a retreat", rt.State)
	}

	// The fourth burst crosses the threshold.
	hp.TakeDamage(10)
	step(w, sys)
	if rt.State != component.BossDashing && rt.State != component.BossRetreating {
		t.Fatalf("state = %v, want retreat after 40 damage", rt.State)
	}
	if rt.LastRetreatAt == component.NeverSeen {
		t.Fatal("retreat entry must stamp the cooldown")
	}
	if rt.DashDirX <= 0 {
		t.Fatalf("dash direction = %v, want away from the player (right)", rt.DashDirX)
	}

	// Force the machine back to approach: another 40 within the cooldown
	// must be ignored.
	rt.State = component.BossApproach
	rt.StateEnteredAt = w.Now()
	hp.TakeDamage(40)
	step(w, sys)
	if rt.State != component.BossApproach {
		t.Fatalf("state = %v, retreat cooldown not honored", rt.State)
	}
}

func TestBossRetreatOldDamageExpires(t *testing.T) {
	w, boss, _, sys := newBossWorld(t, bossConfig(), 500, 100)
	rt := bossRuntime(t, w, boss)
	hp, _ := ecs.Get(w, boss, component.HealthComponent)

	stepFor(w, 0.6, sys)
	hp.TakeDamage(30)

	// Let the tracking window (6s) swallow the old damage.
	stepFor(w, 7, sys)
	hp.TakeDamage(10)
	step(w, sys)

	if rt.State == component.BossRetreating || rt.State == component.BossDashing {
		t.Fatal("expired damage should not count toward the retreat threshold")
	}
}

func TestBossDashEdgeAbort(t *testing.T) {
	w, boss, _, sys := newBossWorld(t, bossConfig(), 500, 100)
	rt := bossRuntime(t, w, boss)
	hp, _ := ecs.Get(w, boss, component.HealthComponent)

	stepFor(w, 0.6, sys)
	hp.TakeDamage(40)
	step(w, sys)
	if rt.State != component.BossDashing {
		t.Fatalf("state = %v, want dashing", rt.State)
	}

	// Teleport the boss onto the right edge marker.
	bt, _ := ecs.Get(w, boss, component.TransformComponent)
	bt.X = 990
	step(w, sys)
	if rt.State != component.BossApproach {
		t.Fatalf("state = %v, dash must abort at the arena edge", rt.State)
	}
}

func TestBossEnrage(t *testing.T) {
	w, boss, _, sys := newBossWorld(t, bossConfig(), 500, 100)
	rt := bossRuntime(t, w, boss)
	hp, _ := ecs.Get(w, boss, component.HealthComponent)

	hp.TakeDamage(29) // 71/100, above the 0.3 threshold
	step(w, sys)
	if rt.Enraged {
		t.Fatal("enraged above the threshold")
	}

	hp.TakeDamage(42) // 29/100, below
	step(w, sys)
	if !rt.Enraged {
		t.Fatal("should enrage at 29% health")
	}

	// Enrage is monotonic.
	for i := 0; i < 10; i++ {
		step(w, sys)
	}
	if !rt.Enraged {
		t.Fatal("enrage must never reset")
	}
}

func TestBossEnrageQuickensTempo(t *testing.T) {
	cfg := bossConfig()
	cfg.RetreatDamageThreshold = 0 // keep the machine out of retreats here
	w, boss, _, sys := newBossWorld(t, cfg, 500, 530)
	rt := bossRuntime(t, w, boss)
	hp, _ := ecs.Get(w, boss, component.HealthComponent)
	hp.TakeDamage(75) // enrage on the next update

	stepFor(w, 0.6, sys)
	if rt.State != component.BossWindup {
		t.Fatalf("state = %v, want windup", rt.State)
	}

	// Enraged windup is 0.6/1.6 = 0.375s; the normal 0.6s is not needed.
	stepFor(w, 0.4, sys)
	if rt.State != component.BossAttacking {
		t.Fatalf("state = %v, enraged windup should already be over", rt.State)
	}
}

func TestBossDeath(t *testing.T) {
	defeats := 0
	achievements := 0
	hooks := Hooks{
		BossDefeated: func() { defeats++ },
		Achievement:  func(string) { achievements++ },
	}

	w := ecs.NewWorld()
	newPlayerEntity(w, 100, 300)
	boss := entity.NewBoss(w, entity.BossParams{
		X: 500, Y: 300, Health: 100, Config: bossConfig(),
	})
	sys := NewBossSystem(hooks, rand.New(rand.NewSource(1)))
	rt := bossRuntime(t, w, boss)

	hp, _ := ecs.Get(w, boss, component.HealthComponent)
	hp.TakeDamage(100)

	step(w, sys)
	if rt.State != component.BossDead {
		t.Fatalf("state = %v, want dead", rt.State)
	}
	if v := velocityOf(w, boss); v.X != 0 || v.Y != 0 {
		t.Fatalf("dead boss moving: %v", v)
	}

	// The defeat hooks fire exactly once no matter how long the corpse sits.
	for i := 0; i < 10; i++ {
		step(w, sys)
	}
	if defeats != 1 || achievements != 1 {
		t.Fatalf("defeat hooks fired %d/%d times, want 1/1", defeats, achievements)
	}

	events := 0
	for _, evt := range w.Events().Drain() {
		if evt.Type == ecs.EventBossDefeated {
			events++
		}
	}
	if events != 1 {
		t.Fatalf("defeat event fired %d times, want 1", events)
	}
}
