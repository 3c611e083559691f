package component

// BossState enumerates the combat machine of the melee boss.
type BossState string

const (
	BossIdle       BossState = "idle"
	BossApproach   BossState = "approaching"
	BossWindup     BossState = "attack_windup"
	BossAttacking  BossState = "attacking"
	BossRecovering BossState = "recovering"
	BossRetreating BossState = "retreating"
	BossDashing    BossState = "dashing"
	BossDead       BossState = "dead"
)

// Boss is the immutable combat configuration, validated at construction.
// The boss always knows the player's position; it has no perception step.
type Boss struct {
	MoveSpeed float64

	// Damage area in front of the boss, mirrored by facing.
	AttackDamage     float64
	AttackReach      float64 // horizontal extent of the damage area
	AttackAreaHeight float64

	IdleDelay       float64
	WindupDuration  float64
	AttackDuration  float64
	RecoverDuration float64
	// Next attack becomes ready a random time in [Min, Max] after a swing.
	AttackCooldownMin float64
	AttackCooldownMax float64

	EnrageThreshold       float64 // health fraction
	EnrageSpeedMultiplier float64
	EnrageTempoDivisor    float64 // divides windup/recovery durations

	RetreatDamageThreshold float64
	DamageTrackingWindow   float64
	RetreatCooldown        float64
	RetreatDuration        float64
	MinDashes, MaxDashes   int
	DashSpeed              float64
	DashDuration           float64
	RedashInterval         float64

	// Arena edge markers; the boss never dashes past them.
	EdgeLeftX, EdgeRightX float64
	EdgeBuffer            float64
}

// DamageLogEntry records one hit for the sliding-window retreat check.
type DamageLogEntry struct {
	At     float64
	Amount float64
}

// BossRuntime is the mutable state of the combat machine. Enraged is
// monotonic: once true it is never reset.
type BossRuntime struct {
	State          BossState
	StateEnteredAt float64

	DamageLog []DamageLogEntry

	RetreatStartedAt       float64
	RetreatDashesRemaining int
	LastRetreatAt          float64
	LastDashAt             float64
	DashDirX               float64 // -1 or +1, away from the player

	Enraged bool

	NextAttackReadyAt float64
	DamageWindowOpen  bool

	Defeated bool // defeat hook fired
}

// NewBossRuntime returns the initial runtime state.
func NewBossRuntime(now float64) BossRuntime {
	return BossRuntime{
		State:          BossIdle,
		StateEnteredAt: now,
		LastRetreatAt:  NeverSeen,
		LastDashAt:     NeverSeen,
	}
}

// RecordDamage appends a hit to the damage log.
func (rt *BossRuntime) RecordDamage(now, amount float64) {
	if rt == nil || amount <= 0 {
		return
	}
	rt.DamageLog = append(rt.DamageLog, DamageLogEntry{At: now, Amount: amount})
}

// PruneDamageLog drops entries older than the tracking window and returns the
// remaining sum. Called before every retreat-eligibility check.
func (rt *BossRuntime) PruneDamageLog(now, window float64) float64 {
	if rt == nil {
		return 0
	}
	kept := rt.DamageLog[:0]
	sum := 0.0
	for _, entry := range rt.DamageLog {
		if now-entry.At > window {
			continue
		}
		kept = append(kept, entry)
		sum += entry.Amount
	}
	rt.DamageLog = kept
	return sum
}

var BossComponent = NewComponent[Boss]()
var BossRuntimeComponent = NewComponent[BossRuntime]()
