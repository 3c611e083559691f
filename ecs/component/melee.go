package component

// MeleePhase identifies a step of the trigger-driven attack timer.
type MeleePhase string

const (
	MeleeIdle     MeleePhase = "idle"
	MeleeWindup   MeleePhase = "windup"
	MeleeStrike   MeleePhase = "strike" // between hit frame and end frame
	MeleeCooldown MeleePhase = "cooldown"
)

// MeleeAttack is the windup/attack/cooldown timer machine shared by regular
// enemies. Windup length is animation-driven: the attack lands on the
// "hit_frame" signal and the swing ends on "end_frame".
type MeleeAttack struct {
	Damage float64

	// Trigger area, centered on the transform plus offset. The X offset is
	// mirrored when the sprite faces left so the area tracks facing.
	TriggerOffsetX, TriggerOffsetY float64
	TriggerWidth, TriggerHeight    float64

	Cooldown          float64
	CancelWhenEmpty   bool
	RepeatWhileInside bool

	Phase          MeleePhase
	PhaseEnteredAt float64
	// CooldownStartedAt gates the next windup; initialized far in the past
	// so the first attack is never delayed.
	CooldownStartedAt float64
}

// NewMeleeAttack initializes the runtime fields of a configured attack.
func NewMeleeAttack(m MeleeAttack) MeleeAttack {
	m.Phase = MeleeIdle
	m.PhaseEnteredAt = 0
	m.CooldownStartedAt = NeverSeen
	if m.Cooldown < 0 {
		m.Cooldown = 0
	}
	return m
}

// CooldownElapsed reports whether enough time passed since the last swing.
func (m *MeleeAttack) CooldownElapsed(now float64) bool {
	return m != nil && now-m.CooldownStartedAt >= m.Cooldown
}

var MeleeAttackComponent = NewComponent[MeleeAttack]()
