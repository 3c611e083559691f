package component

import "testing"

func TestNewMeleeAttackFirstSwingNotDelayed(t *testing.T) {
	m := NewMeleeAttack(MeleeAttack{Cooldown: 5})
	if m.Phase != MeleeIdle {
		t.Fatalf("phase = %v, want idle", m.Phase)
	}
	if !m.CooldownElapsed(0) {
		t.Fatal("fresh attack should be off cooldown at t=0")
	}
}

func TestCooldownElapsed(t *testing.T) {
	m := NewMeleeAttack(MeleeAttack{Cooldown: 1})
	m.CooldownStartedAt = 10

	cases := []struct {
		name string
		now  float64
		want bool
	}{
		{"just_started", 10, false},
		{"mid_cooldown", 10.5, false},
		{"exactly_done", 11, true},
		{"long_after", 20, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := m.CooldownElapsed(c.now); got != c.want {
				t.Fatalf("CooldownElapsed(%v) = %v, want %v", c.now, got, c.want)
			}
		})
	}
}

func TestAnimationCues(t *testing.T) {
	anim := Animation{Clips: map[string][]Cue{
		"attack": {
			{At: 0.25, Signal: "hit_frame"},
			{At: 0.45, Signal: "end_frame"},
		},
	}}

	anim.Play("attack", 10)

	if cues := anim.PendingCues(10.1); len(cues) != 0 {
		t.Fatalf("cues fired early: %v", cues)
	}
	cues := anim.PendingCues(10.3)
	if len(cues) != 1 || cues[0].Signal != "hit_frame" {
		t.Fatalf("at hit frame got %v", cues)
	}
	cues = anim.PendingCues(11)
	if len(cues) != 1 || cues[0].Signal != "end_frame" {
		t.Fatalf("at end frame got %v", cues)
	}
	if cues := anim.PendingCues(12); len(cues) != 0 {
		t.Fatalf("cues fired twice: %v", cues)
	}

	// Replaying rewinds the cursor.
	anim.Play("attack", 20)
	if cues := anim.PendingCues(21); len(cues) != 2 {
		t.Fatalf("replay should fire both cues, got %v", cues)
	}
}
