package component

// Cue is a named signal fired a fixed time after a clip starts. It stands in
// for the animation collaborator: the combat systems only depend on the
// "hit_frame"/"end_frame" (and boss "damage_on"/"damage_off") signals
// arriving at the right moments.
type Cue struct {
	At     float64
	Signal string
}

// Animation tracks the current clip and which of its cues already fired.
type Animation struct {
	Clips map[string][]Cue

	Current   string
	StartedAt float64
	Fired     int
}

// Play switches to a clip and rewinds its cue cursor. Re-playing the current
// clip restarts it.
func (a *Animation) Play(name string, now float64) {
	if a == nil {
		return
	}
	a.Current = name
	a.StartedAt = now
	a.Fired = 0
}

// PendingCues returns the cues of the current clip that are due at now and
// advances the cursor past them.
func (a *Animation) PendingCues(now float64) []Cue {
	if a == nil || a.Current == "" {
		return nil
	}
	cues := a.Clips[a.Current]
	if a.Fired >= len(cues) {
		return nil
	}
	elapsed := now - a.StartedAt
	var due []Cue
	for a.Fired < len(cues) && cues[a.Fired].At <= elapsed {
		due = append(due, cues[a.Fired])
		a.Fired++
	}
	return due
}

var AnimationComponent = NewComponent[Animation]()
