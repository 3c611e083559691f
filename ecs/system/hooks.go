package system

// Hooks are the external collaborators the decision core calls into. They are
// injected at construction; nil funcs are simply skipped, so tests and the
// headless path run without any wiring.
type Hooks struct {
	AudioCue        func(name string)
	AnimationSignal func(name string)
	SceneTransition func(name string)
	BossDefeated    func()
	Achievement     func(name string)
}

func (h Hooks) audio(name string) {
	if h.AudioCue != nil {
		h.AudioCue(name)
	}
}

func (h Hooks) animationSignal(name string) {
	if h.AnimationSignal != nil {
		h.AnimationSignal(name)
	}
}

func (h Hooks) sceneTransition(name string) {
	if h.SceneTransition != nil {
		h.SceneTransition(name)
	}
}

func (h Hooks) bossDefeated() {
	if h.BossDefeated != nil {
		h.BossDefeated()
	}
}

func (h Hooks) achievement(name string) {
	if h.Achievement != nil {
		h.Achievement(name)
	}
}
