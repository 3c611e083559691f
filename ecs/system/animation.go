package system

import (
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs"
	"github.com/DaKingzz/Echoes-Of-The-Gods-The-Mediator-s-Journey/ecs/component"
)

// SignalHandler receives animation cue signals for an entity.
type SignalHandler interface {
	HandleAnimationSignal(w *ecs.World, e ecs.Entity, signal string)
}

// AnimationSystem fires due cues of the current clip and fans them out to the
// registered handlers and to the external animation hook.
type AnimationSystem struct {
	hooks    Hooks
	handlers []SignalHandler
}

func NewAnimationSystem(hooks Hooks, handlers ...SignalHandler) *AnimationSystem {
	return &AnimationSystem{hooks: hooks, handlers: handlers}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Now()
	ecs.ForEach(w, component.AnimationComponent, func(e ecs.Entity, anim *component.Animation) {
		for _, cue := range anim.PendingCues(now) {
			s.hooks.animationSignal(cue.Signal)
			for _, h := range s.handlers {
				h.HandleAnimationSignal(w, e, cue.Signal)
			}
		}
	})
}
