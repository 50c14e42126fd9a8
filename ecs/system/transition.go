package system

import (
	"time"

	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// TransitionSystem advances the outcome fade from the clock. The restart
// itself is scheduled by the outcome handler, not here.
type TransitionSystem struct {
	now func() time.Duration
}

func NewTransitionSystem(now func() time.Duration) *TransitionSystem {
	return &TransitionSystem{now: now}
}

func (ts *TransitionSystem) Update(w *ecs.World) {
	if w == nil || ts.now == nil {
		return
	}
	now := ts.now()
	ecs.ForEach(w, component.TransitionRuntimeComponent.Kind(), func(_ ecs.Entity, tr *component.TransitionRuntime) {
		if tr.Duration <= 0 {
			tr.Alpha = 1
			return
		}
		tr.Alpha = clamp(float64(now-tr.Started)/float64(tr.Duration), 0, 1)
	})
}
