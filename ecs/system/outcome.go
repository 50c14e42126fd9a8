package system

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/barreljumper/clock"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
	"github.com/milk9111/barreljumper/ecs/entity"
)

var outcomeCues = map[component.Category]ecs.EventType{
	component.CategoryHazard: ecs.EventHazardTouch,
	component.CategoryBarrel: ecs.EventBarrelHit,
	component.CategoryGoal:   ecs.EventGoalReached,
}

// OutcomeHandler ends a session. Each category's cue is emitted at most once
// per session; the first trigger starts a fixed-length transition, after
// which a restart is requested. Win and lose differ only in the cue.
type OutcomeHandler struct {
	world    *ecs.World
	clk      Scheduler
	duration time.Duration
	logger   *log.Logger

	played     map[component.Category]bool
	triggered  bool
	category   component.Category
	transition clock.TimerID
	restart    bool
}

func NewOutcomeHandler(w *ecs.World, clk Scheduler, duration time.Duration) *OutcomeHandler {
	return &OutcomeHandler{
		world:    w,
		clk:      clk,
		duration: duration,
		logger:   log.WithPrefix("outcome"),
		played:   make(map[component.Category]bool),
	}
}

// SetLogger replaces the handler's logger.
func (h *OutcomeHandler) SetLogger(l *log.Logger) {
	if l != nil {
		h.logger = l
	}
}

// Trigger handles a terminal overlap with category. Unknown categories are
// ignored. It reports whether the category is a known outcome.
func (h *OutcomeHandler) Trigger(category component.Category) bool {
	cue, ok := outcomeCues[category]
	if !ok {
		return false
	}
	if !h.played[category] {
		h.played[category] = true
		h.world.Emit(cue, 0, category)
	}
	if h.triggered {
		return true
	}

	h.triggered = true
	h.category = category
	h.logger.Info("outcome", "category", category)
	h.world.Emit(ecs.EventOutcomeTransition, 0, category)

	now := time.Duration(0)
	if h.clk != nil {
		now = h.clk.Now()
	}
	if _, err := entity.NewTransition(h.world, category, now, h.duration); err != nil {
		h.logger.Error("start transition", "err", err)
	}
	if h.clk == nil {
		h.requestRestart()
		return true
	}
	h.transition = h.clk.After(h.duration, h.requestRestart)
	return true
}

func (h *OutcomeHandler) requestRestart() {
	h.transition = 0
	if h.restart {
		return
	}
	h.restart = true
	h.world.Emit(ecs.EventSessionRestart, 0, h.category)
	if _, err := entity.NewReloadRequest(h.world, h.category.String()); err != nil {
		h.logger.Error("request reload", "err", err)
	}
}

// Triggered reports whether the session has ended.
func (h *OutcomeHandler) Triggered() bool { return h.triggered }

// Category is the category of the first trigger.
func (h *OutcomeHandler) Category() component.Category { return h.category }

// RestartRequested reports whether the transition has finished.
func (h *OutcomeHandler) RestartRequested() bool { return h.restart }

// Played reports whether the cue for category has been emitted.
func (h *OutcomeHandler) Played(category component.Category) bool { return h.played[category] }

// Cancel discards a pending transition callback.
func (h *OutcomeHandler) Cancel() {
	if h.transition != 0 && h.clk != nil {
		h.clk.Cancel(h.transition)
	}
	h.transition = 0
}
