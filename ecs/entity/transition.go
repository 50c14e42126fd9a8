package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// NewTransition starts the outcome transition overlay.
func NewTransition(w *ecs.World, category component.Category, started, duration time.Duration) (ecs.Entity, error) {
	transition := ecs.CreateEntity(w)
	if err := ecs.Add(w, transition, component.TransitionRuntimeComponent.Kind(), &component.TransitionRuntime{
		Category: category,
		Started:  started,
		Duration: duration,
	}); err != nil {
		return 0, fmt.Errorf("transition: add runtime: %w", err)
	}
	return transition, nil
}

// NewReloadRequest asks the game loop to rebuild the session.
func NewReloadRequest(w *ecs.World, reason string) (ecs.Entity, error) {
	req := ecs.CreateEntity(w)
	if err := ecs.Add(w, req, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Reason: reason}); err != nil {
		return 0, fmt.Errorf("reload request: add: %w", err)
	}
	return req, nil
}
