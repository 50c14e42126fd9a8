package entity

import (
	"fmt"

	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// NewCamera creates a camera that follows target.
func NewCamera(w *ecs.World, target ecs.Entity, viewW, viewH float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Target: uint64(target),
		ViewW:  viewW,
		ViewH:  viewH,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
