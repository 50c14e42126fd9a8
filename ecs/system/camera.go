package system

import (
	"math"

	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// CameraSystem centres the camera on its target, clamped to the level
// bounds, and shakes it while an outcome transition runs.
type CameraSystem struct {
	frame int
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cs.frame++

	var bounds *component.LevelBounds
	if e, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		bounds, _ = ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	}

	fade := 0.0
	ecs.ForEach(w, component.TransitionRuntimeComponent.Kind(), func(_ ecs.Entity, tr *component.TransitionRuntime) {
		fade = math.Max(fade, tr.Alpha)
	})

	ecs.ForEach2(w, component.CameraTagComponent.Kind(), component.CameraComponent.Kind(), func(_ ecs.Entity, _ *component.CameraTag, cam *component.Camera) {
		if t, ok := ecs.Get(w, ecs.Entity(cam.Target), component.TransformComponent.Kind()); ok {
			cam.X = t.X - cam.ViewW/2
			cam.Y = t.Y - cam.ViewH/2
		}
		if bounds != nil {
			cam.X = clamp(cam.X, 0, math.Max(0, bounds.Width-cam.ViewW))
			cam.Y = clamp(cam.Y, 0, math.Max(0, bounds.Height-cam.ViewH))
		}

		cam.Fade = fade
		if fade > 0 && fade < 1 {
			cam.ShakeFrames++
			amp := 3 * (1 - fade)
			cam.X += amp * math.Sin(float64(cs.frame)*1.7)
			cam.Y += amp * math.Cos(float64(cs.frame)*2.3)
		} else {
			cam.ShakeFrames = 0
		}
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
