package entity

import (
	"fmt"

	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// JoystickLayout is the static position and feel of the on-screen stick.
type JoystickLayout struct {
	X        float64
	Y        float64
	Radius   float64
	DeadZone float64
	Enabled  bool
}

func NewJoystick(w *ecs.World, layout JoystickLayout) (ecs.Entity, error) {
	stick := ecs.CreateEntity(w)
	if err := ecs.Add(w, stick, component.JoystickComponent.Kind(), &component.Joystick{
		DefaultX: layout.X,
		DefaultY: layout.Y,
		AnchorX:  layout.X,
		AnchorY:  layout.Y,
		ThumbX:   layout.X,
		ThumbY:   layout.Y,
		Radius:   layout.Radius,
		DeadZone: layout.DeadZone,
		Enabled:  layout.Enabled,
	}); err != nil {
		return 0, fmt.Errorf("joystick: add joystick: %w", err)
	}
	return stick, nil
}
