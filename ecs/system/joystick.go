package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/barreljumper/ecs/component"
)

// JoystickSource derives directions from the thumb's displacement relative
// to the anchor. Each axis is active past the dead zone.
type JoystickSource struct {
	Stick *component.Joystick
}

func (s JoystickSource) Pressed(d Direction) bool {
	j := s.Stick
	if j == nil || !j.Enabled || !j.Held {
		return false
	}
	dx := j.ThumbX - j.AnchorX
	dy := j.ThumbY - j.AnchorY
	switch d {
	case Up:
		return dy < -j.DeadZone
	case Down:
		return dy > j.DeadZone
	case Left:
		return dx < -j.DeadZone
	case Right:
		return dx > j.DeadZone
	}
	return false
}

// ResetJoystick returns anchor and thumb to the configured static position.
func ResetJoystick(j *component.Joystick) {
	if j == nil {
		return
	}
	j.AnchorX, j.AnchorY = j.DefaultX, j.DefaultY
	j.ThumbX, j.ThumbY = j.DefaultX, j.DefaultY
}

// PointerDown relocates the anchor to the tap point and starts tracking.
func PointerDown(j *component.Joystick, x, y float64) {
	if j == nil || !j.Enabled {
		return
	}
	j.AnchorX, j.AnchorY = x, y
	j.ThumbX, j.ThumbY = x, y
	j.Held = true
}

// PointerMove moves the thumb, clamped to the stick radius.
func PointerMove(j *component.Joystick, x, y float64) {
	if j == nil || !j.Held {
		return
	}
	dx := x - j.AnchorX
	dy := y - j.AnchorY
	if dist := math.Hypot(dx, dy); j.Radius > 0 && dist > j.Radius {
		scale := j.Radius / dist
		dx *= scale
		dy *= scale
	}
	j.ThumbX = j.AnchorX + dx
	j.ThumbY = j.AnchorY + dy
}

// PointerUp releases the stick back to its static position.
func PointerUp(j *component.Joystick) {
	if j == nil {
		return
	}
	j.Held = false
	ResetJoystick(j)
}

// PointerSource polls the first touch, or the left mouse button when no
// touch is active, and forwards it to a joystick.
type PointerSource struct {
	touchID  ebiten.TouchID
	touching bool
	mouse    bool
}

// Poll applies this tick's pointer changes to j.
func (p *PointerSource) Poll(j *component.Joystick) {
	if p == nil || j == nil {
		return
	}

	if !p.touching && !p.mouse {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			p.touchID = ids[0]
			p.touching = true
			x, y := ebiten.TouchPosition(p.touchID)
			PointerDown(j, float64(x), float64(y))
			return
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			p.mouse = true
			x, y := ebiten.CursorPosition()
			PointerDown(j, float64(x), float64(y))
			return
		}
		return
	}

	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			PointerUp(j)
			return
		}
		x, y := ebiten.TouchPosition(p.touchID)
		PointerMove(j, float64(x), float64(y))
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.mouse = false
		PointerUp(j)
		return
	}
	x, y := ebiten.CursorPosition()
	PointerMove(j, float64(x), float64(y))
}
