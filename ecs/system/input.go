package system

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// Direction is one logical input direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// directionOrder is the canonical order names are concatenated in.
var directionOrder = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return ""
	}
}

// DirectionSource reports whether a direction is currently held.
type DirectionSource interface {
	Pressed(Direction) bool
}

// DirectionSet is a fixed set of held directions.
type DirectionSet map[Direction]bool

func (s DirectionSet) Pressed(d Direction) bool { return s[d] }

// Resolve merges every source into one token: the names of the active
// directions in up, down, left, right order. "" means no input.
func Resolve(sources ...DirectionSource) string {
	var b strings.Builder
	for _, d := range directionOrder {
		for _, src := range sources {
			if src != nil && src.Pressed(d) {
				b.WriteString(d.String())
				break
			}
		}
	}
	return b.String()
}

// KeyboardSource reads the arrow keys and WASD.
type KeyboardSource struct{}

var directionKeys = map[Direction][]ebiten.Key{
	Up:    {ebiten.KeyArrowUp, ebiten.KeyW},
	Down:  {ebiten.KeyArrowDown, ebiten.KeyS},
	Left:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	Right: {ebiten.KeyArrowRight, ebiten.KeyD},
}

func (KeyboardSource) Pressed(d Direction) bool {
	for _, k := range directionKeys[d] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// InputSystem resolves the direction token once per tick and stores it on
// every entity with an Input component.
type InputSystem struct {
	Keyboard DirectionSource
	Pointer  *PointerSource
}

func NewInputSystem() *InputSystem {
	return &InputSystem{Keyboard: KeyboardSource{}, Pointer: &PointerSource{}}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	sources := make([]DirectionSource, 0, 2)
	if i.Keyboard != nil {
		sources = append(sources, i.Keyboard)
	}
	ecs.ForEach(w, component.JoystickComponent.Kind(), func(_ ecs.Entity, stick *component.Joystick) {
		if i.Pointer != nil {
			i.Pointer.Poll(stick)
		}
		sources = append(sources, JoystickSource{Stick: stick})
	})

	token := Resolve(sources...)
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Direction = token
	})
}
