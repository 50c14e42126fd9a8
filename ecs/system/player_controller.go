package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// Mover is the slice of a physics body the controller drives. *cp.Body
// satisfies it.
type Mover interface {
	Velocity() cp.Vector
	SetVelocity(x, y float64)
}

// ContactSource reports per-entity ground contact after a physics step.
type ContactSource interface {
	Contact(e ecs.Entity) ecs.Contact
}

// GroundContactSystem refreshes Player.Grounded from the physics world. It
// runs first in a tick so the controller sees this tick's contact.
type GroundContactSystem struct {
	Source ContactSource
}

func NewGroundContactSystem() *GroundContactSystem {
	return &GroundContactSystem{}
}

func (g *GroundContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	src := g.Source
	if src == nil {
		pw := w.PhysicsWorld()
		if pw == nil {
			return
		}
		src = pw
	}
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.PlayerComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, player *component.Player) {
		player.Grounded = src.Contact(e).Grounded()
	})
}

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || bodyComp.Body == nil {
			continue
		}
		p.Drive(w, e, bodyComp.Body)
	}
}

// Drive runs one controller step for e against m.
func (p *PlayerControllerSystem) Drive(w *ecs.World, e ecs.Entity, m Mover) {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || m == nil {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	fsm, ok := ecs.Get(w, e, component.PlayerStateMachineComponent.Kind())
	if !ok {
		fsm = &component.PlayerStateMachine{}
		if err := ecs.Add(w, e, component.PlayerStateMachineComponent.Kind(), fsm); err != nil {
			return
		}
	}
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())

	dir := input.Direction
	jumped := false
	ctx := &component.PlayerStateContext{
		Direction: dir,
		Player:    player,
		GetVelocity: func() (float64, float64) {
			v := m.Velocity()
			return v.X, v.Y
		},
		SetVelocity: m.SetVelocity,
		IsGrounded:  func() bool { return player.Grounded },
		ChangeState: func(state component.PlayerState) {
			fsm.Pending = state
		},
		SetFrame: func(frame int) {
			if sprite != nil {
				sprite.Frame = frame
			}
			if anim != nil {
				anim.Playing = false
			}
		},
		StartWalking: func() {
			if player.Walking {
				return
			}
			player.Walking = true
			if anim != nil {
				anim.Current = "walking"
				anim.Step = 0
				anim.Reverse = false
				anim.FrameTimer = 0
				anim.Playing = true
			}
			w.Emit(ecs.EventWalkStart, e, nil)
		},
		StopWalking: func() {
			if !player.Walking {
				return
			}
			player.Walking = false
			if anim != nil {
				anim.Playing = false
			}
			w.Emit(ecs.EventWalkStop, e, nil)
		},
		Jumped: func() {
			jumped = true
			w.Emit(ecs.EventJump, e, nil)
		},
		SetFacing: func(f component.Facing) {
			player.Facing = f
			if sprite != nil {
				// the sheet faces left
				sprite.FlipX = f == component.FacingRight
			}
		},
	}

	if fsm.State == nil {
		fsm.State = playerStateIdle
		fsm.State.Enter(ctx)
	}

	if player.Grounded && dir != player.LastDirection {
		v := m.Velocity()
		m.SetVelocity(0, v.Y)
		ctx.StopWalking()
	}

	from := fsm.State
	fsm.State.HandleInput(ctx)
	if applyPendingState(fsm, ctx) && from == playerStateAirborne {
		// landing: the grounded state handles this tick's input too
		fsm.State.HandleInput(ctx)
		applyPendingState(fsm, ctx)
	}
	if !jumped {
		fsm.State.Update(ctx)
		applyPendingState(fsm, ctx)
	}

	player.LastDirection = dir
}

// applyPendingState switches to the pending state, if any, and reports
// whether the state changed.
func applyPendingState(fsm *component.PlayerStateMachine, ctx *component.PlayerStateContext) bool {
	next := fsm.Pending
	fsm.Pending = nil
	if next == nil || next == fsm.State {
		return false
	}
	fsm.State.Exit(ctx)
	fsm.State = next
	fsm.State.Enter(ctx)
	return true
}

// PlayerStateName returns the active state name of e, or "".
func PlayerStateName(w *ecs.World, e ecs.Entity) string {
	fsm, ok := ecs.Get(w, e, component.PlayerStateMachineComponent.Kind())
	if !ok || fsm.State == nil {
		return ""
	}
	return fsm.State.Name()
}
