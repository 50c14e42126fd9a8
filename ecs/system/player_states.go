package system

import (
	"strings"

	"github.com/milk9111/barreljumper/ecs/component"
)

// Sprite sheet frames used by the controller.
const (
	FrameNeutral = 3
	FrameJump    = 2
)

// Player state singletons (avoid allocations on transitions).
var (
	playerStateIdle     component.PlayerState = &playerIdleState{}
	playerStateWalking  component.PlayerState = &playerWalkingState{}
	playerStateAirborne component.PlayerState = &playerAirborneState{}
)

type playerIdleState struct{}

type playerWalkingState struct{}

type playerAirborneState struct{}

type directionClass int

const (
	classNone directionClass = iota
	classWalkLeft
	classWalkRight
	classJump
)

// classify maps a resolved token onto what the controller does with it while
// grounded. Anything unrecognized idles.
func classify(dir string) directionClass {
	switch dir {
	case "left":
		return classWalkLeft
	case "right":
		return classWalkRight
	case "up", "upleft", "upright":
		return classJump
	default:
		return classNone
	}
}

// horizontal returns -1, 0 or 1 for the left/right component of a token.
func horizontal(dir string) float64 {
	left := strings.Contains(dir, "left")
	right := strings.Contains(dir, "right")
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	default:
		return 0
	}
}

// groundedTransition runs the grounded half of the transition table. It
// reports whether a state change or a jump happened.
func groundedTransition(ctx *component.PlayerStateContext, current component.PlayerState) bool {
	switch classify(ctx.Direction) {
	case classWalkLeft, classWalkRight:
		if current != playerStateWalking {
			ctx.ChangeState(playerStateWalking)
			return true
		}
	case classJump:
		jump(ctx)
		return true
	default:
		if current != playerStateIdle {
			ctx.ChangeState(playerStateIdle)
			return true
		}
	}
	return false
}

// jump applies the impulse. The grounded gate is checked again here so no
// caller can jump in mid-air. The state stays grounded until a later tick
// reports that ground contact is gone.
func jump(ctx *component.PlayerStateContext) {
	if ctx.IsGrounded == nil || !ctx.IsGrounded() {
		return
	}
	x, _ := ctx.GetVelocity()
	ctx.SetVelocity(x, ctx.Player.JumpSpeed)
	ctx.StopWalking()
	ctx.SetFrame(FrameJump)
	ctx.Jumped()
}

func (playerIdleState) Name() string { return "grounded-idle" }
func (playerIdleState) Enter(ctx *component.PlayerStateContext) {
	_, y := ctx.GetVelocity()
	ctx.SetVelocity(0, y)
	ctx.StopWalking()
	ctx.SetFrame(FrameNeutral)
}
func (playerIdleState) Exit(ctx *component.PlayerStateContext) {}
func (playerIdleState) HandleInput(ctx *component.PlayerStateContext) {
	if !ctx.IsGrounded() {
		ctx.ChangeState(playerStateAirborne)
		return
	}
	groundedTransition(ctx, playerStateIdle)
}
func (playerIdleState) Update(ctx *component.PlayerStateContext) {
	_, y := ctx.GetVelocity()
	ctx.SetVelocity(0, y)
}

func (playerWalkingState) Name() string                            { return "grounded-walking" }
func (playerWalkingState) Enter(ctx *component.PlayerStateContext) {}
func (playerWalkingState) Exit(ctx *component.PlayerStateContext)  {}
func (playerWalkingState) HandleInput(ctx *component.PlayerStateContext) {
	if !ctx.IsGrounded() {
		ctx.ChangeState(playerStateAirborne)
		return
	}
	groundedTransition(ctx, playerStateWalking)
}
func (playerWalkingState) Update(ctx *component.PlayerStateContext) {
	dx := horizontal(ctx.Direction)
	if dx == 0 {
		return
	}
	_, y := ctx.GetVelocity()
	ctx.SetVelocity(dx*ctx.Player.MoveSpeed, y)
	if dx < 0 {
		ctx.SetFacing(component.FacingLeft)
	} else {
		ctx.SetFacing(component.FacingRight)
	}
	ctx.StartWalking()
}

func (playerAirborneState) Name() string { return "airborne" }
func (playerAirborneState) Enter(ctx *component.PlayerStateContext) {
	ctx.StopWalking()
}
func (playerAirborneState) Exit(ctx *component.PlayerStateContext) {}
func (playerAirborneState) HandleInput(ctx *component.PlayerStateContext) {
	if !ctx.IsGrounded() {
		return
	}
	// landed; the grounded state picks up jump inputs
	switch classify(ctx.Direction) {
	case classWalkLeft, classWalkRight:
		ctx.ChangeState(playerStateWalking)
	default:
		ctx.ChangeState(playerStateIdle)
	}
}
func (playerAirborneState) Update(ctx *component.PlayerStateContext) {
	// vertical velocity belongs to gravity here
	dx := horizontal(ctx.Direction)
	_, y := ctx.GetVelocity()
	ctx.SetVelocity(dx*ctx.Player.MoveSpeed, y)
	if dx < 0 {
		ctx.SetFacing(component.FacingLeft)
	} else if dx > 0 {
		ctx.SetFacing(component.FacingRight)
	}
}
