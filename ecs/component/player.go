package component

type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// Player holds locomotion tuning and the per-tick state the controller
// reads and writes. LastDirection is the token resolved on the previous tick;
// Walking is set while the walking cue is active.
type Player struct {
	MoveSpeed     float64
	JumpSpeed     float64
	Facing        Facing
	Grounded      bool
	Walking       bool
	LastDirection string
}

var PlayerComponent = NewComponent[Player]()
