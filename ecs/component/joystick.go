package component

// Joystick is an on-screen virtual stick. The anchor sits at DefaultX/Y until
// a pointer goes down, when it jumps to the tap; the thumb follows the
// pointer, clamped to Radius.
type Joystick struct {
	DefaultX float64
	DefaultY float64
	AnchorX  float64
	AnchorY  float64
	ThumbX   float64
	ThumbY   float64
	Radius   float64
	DeadZone float64
	Enabled  bool
	Held     bool
}

var JoystickComponent = NewComponent[Joystick]()
