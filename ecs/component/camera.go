package component

// Camera follows Target (an ecs.Entity stored as uint64) and is clamped to
// the level bounds. ShakeFrames and Fade are driven by the outcome transition.
type Camera struct {
	Target      uint64
	X           float64
	Y           float64
	ViewW       float64
	ViewH       float64
	ShakeFrames int
	Fade        float64
}

var CameraComponent = NewComponent[Camera]()
