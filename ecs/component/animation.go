package component

// AnimationDef is a named frame sequence on a sprite sheet.
type AnimationDef struct {
	Name   string
	Frames []int
	FPS    float64
	Loop   bool
	Yoyo   bool
}

// Animation drives Sprite.Frame. Playing is false while a fixed frame is shown.
type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Step       int
	Reverse    bool
	FrameTimer int
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()
