package component

import "time"

// TransitionRuntime holds the state of the outcome transition that precedes
// a session restart. Alpha goes from 0 to 1 over Duration.
type TransitionRuntime struct {
	Category Category
	Started  time.Duration
	Duration time.Duration
	Alpha    float64
}

var TransitionRuntimeComponent = NewComponent[TransitionRuntime]()
