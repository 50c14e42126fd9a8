package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Enabled mirrors whether the shape is currently part of the space.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Friction float64
	Static   bool
	Enabled  bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
