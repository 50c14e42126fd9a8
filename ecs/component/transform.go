package component

// Transform is the world-space centre of an entity. Hidden entities are
// skipped by rendering and overlap checks.
type Transform struct {
	X      float64
	Y      float64
	Hidden bool
}

var TransformComponent = NewComponent[Transform]()
