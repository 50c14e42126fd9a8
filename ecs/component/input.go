package component

// Input stores the resolved direction token for the current tick: the active
// direction names concatenated in up, down, left, right order.
type Input struct {
	Direction string
}

var InputComponent = NewComponent[Input]()
