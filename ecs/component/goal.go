package component

// Goal marks the level's winning target. Barrels spawn at its position.
type Goal struct{}

var GoalComponent = NewComponent[Goal]()
