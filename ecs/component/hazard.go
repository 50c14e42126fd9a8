package component

// Hazard marks an entity as lethal on overlap with the player.
type Hazard struct {
	Kind string
}

var HazardComponent = NewComponent[Hazard]()
