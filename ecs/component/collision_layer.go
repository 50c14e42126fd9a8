package component

// Category is the collision category of an entity. Collision rules are
// registered between categories, never between individual entities.
type Category uint32

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryPlatform
	CategoryHazard
	CategoryGoal
	CategoryBarrel
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryPlatform:
		return "platform"
	case CategoryHazard:
		return "hazard"
	case CategoryGoal:
		return "goal"
	case CategoryBarrel:
		return "barrel"
	default:
		return "none"
	}
}

// Bit returns the Chipmunk filter bit for the category.
func (c Category) Bit() uint {
	if c == CategoryNone {
		return 0
	}
	return 1 << uint(c-1)
}

// CollisionLayer tags an entity with its category.
type CollisionLayer struct {
	Category Category
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
