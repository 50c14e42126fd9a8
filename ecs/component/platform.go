package component

// Platform is an immovable, collidable surface built from NumTiles copies of
// the Key asset laid side by side.
type Platform struct {
	Key      string
	NumTiles int
}

var PlatformComponent = NewComponent[Platform]()
