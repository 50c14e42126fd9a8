package component

// Barrel is a pooled obstacle slot. Generation increases on every activation
// so a stale lifespan callback can tell it no longer owns the slot.
type Barrel struct {
	Slot       int
	Active     bool
	Generation uint64
	// Lifespan is the clock.TimerID of the pending retirement, 0 when none.
	Lifespan  uint64
	SpawnedAt int64
}

var BarrelComponent = NewComponent[Barrel]()
