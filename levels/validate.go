package levels

import "fmt"

// Validate checks the fields a session relies on. It returns the first
// problem found as a *MalformedLevelError.
func (d *Description) Validate() error {
	if d == nil {
		return malformed("level", "missing")
	}
	if d.World.Width <= 0 {
		return malformed("world.width", "must be positive, got %v", d.World.Width)
	}
	if d.World.Height <= 0 {
		return malformed("world.height", "must be positive, got %v", d.World.Height)
	}
	if len(d.Platforms) == 0 {
		return malformed("platforms", "at least one platform is required")
	}
	for i, p := range d.Platforms {
		if p.Key == "" {
			return malformed(fmt.Sprintf("platforms[%d].key", i), "missing")
		}
		if p.NumTiles < 1 {
			return malformed(fmt.Sprintf("platforms[%d].numTiles", i), "must be at least 1, got %d", p.NumTiles)
		}
	}
	if d.Player == nil {
		return malformed("player", "missing")
	}
	if d.Goal == nil {
		return malformed("goal", "missing")
	}
	if d.Spawner.Interval <= 0 {
		return malformed("spawner.interval", "must be positive, got %d", d.Spawner.Interval)
	}
	if d.Spawner.Lifespan <= 0 {
		return malformed("spawner.lifespan", "must be positive, got %d", d.Spawner.Lifespan)
	}
	return nil
}
