package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// BarrelPool is a fixed arena of barrel entities indexed by slot. Barrels are
// created once, hidden and with their collider disabled, and are activated
// and retired instead of being created and destroyed.
type BarrelPool struct {
	slots  []ecs.Entity
	free   []int
	active []int // activation order, oldest first
}

// PoolCapacity is the number of barrels that can be alive at once for the
// given spawn interval and lifespan, plus one slot of slack.
func PoolCapacity(interval, lifespan time.Duration) int {
	if interval <= 0 || lifespan <= 0 {
		return 1
	}
	n := int(lifespan / interval)
	if lifespan%interval != 0 {
		n++
	}
	return n + 1
}

// NewBarrelPool pre-allocates capacity barrel entities.
func NewBarrelPool(w *ecs.World, catalog assets.Catalog, capacity int) (*BarrelPool, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("barrel pool: capacity must be positive, got %d", capacity)
	}
	art, err := catalog.Lookup("barrel")
	if err != nil {
		return nil, fmt.Errorf("barrel pool: %w", err)
	}

	pool := &BarrelPool{
		slots:  make([]ecs.Entity, 0, capacity),
		free:   make([]int, 0, capacity),
		active: make([]int, 0, capacity),
	}
	for slot := 0; slot < capacity; slot++ {
		barrel, err := newBarrel(w, art, slot)
		if err != nil {
			return nil, err
		}
		pool.slots = append(pool.slots, barrel)
	}
	// hand out low slots first
	for slot := capacity - 1; slot >= 0; slot-- {
		pool.free = append(pool.free, slot)
	}
	return pool, nil
}

func newBarrel(w *ecs.World, art assets.Asset, slot int) (ecs.Entity, error) {
	barrel := ecs.CreateEntity(w)
	if err := ecs.Add(w, barrel, component.BarrelComponent.Kind(), &component.Barrel{Slot: slot}); err != nil {
		return 0, fmt.Errorf("barrel %d: add barrel: %w", slot, err)
	}
	if err := ecs.Add(w, barrel, component.TransformComponent.Kind(), &component.Transform{Hidden: true}); err != nil {
		return 0, fmt.Errorf("barrel %d: add transform: %w", slot, err)
	}
	if err := ecs.Add(w, barrel, component.SpriteComponent.Kind(), &component.Sprite{
		Key:    art.Key,
		Width:  art.Width,
		Height: art.Height,
		Tiles:  1,
	}); err != nil {
		return 0, fmt.Errorf("barrel %d: add sprite: %w", slot, err)
	}
	if err := ecs.Add(w, barrel, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.CategoryBarrel}); err != nil {
		return 0, fmt.Errorf("barrel %d: add collision layer: %w", slot, err)
	}

	body := &component.PhysicsBody{Width: art.Width, Height: art.Height}
	if pw := w.PhysicsWorld(); pw != nil {
		body = pw.AddDynamic(barrel, component.CategoryBarrel, 0, 0, art.Width, art.Height, 0, false, false)
	}
	if err := ecs.Add(w, barrel, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("barrel %d: add physics body: %w", slot, err)
	}
	return barrel, nil
}

// Capacity is the fixed number of slots.
func (p *BarrelPool) Capacity() int {
	if p == nil {
		return 0
	}
	return len(p.slots)
}

// Acquire takes a free slot. It reports false when every slot is active.
func (p *BarrelPool) Acquire() (ecs.Entity, bool) {
	if p == nil || len(p.free) == 0 {
		return 0, false
	}
	n := len(p.free)
	slot := p.free[n-1]
	p.free = p.free[:n-1]
	p.active = append(p.active, slot)
	return p.slots[slot], true
}

// Release returns a slot to the pool. Releasing a free slot is a no-op.
func (p *BarrelPool) Release(slot int) bool {
	if p == nil || slot < 0 || slot >= len(p.slots) {
		return false
	}
	for i, s := range p.active {
		if s == slot {
			p.active = append(p.active[:i], p.active[i+1:]...)
			p.free = append(p.free, slot)
			return true
		}
	}
	return false
}

// Oldest returns the barrel that has been active the longest.
func (p *BarrelPool) Oldest() (ecs.Entity, bool) {
	if p == nil || len(p.active) == 0 {
		return 0, false
	}
	return p.slots[p.active[0]], true
}

// Active returns the active barrels, oldest first.
func (p *BarrelPool) Active() []ecs.Entity {
	if p == nil {
		return nil
	}
	out := make([]ecs.Entity, 0, len(p.active))
	for _, slot := range p.active {
		out = append(out, p.slots[slot])
	}
	return out
}

// Entities returns every slot's entity.
func (p *BarrelPool) Entities() []ecs.Entity {
	if p == nil {
		return nil
	}
	out := make([]ecs.Entity, len(p.slots))
	copy(out, p.slots)
	return out
}
