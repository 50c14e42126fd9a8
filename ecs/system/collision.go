package system

import (
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// Retirer takes a barrel out of play. *BarrelSpawner satisfies it.
type Retirer interface {
	Retire(e ecs.Entity) bool
}

// Outcome receives terminal overlaps. *OutcomeHandler satisfies it.
type Outcome interface {
	Trigger(category component.Category) bool
}

type categoryPair struct {
	a, b component.Category
}

// CollisionCoordinator owns the collision rules of a session. Blocking
// rules go to the physics world as shape filters; overlap rules are checked
// once per tick after the physics step.
type CollisionCoordinator struct {
	physics  *ecs.PhysicsWorld
	outcome  Outcome
	retirer  Retirer
	blocking []categoryPair
	overlaps []categoryPair

	triggered bool
}

func NewCollisionCoordinator(pw *ecs.PhysicsWorld, outcome Outcome, retirer Retirer) *CollisionCoordinator {
	return &CollisionCoordinator{physics: pw, outcome: outcome, retirer: retirer}
}

// Collider makes a and b solid against each other.
func (c *CollisionCoordinator) Collider(a, b component.Category) {
	c.blocking = append(c.blocking, categoryPair{a: a, b: b})
	c.physics.SetSolid(a, b)
}

// Overlap registers a terminal rule: an a entity overlapping a b entity
// triggers the outcome with category b.
func (c *CollisionCoordinator) Overlap(a, b component.Category) {
	c.overlaps = append(c.overlaps, categoryPair{a: a, b: b})
}

// Triggered reports whether a terminal overlap has fired this session.
func (c *CollisionCoordinator) Triggered() bool {
	return c.triggered
}

type overlapBox struct {
	x, y, w, h float64
}

func (a overlapBox) overlaps(b overlapBox) bool {
	return a.x < b.x+b.w && a.x+a.w > b.x && a.y < b.y+b.h && a.y+a.h > b.y
}

// entityBox returns the centred AABB of e. Hidden entities, inactive
// barrels and disabled bodies take no part in overlaps.
func entityBox(w *ecs.World, e ecs.Entity) (overlapBox, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t.Hidden {
		return overlapBox{}, false
	}
	if barrel, ok := ecs.Get(w, e, component.BarrelComponent.Kind()); ok && !barrel.Active {
		return overlapBox{}, false
	}

	var width, height float64
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		if body.Body != nil && !body.Enabled {
			return overlapBox{}, false
		}
		width, height = body.Width, body.Height
	} else if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		width, height = sprite.Width, sprite.Height
	}
	if width <= 0 || height <= 0 {
		return overlapBox{}, false
	}
	return overlapBox{x: t.X - width/2, y: t.Y - height/2, w: width, h: height}, true
}

// Update checks every overlap rule and hands the first hit to the outcome
// handler. Later hits in the same tick, and every hit after that, are
// ignored: the outcome fires once per session.
func (c *CollisionCoordinator) Update(w *ecs.World) {
	if w == nil || c.triggered || len(c.overlaps) == 0 {
		return
	}

	byCategory := make(map[component.Category][]ecs.Entity)
	ecs.ForEach(w, component.CollisionLayerComponent.Kind(), func(e ecs.Entity, layer *component.CollisionLayer) {
		byCategory[layer.Category] = append(byCategory[layer.Category], e)
	})

	for _, rule := range c.overlaps {
		for _, a := range byCategory[rule.a] {
			boxA, ok := entityBox(w, a)
			if !ok {
				continue
			}
			for _, b := range byCategory[rule.b] {
				boxB, ok := entityBox(w, b)
				if !ok || !boxA.overlaps(boxB) {
					continue
				}
				if c.hit(rule.b, b) {
					return
				}
			}
		}
	}
}

func (c *CollisionCoordinator) hit(category component.Category, e ecs.Entity) bool {
	if c.outcome == nil || !c.outcome.Trigger(category) {
		// unknown category
		return false
	}
	c.triggered = true
	if category == component.CategoryBarrel && c.retirer != nil {
		c.retirer.Retire(e)
	}
	return true
}
