package entity

import (
	"fmt"

	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

var fireAnimation = component.AnimationDef{Name: "burning", Frames: []int{0, 1}, FPS: 4, Loop: true}

// NewFire creates an animated fire hazard. Fires have no physics body; the
// overlap check uses the sprite size.
func NewFire(w *ecs.World, catalog assets.Catalog, x, y float64) (ecs.Entity, error) {
	art, err := catalog.Lookup("fire")
	if err != nil {
		return 0, fmt.Errorf("fire: %w", err)
	}

	fire := ecs.CreateEntity(w)
	if err := ecs.Add(w, fire, component.HazardComponent.Kind(), &component.Hazard{Kind: "fire"}); err != nil {
		return 0, fmt.Errorf("fire: add hazard: %w", err)
	}
	if err := ecs.Add(w, fire, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("fire: add transform: %w", err)
	}
	if err := ecs.Add(w, fire, component.SpriteComponent.Kind(), &component.Sprite{
		Key:    art.Key,
		Width:  art.Width,
		Height: art.Height,
		Tiles:  1,
	}); err != nil {
		return 0, fmt.Errorf("fire: add sprite: %w", err)
	}
	if err := ecs.Add(w, fire, component.AnimationComponent.Kind(), &component.Animation{
		Defs:    map[string]component.AnimationDef{fireAnimation.Name: fireAnimation},
		Current: fireAnimation.Name,
		Playing: true,
	}); err != nil {
		return 0, fmt.Errorf("fire: add animation: %w", err)
	}
	if err := ecs.Add(w, fire, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.CategoryHazard}); err != nil {
		return 0, fmt.Errorf("fire: add collision layer: %w", err)
	}
	return fire, nil
}
