package entity

import (
	"fmt"

	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// NewGoal creates the goal. It has a dynamic body so it settles onto the
// platform below its spawn point.
func NewGoal(w *ecs.World, catalog assets.Catalog, x, y float64) (ecs.Entity, error) {
	art, err := catalog.Lookup("goal")
	if err != nil {
		return 0, fmt.Errorf("goal: %w", err)
	}

	goal := ecs.CreateEntity(w)
	if err := ecs.Add(w, goal, component.GoalComponent.Kind(), &component.Goal{}); err != nil {
		return 0, fmt.Errorf("goal: add goal: %w", err)
	}
	if err := ecs.Add(w, goal, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("goal: add transform: %w", err)
	}
	if err := ecs.Add(w, goal, component.SpriteComponent.Kind(), &component.Sprite{
		Key:    art.Key,
		Width:  art.Width,
		Height: art.Height,
		Tiles:  1,
	}); err != nil {
		return 0, fmt.Errorf("goal: add sprite: %w", err)
	}
	if err := ecs.Add(w, goal, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.CategoryGoal}); err != nil {
		return 0, fmt.Errorf("goal: add collision layer: %w", err)
	}

	if pw := w.PhysicsWorld(); pw != nil {
		body := pw.AddDynamic(goal, component.CategoryGoal, x, y, art.Width, art.Height, 1, false, true)
		if err := ecs.Add(w, goal, component.PhysicsBodyComponent.Kind(), body); err != nil {
			return 0, fmt.Errorf("goal: add physics body: %w", err)
		}
	}
	return goal, nil
}
