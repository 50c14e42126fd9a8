package entity

import (
	"fmt"

	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// NewPlatform creates a static platform of numTiles copies of key centred on
// (x, y). A single tile is drawn at the asset's native size.
func NewPlatform(w *ecs.World, catalog assets.Catalog, key string, numTiles int, x, y float64) (ecs.Entity, error) {
	width, height, err := catalog.Tiled(key, numTiles)
	if err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}

	platform := ecs.CreateEntity(w)
	if err := ecs.Add(w, platform, component.PlatformComponent.Kind(), &component.Platform{Key: key, NumTiles: numTiles}); err != nil {
		return 0, fmt.Errorf("platform: add platform: %w", err)
	}
	if err := ecs.Add(w, platform, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}
	if err := ecs.Add(w, platform, component.SpriteComponent.Kind(), &component.Sprite{
		Key:    key,
		Width:  width,
		Height: height,
		Tiles:  numTiles,
	}); err != nil {
		return 0, fmt.Errorf("platform: add sprite: %w", err)
	}
	if err := ecs.Add(w, platform, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.CategoryPlatform}); err != nil {
		return 0, fmt.Errorf("platform: add collision layer: %w", err)
	}

	if pw := w.PhysicsWorld(); pw != nil {
		body := pw.AddStatic(platform, component.CategoryPlatform, x, y, width, height)
		if err := ecs.Add(w, platform, component.PhysicsBodyComponent.Kind(), body); err != nil {
			return 0, fmt.Errorf("platform: add physics body: %w", err)
		}
	}
	return platform, nil
}
