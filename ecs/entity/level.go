package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
	"github.com/milk9111/barreljumper/levels"
)

// SpawnerConfig is the barrel spawner's schedule and launch speed.
type SpawnerConfig struct {
	Interval time.Duration
	Lifespan time.Duration
	Speed    float64
}

// Level holds handles to everything LoadLevel built.
type Level struct {
	Player    ecs.Entity
	Goal      ecs.Entity
	Camera    ecs.Entity
	Platforms []ecs.Entity
	Hazards   []ecs.Entity
	Bounds    component.LevelBounds
	Spawner   SpawnerConfig
}

// LoadLevel builds the static level and the player from desc. A description
// that fails validation, or names an unknown visual, yields a
// *levels.MalformedLevelError.
func LoadLevel(w *ecs.World, catalog assets.Catalog, desc *levels.Description, tuning PlayerTuning) (*Level, error) {
	if w == nil {
		return nil, errors.New("level: nil world")
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	lvl := &Level{
		Bounds: component.LevelBounds{Width: desc.World.Width, Height: desc.World.Height},
		Spawner: SpawnerConfig{
			Interval: time.Duration(desc.Spawner.Interval) * time.Millisecond,
			Lifespan: time.Duration(desc.Spawner.Lifespan) * time.Millisecond,
			Speed:    desc.Spawner.Speed,
		},
	}

	boundsEntity := ecs.CreateEntity(w)
	bounds := lvl.Bounds
	if err := ecs.Add(w, boundsEntity, component.LevelBoundsComponent.Kind(), &bounds); err != nil {
		return nil, fmt.Errorf("level: add bounds: %w", err)
	}
	w.PhysicsWorld().SetBounds(desc.World.Width, desc.World.Height)

	for i, p := range desc.Platforms {
		if _, ok := catalog[p.Key]; !ok {
			return nil, &levels.MalformedLevelError{Field: fmt.Sprintf("platforms[%d].key", i), Reason: fmt.Sprintf("unknown asset %q", p.Key)}
		}
		platform, err := NewPlatform(w, catalog, p.Key, p.NumTiles, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("level: platform %d: %w", i, err)
		}
		lvl.Platforms = append(lvl.Platforms, platform)
	}

	for i, f := range desc.Fires {
		fire, err := NewFire(w, catalog, f.X, f.Y)
		if err != nil {
			return nil, fmt.Errorf("level: fire %d: %w", i, err)
		}
		lvl.Hazards = append(lvl.Hazards, fire)
	}

	goal, err := NewGoal(w, catalog, desc.Goal.X, desc.Goal.Y)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	lvl.Goal = goal

	player, err := NewPlayer(w, catalog, desc.Player.X, desc.Player.Y, tuning)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	lvl.Player = player

	camera, err := NewCamera(w, player, desc.World.Width, desc.World.Height)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	lvl.Camera = camera

	return lvl, nil
}
