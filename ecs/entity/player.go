package entity

import (
	"fmt"

	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// PlayerTuning carries the locomotion constants from configuration.
type PlayerTuning struct {
	MoveSpeed float64
	JumpSpeed float64
}

// Frames of the player sheet: 0-2 walk cycle, 3 neutral.
var walkingAnimation = component.AnimationDef{Name: "walking", Frames: []int{0, 1, 2}, FPS: 8, Loop: true, Yoyo: true}

// NewPlayer creates the player centred on (x, y) with a feet sensor for
// ground contact.
func NewPlayer(w *ecs.World, catalog assets.Catalog, x, y float64, tuning PlayerTuning) (ecs.Entity, error) {
	art, err := catalog.Lookup("player")
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{
		Key:    art.Key,
		Width:  art.Width,
		Height: art.Height,
		Tiles:  1,
		Frame:  3,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, player, component.AnimationComponent.Kind(), &component.Animation{
		Defs:    map[string]component.AnimationDef{walkingAnimation.Name: walkingAnimation},
		Current: walkingAnimation.Name,
	}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed: tuning.MoveSpeed,
		JumpSpeed: tuning.JumpSpeed,
		Facing:    component.FacingLeft,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerStateMachineComponent.Kind(), &component.PlayerStateMachine{}); err != nil {
		return 0, fmt.Errorf("player: add state machine: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.CategoryPlayer}); err != nil {
		return 0, fmt.Errorf("player: add collision layer: %w", err)
	}

	if pw := w.PhysicsWorld(); pw != nil {
		body := pw.AddDynamic(player, component.CategoryPlayer, x, y, art.Width, art.Height, 0, true, true)
		if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), body); err != nil {
			return 0, fmt.Errorf("player: add physics body: %w", err)
		}
	}

	return player, nil
}
