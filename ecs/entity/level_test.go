package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
	"github.com/milk9111/barreljumper/levels"
)

func testDescription() *levels.Description {
	return &levels.Description{
		Name:  "test",
		World: levels.World{Width: 360, Height: 640},
		Platforms: []levels.Platform{
			{X: 180, Y: 604, Key: "ground", NumTiles: 1},
			{X: 100, Y: 400, Key: "block", NumTiles: 4},
		},
		Fires:   []levels.Point{{X: 60, Y: 560}},
		Player:  &levels.Point{X: 300, Y: 540},
		Goal:    &levels.Point{X: 40, Y: 110},
		Spawner: levels.Spawner{Interval: 3000, Speed: 100, Lifespan: 9000},
	}
}

func TestLoadLevelBuildsEntities(t *testing.T) {
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld(1000)
	defer pw.Close()
	w.SetPhysicsWorld(pw)

	lvl, err := LoadLevel(w, assets.Default(), testDescription(), PlayerTuning{MoveSpeed: 100, JumpSpeed: -600})
	if err != nil {
		t.Fatalf("load level: %v", err)
	}

	if len(lvl.Platforms) != 2 || len(lvl.Hazards) != 1 {
		t.Fatalf("expected 2 platforms and 1 hazard, got %d and %d", len(lvl.Platforms), len(lvl.Hazards))
	}
	if lvl.Spawner.Interval != 3*time.Second || lvl.Spawner.Lifespan != 9*time.Second || lvl.Spawner.Speed != 100 {
		t.Fatalf("unexpected spawner config %+v", lvl.Spawner)
	}
	if lvl.Bounds.Width != 360 || lvl.Bounds.Height != 640 {
		t.Fatalf("unexpected bounds %+v", lvl.Bounds)
	}

	tests := []struct {
		name   string
		e      ecs.Entity
		w, h   float64
		x, y   float64
		static bool
	}{
		{name: "single tile keeps native size", e: lvl.Platforms[0], w: 360, h: 72, x: 180, y: 604, static: true},
		{name: "tiles repeat horizontally", e: lvl.Platforms[1], w: 144, h: 30, x: 100, y: 400, static: true},
		{name: "goal", e: lvl.Goal, w: 35, h: 40, x: 40, y: 110},
		{name: "player", e: lvl.Player, w: 28, h: 30, x: 300, y: 540},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body, ok := ecs.Get(w, tc.e, component.PhysicsBodyComponent.Kind())
			if !ok {
				t.Fatalf("missing physics body")
			}
			if body.Width != tc.w || body.Height != tc.h {
				t.Fatalf("expected %vx%v, got %vx%v", tc.w, tc.h, body.Width, body.Height)
			}
			if body.Static != tc.static {
				t.Fatalf("expected static=%v", tc.static)
			}
			tr, _ := ecs.Get(w, tc.e, component.TransformComponent.Kind())
			if tr.X != tc.x || tr.Y != tc.y {
				t.Fatalf("expected position (%v,%v), got (%v,%v)", tc.x, tc.y, tr.X, tr.Y)
			}
		})
	}

	cam, ok := ecs.Get(w, lvl.Camera, component.CameraComponent.Kind())
	if !ok || cam.Target != uint64(lvl.Player) {
		t.Fatalf("camera should follow the player")
	}
}

func TestLoadLevelRejectsUnknownKey(t *testing.T) {
	desc := testDescription()
	desc.Platforms[1].Key = "lava"

	_, err := LoadLevel(ecs.NewWorld(), assets.Default(), desc, PlayerTuning{})
	var malformed *levels.MalformedLevelError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedLevelError, got %v", err)
	}
	if malformed.Field != "platforms[1].key" {
		t.Fatalf("unexpected field %q", malformed.Field)
	}
}

func TestLoadLevelRejectsInvalidDescription(t *testing.T) {
	desc := testDescription()
	desc.Platforms = nil

	_, err := LoadLevel(ecs.NewWorld(), assets.Default(), desc, PlayerTuning{})
	var malformed *levels.MalformedLevelError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedLevelError, got %v", err)
	}
}

func TestLoadLevelWithoutPhysics(t *testing.T) {
	w := ecs.NewWorld()
	lvl, err := LoadLevel(w, assets.Default(), testDescription(), PlayerTuning{})
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	sprite, ok := ecs.Get(w, lvl.Platforms[1], component.SpriteComponent.Kind())
	if !ok || sprite.Width != 144 || sprite.Tiles != 4 {
		t.Fatalf("unexpected platform sprite %+v", sprite)
	}
}
