package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validLevel = `
world: { width: 360, height: 640 }
platforms:
  - { x: 180, y: 604, key: ground, numTiles: 1 }
fires:
  - { x: 20, y: 20 }
player: { x: 180, y: 400 }
goal: { x: 40, y: 60 }
spawner: { interval: 1000, speed: -100, lifespan: 5000 }
`

func TestParseValidLevel(t *testing.T) {
	desc, err := Parse([]byte(validLevel))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(desc.Platforms) != 1 || desc.Platforms[0].Key != "ground" || desc.Platforms[0].NumTiles != 1 {
		t.Fatalf("unexpected platforms: %+v", desc.Platforms)
	}
	if desc.Spawner.Interval != 1000 || desc.Spawner.Lifespan != 5000 || desc.Spawner.Speed != -100 {
		t.Fatalf("unexpected spawner: %+v", desc.Spawner)
	}
	if desc.Player == nil || desc.Player.Y != 400 {
		t.Fatalf("unexpected player: %+v", desc.Player)
	}
}

func TestParseAcceptsJSON(t *testing.T) {
	data := `{"world":{"width":10,"height":10},"platforms":[{"x":1,"y":1,"key":"block","numTiles":2}],
"fires":[],"player":{"x":1,"y":1},"goal":{"x":2,"y":2},"spawner":{"interval":10,"speed":1,"lifespan":20}}`
	desc, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if desc.Platforms[0].NumTiles != 2 {
		t.Fatalf("expected numTiles 2, got %d", desc.Platforms[0].NumTiles)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		level string
		field string
	}{
		{
			name:  "zero width",
			level: `{world: {width: 0, height: 10}, platforms: [{x: 0, y: 0, key: a, numTiles: 1}], player: {x: 0, y: 0}, goal: {x: 0, y: 0}, spawner: {interval: 1, lifespan: 1}}`,
			field: "world.width",
		},
		{
			name:  "no platforms",
			level: `{world: {width: 10, height: 10}, platforms: [], player: {x: 0, y: 0}, goal: {x: 0, y: 0}, spawner: {interval: 1, lifespan: 1}}`,
			field: "platforms",
		},
		{
			name:  "zero tiles",
			level: `{world: {width: 10, height: 10}, platforms: [{x: 0, y: 0, key: a}], player: {x: 0, y: 0}, goal: {x: 0, y: 0}, spawner: {interval: 1, lifespan: 1}}`,
			field: "platforms[0].numTiles",
		},
		{
			name:  "missing key",
			level: `{world: {width: 10, height: 10}, platforms: [{x: 0, y: 0, numTiles: 1}], player: {x: 0, y: 0}, goal: {x: 0, y: 0}, spawner: {interval: 1, lifespan: 1}}`,
			field: "platforms[0].key",
		},
		{
			name:  "missing player",
			level: `{world: {width: 10, height: 10}, platforms: [{x: 0, y: 0, key: a, numTiles: 1}], goal: {x: 0, y: 0}, spawner: {interval: 1, lifespan: 1}}`,
			field: "player",
		},
		{
			name:  "missing goal",
			level: `{world: {width: 10, height: 10}, platforms: [{x: 0, y: 0, key: a, numTiles: 1}], player: {x: 0, y: 0}, spawner: {interval: 1, lifespan: 1}}`,
			field: "goal",
		},
		{
			name:  "non-positive interval",
			level: `{world: {width: 10, height: 10}, platforms: [{x: 0, y: 0, key: a, numTiles: 1}], player: {x: 0, y: 0}, goal: {x: 0, y: 0}, spawner: {interval: 0, lifespan: 1}}`,
			field: "spawner.interval",
		},
		{
			name:  "non-positive lifespan",
			level: `{world: {width: 10, height: 10}, platforms: [{x: 0, y: 0, key: a, numTiles: 1}], player: {x: 0, y: 0}, goal: {x: 0, y: 0}, spawner: {interval: 5, lifespan: -1}}`,
			field: "spawner.lifespan",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.level))
			if err == nil {
				t.Fatalf("expected error")
			}
			var malformedErr *MalformedLevelError
			if !errors.As(err, &malformedErr) {
				t.Fatalf("expected MalformedLevelError, got %T: %v", err, err)
			}
			if malformedErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, malformedErr.Field)
			}
		})
	}
}

func TestMalformedLevelErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("session: start: %w", (&Description{}).Validate())
	var malformedErr *MalformedLevelError
	if !errors.As(err, &malformedErr) {
		t.Fatalf("expected wrapped MalformedLevelError, got %v", err)
	}
}

func TestEmbeddedLevelsAreValid(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatalf("expected embedded levels")
	}
	for _, name := range names {
		if _, err := Load(name); err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	custom := validLevel + "name: from-disk\n"
	if err := os.WriteFile(filepath.Join(dir, "level1.yaml"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	desc, err := Load("level1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if desc.Name != "from-disk" {
		t.Fatalf("expected disk level, got %q", desc.Name)
	}
}

func TestLoadNamesUnnamedLevelAfterFile(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	path := filepath.Join(dir, "level1.yaml")
	if err := os.WriteFile(path, []byte(validLevel), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{name: "bare", input: "level1"},
		{name: "with extension", input: "level1.yaml"},
		{name: "with directory", input: "levels/level1.yaml"},
		{name: "absolute", input: path},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			desc, err := Load(tc.input)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if desc.Name != "level1" {
				t.Fatalf("expected name level1, got %q", desc.Name)
			}
		})
	}
}

func TestSameLevel(t *testing.T) {
	if !SameLevel(filepath.Join("levels", "level1.yaml"), "level1") {
		t.Fatalf("expected level1.yaml to match level1")
	}
	if SameLevel("levels/level2.yaml", "level1") {
		t.Fatalf("level2 should not match level1")
	}
}

func TestWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	target := filepath.Join(dir, "level9.yaml")
	if err := os.WriteFile(target, []byte(validLevel), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if filepath.Ext(name) != ".yaml" {
				t.Fatalf("unexpected event for %s", name)
			}
			return
		case <-deadline:
			t.Fatalf("timed out waiting for level change")
		}
	}
}
