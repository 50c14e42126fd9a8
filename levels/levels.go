// Package levels holds the level description schema, its parser and the
// embedded level files.
package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Description is the data a session is built from. Coordinates are centre
// points in world space; durations are milliseconds.
type Description struct {
	Name      string     `yaml:"name,omitempty"`
	World     World      `yaml:"world"`
	Platforms []Platform `yaml:"platforms"`
	Fires     []Point    `yaml:"fires"`
	Player    *Point     `yaml:"player"`
	Goal      *Point     `yaml:"goal"`
	Spawner   Spawner    `yaml:"spawner"`
}

type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Platform places NumTiles copies of the Key asset side by side, centred on
// (X, Y).
type Platform struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Key      string  `yaml:"key"`
	NumTiles int     `yaml:"numTiles"`
}

// Spawner configures the barrel spawner. Interval and Lifespan are in
// milliseconds; Speed is the horizontal velocity in pixels per second.
type Spawner struct {
	Interval int64   `yaml:"interval"`
	Speed    float64 `yaml:"speed"`
	Lifespan int64   `yaml:"lifespan"`
}

// Parse decodes and validates a level description. JSON input is accepted
// since it is valid YAML.
func Parse(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("levels: parse: %w", err)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return &desc, nil
}
