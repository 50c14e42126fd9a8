// Package config loads runtime settings for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Title    string         `yaml:"title"`
	Level    string         `yaml:"level"`
	TPS      int            `yaml:"tps"`
	Screen   ScreenConfig   `yaml:"screen"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Outcome  OutcomeConfig  `yaml:"outcome"`
	Boot     BootConfig     `yaml:"boot"`
	Joystick JoystickConfig `yaml:"joystick"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    bool           `yaml:"debug"`
	Watch    bool           `yaml:"watch"`
}

type ScreenConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

type PlayerConfig struct {
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

type OutcomeConfig struct {
	TransitionMS int64 `yaml:"transition_ms"`
}

// Transition is the fixed duration of the outcome transition.
func (o OutcomeConfig) Transition() time.Duration {
	return time.Duration(o.TransitionMS) * time.Millisecond
}

type BootConfig struct {
	DelayMS int64 `yaml:"delay_ms"`
}

func (b BootConfig) Delay() time.Duration {
	return time.Duration(b.DelayMS) * time.Millisecond
}

type JoystickConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Radius   float64 `yaml:"radius"`
	DeadZone float64 `yaml:"dead_zone"`
	Enabled  bool    `yaml:"enabled"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

var ErrInvalidConfig = errors.New("config: invalid")

// Default returns the embedded defaults.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("config: embedded default.yaml: " + err.Error())
	}
	return cfg
}

// Load builds the configuration: embedded defaults, then the optional file at
// path, then .env and environment overrides. Flags are applied by the caller.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// a missing .env is fine
	_ = godotenv.Load()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("BARREL_LEVEL"); ok && v != "" {
		c.Level = v
	}
	if v, ok := lookup("BARREL_DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: BARREL_DEBUG: %w", err)
		}
		c.Debug = b
	}
	if v, ok := lookup("BARREL_TPS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: BARREL_TPS: %w", err)
		}
		c.TPS = n
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Level == "":
		return fmt.Errorf("%w: level is empty", ErrInvalidConfig)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size must be positive", ErrInvalidConfig)
	case c.Player.MoveSpeed <= 0:
		return fmt.Errorf("%w: player.move_speed must be positive", ErrInvalidConfig)
	case c.Player.JumpSpeed >= 0:
		return fmt.Errorf("%w: player.jump_speed must be negative (y grows down)", ErrInvalidConfig)
	case c.Outcome.TransitionMS <= 0:
		return fmt.Errorf("%w: outcome.transition_ms must be positive", ErrInvalidConfig)
	case c.Boot.DelayMS < 0:
		return fmt.Errorf("%w: boot.delay_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}

// TickDuration is the logical time covered by one update.
func (c Config) TickDuration() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}
