// Package scene runs the game's screens. A Manager owns a set of scenes and
// switches between them by key; each scene is initialised, preloaded and
// created in that order when it starts.
package scene

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene keys.
const (
	KeyBoot    = "boot"
	KeyLoading = "loading"
	KeyHome    = "home"
	KeyMain    = "main"
)

var ErrUnknownScene = errors.New("scene: unknown key")

// Scene is one screen of the game.
type Scene interface {
	Key() string
	Init()
	Preload() error
	Create() error
	Update() error
	Draw(screen *ebiten.Image)
}

// Shutdowner is implemented by scenes that hold resources to release when
// another scene starts.
type Shutdowner interface {
	Shutdown()
}

// Manager switches between registered scenes. Start requests are applied at
// the beginning of the next Update, so a scene may start another from any of
// its lifecycle methods.
type Manager struct {
	scenes  map[string]Scene
	current Scene
	pending string
	logger  *log.Logger
}

func NewManager() *Manager {
	return &Manager{
		scenes: make(map[string]Scene),
		logger: log.WithPrefix("scene"),
	}
}

// Register adds s. Keys must be unique.
func (m *Manager) Register(s Scene) error {
	if s == nil {
		return errors.New("scene: register nil scene")
	}
	key := s.Key()
	if _, exists := m.scenes[key]; exists {
		return fmt.Errorf("scene: duplicate key %q", key)
	}
	m.scenes[key] = s
	return nil
}

// Start requests a switch to the scene registered under key.
func (m *Manager) Start(key string) error {
	if _, ok := m.scenes[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, key)
	}
	m.pending = key
	return nil
}

// Current returns the running scene's key, or "".
func (m *Manager) Current() string {
	if m.current == nil {
		return ""
	}
	return m.current.Key()
}

// Update applies pending switches, then updates the running scene.
func (m *Manager) Update() error {
	// a scene that starts another from Create chains within one frame
	for i := 0; m.pending != "" && i <= len(m.scenes); i++ {
		if err := m.switchTo(m.pending); err != nil {
			return err
		}
	}
	if m.current == nil {
		return nil
	}
	return m.current.Update()
}

func (m *Manager) switchTo(key string) error {
	m.pending = ""
	next := m.scenes[key]
	if sd, ok := m.current.(Shutdowner); ok {
		sd.Shutdown()
	}
	m.current = next
	m.logger.Debug("starting scene", "key", key)

	next.Init()
	if err := next.Preload(); err != nil {
		return fmt.Errorf("scene %s: preload: %w", key, err)
	}
	if err := next.Create(); err != nil {
		return fmt.Errorf("scene %s: create: %w", key, err)
	}
	return nil
}

// Draw draws the running scene.
func (m *Manager) Draw(screen *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(screen)
	}
}

// Shutdown releases the running scene.
func (m *Manager) Shutdown() {
	if sd, ok := m.current.(Shutdowner); ok {
		sd.Shutdown()
	}
	m.current = nil
	m.pending = ""
}
