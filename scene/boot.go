package scene

import "github.com/hajimehoshi/ebiten/v2"

// Boot is the entry scene. It only hands over to the loading screen.
type Boot struct {
	manager *Manager
}

func NewBoot(m *Manager) *Boot {
	return &Boot{manager: m}
}

func (b *Boot) Key() string               { return KeyBoot }
func (b *Boot) Init()                     {}
func (b *Boot) Preload() error            { return nil }
func (b *Boot) Create() error             { return b.manager.Start(KeyLoading) }
func (b *Boot) Update() error             { return nil }
func (b *Boot) Draw(screen *ebiten.Image) {}
