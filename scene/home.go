package scene

import "github.com/hajimehoshi/ebiten/v2"

// Home is the title screen. There is no menu yet, so it starts the game
// straight away.
type Home struct {
	manager *Manager
}

func NewHome(m *Manager) *Home {
	return &Home{manager: m}
}

func (h *Home) Key() string               { return KeyHome }
func (h *Home) Init()                     {}
func (h *Home) Preload() error            { return nil }
func (h *Home) Create() error             { return h.manager.Start(KeyMain) }
func (h *Home) Update() error             { return nil }
func (h *Home) Draw(screen *ebiten.Image) {}
