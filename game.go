package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/barreljumper/scene"
)

// Game adapts the scene manager to ebiten.
type Game struct {
	scenes *scene.Manager
	width  int
	height int
}

// NewGame registers every scene and starts at boot.
func NewGame(res *scene.Resources) (*Game, error) {
	m := scene.NewManager()
	for _, s := range []scene.Scene{
		scene.NewBoot(m),
		scene.NewLoading(m, res),
		scene.NewHome(m),
		scene.NewMain(m, res),
	} {
		if err := m.Register(s); err != nil {
			return nil, err
		}
	}
	if err := m.Start(scene.KeyBoot); err != nil {
		return nil, err
	}
	return &Game{
		scenes: m,
		width:  res.Config.Screen.Width,
		height: res.Config.Screen.Height,
	}, nil
}

func (g *Game) Update() error {
	return g.scenes.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scenes.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close releases the running scene.
func (g *Game) Close() {
	g.scenes.Shutdown()
}
