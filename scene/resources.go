package scene

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/config"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/levels"
)

// Resources is what the loading scene prepares for the main scene.
type Resources struct {
	Config  config.Config
	Catalog assets.Catalog

	CueNames   []string
	CuePlayers []*audio.Player
	// LoadAudio builds the cue players. Defaults to synthesizing them into
	// the shared audio context.
	LoadAudio func() ([]string, []*audio.Player)

	// Watcher reports edits to level files. Nil disables hot reload.
	Watcher *levels.Watcher

	// Input replaces device input in every session when set.
	Input ecs.System
}

func (r *Resources) loadAudio() {
	load := r.LoadAudio
	if load == nil {
		load = func() ([]string, []*audio.Player) {
			return assets.LoadCuePlayers(assets.AudioContext())
		}
	}
	r.CueNames, r.CuePlayers = load()
}
