package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// NewAudio creates the cue bank entity. names and players are parallel.
func NewAudio(w *ecs.World, names []string, players []*audio.Player, volume float64) (ecs.Entity, error) {
	if len(names) != len(players) {
		return 0, fmt.Errorf("audio: %d names for %d players", len(names), len(players))
	}
	n := len(names)
	comp := &component.Audio{
		Names:   append([]string(nil), names...),
		Players: append([]*audio.Player(nil), players...),
		Volume:  make([]float64, n),
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}
	for i := range comp.Volume {
		comp.Volume[i] = volume
	}

	bank := ecs.CreateEntity(w)
	if err := ecs.Add(w, bank, component.AudioComponent.Kind(), comp); err != nil {
		return 0, fmt.Errorf("audio: add audio: %w", err)
	}
	return bank, nil
}
