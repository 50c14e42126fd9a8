package system

import (
	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

var eventCues = map[ecs.EventType]string{
	ecs.EventWalkStart:   assets.CueWalk,
	ecs.EventJump:        assets.CueJump,
	ecs.EventBarrelSpawn: assets.CueBarrel,
	ecs.EventHazardTouch: assets.CueHazard,
	ecs.EventBarrelHit:   assets.CueHit,
	ecs.EventGoalReached: assets.CueGoal,
}

// AudioSystem turns this tick's events into cue requests and services the
// Play/Stop flags of every audio bank. It reads the queue without draining
// it; the session drains once per tick.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	events := w.Events().Peek()
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for _, evt := range events {
			if evt.Type == ecs.EventWalkStop {
				stopCue(audioComp, assets.CueWalk)
				continue
			}
			if cue, ok := eventCues[evt.Type]; ok {
				audioComp.Request(cue)
			}
		}

		count := len(audioComp.Play)
		if len(audioComp.Players) < count {
			count = len(audioComp.Players)
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && !player.IsPlaying() {
				player.SetVolume(audioComp.Volume[i])
				if err := player.Rewind(); err == nil {
					player.Play()
				}
			}

			audioComp.Play[i] = false
		}

		for i := 0; i < count; i++ {
			if !audioComp.Stop[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}

			audioComp.Stop[i] = false
		}
	})
}

func stopCue(a *component.Audio, name string) {
	for i, n := range a.Names {
		if n == name && i < len(a.Stop) {
			a.Stop[i] = true
			a.Play[i] = false
		}
	}
}
