package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio is a bank of cue players. Systems request playback by name; the
// audio system services Play/Stop flags once per tick.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Request marks the named cue for playback, cancelling a pending stop. It
// reports whether the name is known.
func (a *Audio) Request(name string) bool {
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			if i < len(a.Stop) {
				a.Stop[i] = false
			}
			return true
		}
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
