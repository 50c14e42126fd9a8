package assets

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the rate cues are synthesized at and the audio context runs at.
const SampleRate = 44100

// Cue names.
const (
	CueWalk   = "walk"
	CueJump   = "jump"
	CueBarrel = "barrel"
	CueHazard = "hazard"
	CueHit    = "hit"
	CueGoal   = "goal"
)

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
	gain     float64
}

func newOscillator(freq float64, d time.Duration, wave waveType, gain float64) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	return &oscillator{freq: freq, duration: rate.N(d), wave: wave, rate: rate, gain: gain}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		// linear fade out to avoid clicks
		fade := 1 - float64(o.position)/float64(o.duration)
		val *= o.gain * fade

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Cue returns a fresh streamer for the named cue, or nil if unknown.
func Cue(name string) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	switch name {
	case CueWalk:
		return beep.Take(rate.N(60*time.Millisecond), newOscillator(140, 60*time.Millisecond, waveSquare, 0.15))
	case CueJump:
		return beep.Seq(
			newOscillator(440, 50*time.Millisecond, waveSine, 0.4),
			newOscillator(660, 80*time.Millisecond, waveSine, 0.4),
		)
	case CueBarrel:
		return newOscillator(0, 120*time.Millisecond, waveNoise, 0.2)
	case CueHazard:
		return newOscillator(110, 300*time.Millisecond, waveSaw, 0.35)
	case CueHit:
		return beep.Seq(
			newOscillator(90, 120*time.Millisecond, waveSquare, 0.3),
			newOscillator(0, 150*time.Millisecond, waveNoise, 0.25),
		)
	case CueGoal:
		return beep.Seq(
			newOscillator(523.25, 90*time.Millisecond, waveSine, 0.4),
			newOscillator(659.25, 90*time.Millisecond, waveSine, 0.4),
			newOscillator(783.99, 160*time.Millisecond, waveSine, 0.4),
		)
	}
	return nil
}

// CueNames lists every cue the bank knows.
func CueNames() []string {
	return []string{CueWalk, CueJump, CueBarrel, CueHazard, CueHit, CueGoal}
}

// RenderPCM drains s into signed 16-bit little-endian stereo PCM, the format
// ebiten's audio players take.
func RenderPCM(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][ch])))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

// LoadCuePlayers synthesizes every cue and wraps it in an audio player.
func LoadCuePlayers(ctx *audio.Context) (names []string, players []*audio.Player) {
	if ctx == nil {
		return nil, nil
	}
	for _, name := range CueNames() {
		pcm := RenderPCM(Cue(name))
		if len(pcm) == 0 {
			continue
		}
		names = append(names, name)
		players = append(players, ctx.NewPlayerFromBytes(pcm))
	}
	return names, players
}

// AudioContext returns the process-wide audio context, creating it on first use.
func AudioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(SampleRate)
}
