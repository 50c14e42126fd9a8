package assets

import (
	"testing"
)

func TestCatalogTiled(t *testing.T) {
	c := Default()
	tests := []struct {
		key   string
		tiles int
		w, h  float64
	}{
		{key: "block", tiles: 1, w: 36, h: 30},
		{key: "block", tiles: 4, w: 144, h: 30},
		{key: "ground", tiles: 1, w: 360, h: 72},
	}
	for _, tc := range tests {
		w, h, err := c.Tiled(tc.key, tc.tiles)
		if err != nil {
			t.Fatalf("tiled %s: %v", tc.key, err)
		}
		if w != tc.w || h != tc.h {
			t.Fatalf("%s x%d: expected %vx%v, got %vx%v", tc.key, tc.tiles, tc.w, tc.h, w, h)
		}
	}
	if _, _, err := c.Tiled("lava", 1); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestCuesRenderToPCM(t *testing.T) {
	for _, name := range CueNames() {
		t.Run(name, func(t *testing.T) {
			pcm := RenderPCM(Cue(name))
			if len(pcm) == 0 {
				t.Fatalf("cue %s rendered no samples", name)
			}
			if len(pcm)%4 != 0 {
				t.Fatalf("cue %s: expected whole stereo frames, got %d bytes", name, len(pcm))
			}
		})
	}
}

func TestUnknownCue(t *testing.T) {
	if Cue("nope") != nil {
		t.Fatalf("expected nil streamer for unknown cue")
	}
	if RenderPCM(nil) != nil {
		t.Fatalf("expected nil pcm for nil streamer")
	}
}

func TestToInt16Clamps(t *testing.T) {
	if toInt16(2) != 32767 || toInt16(-2) != -32767 {
		t.Fatalf("expected clamping, got %d %d", toInt16(2), toInt16(-2))
	}
}
