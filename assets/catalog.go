// Package assets describes the visual assets the game draws and synthesizes
// its sound cues.
package assets

import (
	"fmt"
	"image/color"
	"sort"
)

// Asset is the native size of a visual, and the colour used to draw it.
// Sheets hold Frames frames of Width x Height each.
type Asset struct {
	Key    string
	Width  float64
	Height float64
	Frames int
	Color  color.RGBA
}

// Catalog maps asset keys to their metadata.
type Catalog map[string]Asset

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		"ground":   {Key: "ground", Width: 360, Height: 72, Frames: 1, Color: color.RGBA{R: 0x5a, G: 0x3c, B: 0x22, A: 0xff}},
		"platform": {Key: "platform", Width: 180, Height: 15, Frames: 1, Color: color.RGBA{R: 0x7a, G: 0x7a, B: 0x8a, A: 0xff}},
		"block":    {Key: "block", Width: 36, Height: 30, Frames: 1, Color: color.RGBA{R: 0xb0, G: 0x5a, B: 0x2a, A: 0xff}},
		"goal":     {Key: "goal", Width: 35, Height: 40, Frames: 1, Color: color.RGBA{R: 0x4a, G: 0x2e, B: 0x1a, A: 0xff}},
		"barrel":   {Key: "barrel", Width: 24, Height: 24, Frames: 1, Color: color.RGBA{R: 0xc8, G: 0x8a, B: 0x3a, A: 0xff}},
		"player":   {Key: "player", Width: 28, Height: 30, Frames: 5, Color: color.RGBA{R: 0x3a, G: 0x8a, B: 0xe0, A: 0xff}},
		"fire":     {Key: "fire", Width: 20, Height: 21, Frames: 2, Color: color.RGBA{R: 0xff, G: 0x6a, B: 0x10, A: 0xff}},
	}
}

// Lookup returns the asset for key.
func (c Catalog) Lookup(key string) (Asset, error) {
	a, ok := c[key]
	if !ok {
		return Asset{}, fmt.Errorf("assets: unknown key %q", key)
	}
	return a, nil
}

// Tiled returns the drawn size of numTiles copies of key laid side by side.
// A single tile keeps the native size.
func (c Catalog) Tiled(key string, numTiles int) (w, h float64, err error) {
	a, err := c.Lookup(key)
	if err != nil {
		return 0, 0, err
	}
	if numTiles < 1 {
		numTiles = 1
	}
	return a.Width * float64(numTiles), a.Height, nil
}

// Keys lists the catalog keys in sorted order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
