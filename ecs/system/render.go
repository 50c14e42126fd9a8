package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// draw order by collision category; entities without one draw first
var renderOrder = map[component.Category]int{
	component.CategoryPlatform: 1,
	component.CategoryHazard:   2,
	component.CategoryGoal:     3,
	component.CategoryBarrel:   4,
	component.CategoryPlayer:   5,
}

// RenderSystem draws sprites as coloured shapes sized from the asset
// catalog, then the joystick and the transition fade.
type RenderSystem struct {
	catalog assets.Catalog
	Debug   bool
}

func NewRenderSystem(catalog assets.Catalog) *RenderSystem {
	return &RenderSystem{catalog: catalog}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX, camY := 0.0, 0.0
	fade := 0.0
	if camEntity, ok := w.First(component.CameraTagComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
			camX, camY = cam.X, cam.Y
			fade = cam.Fade
		}
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := r.layer(w, entities[i]), r.layer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if t == nil || s == nil || t.Hidden {
			continue
		}
		r.drawSprite(screen, t.X-camX, t.Y-camY, s)
	}

	if r.Debug {
		r.drawColliders(w, screen, camX, camY)
	}

	ecs.ForEach(w, component.JoystickComponent.Kind(), func(_ ecs.Entity, j *component.Joystick) {
		if !j.Enabled {
			return
		}
		vector.StrokeCircle(screen, float32(j.AnchorX), float32(j.AnchorY), float32(j.Radius), 2, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}, true)
		vector.FillCircle(screen, float32(j.ThumbX), float32(j.ThumbY), float32(j.Radius/2), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}, true)
	})

	if fade > 0 {
		b := screen.Bounds()
		vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: uint8(fade * 255)}, false)
	}
}

func (r *RenderSystem) layer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		return renderOrder[layer.Category]
	}
	return 0
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, cx, cy float64, s *component.Sprite) {
	clr := color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	if art, ok := r.catalog[s.Key]; ok {
		clr = art.Color
	}
	x := float32(cx - s.Width/2)
	y := float32(cy - s.Height/2)
	wdt := float32(s.Width)
	hgt := float32(s.Height)

	switch s.Key {
	case "barrel":
		rad := wdt / 2
		vector.FillCircle(screen, float32(cx), float32(cy), rad, clr, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), rad*0.6, 2, shade(clr, 0.6), true)
	case "fire":
		flame := hgt * (0.8 + 0.2*float32(s.Frame%2))
		vector.FillRect(screen, x, y+hgt-flame, wdt, flame, clr, false)
		vector.FillRect(screen, x+wdt/4, y+hgt-flame*0.6, wdt/2, flame*0.6, color.RGBA{R: 0xff, G: 0xe0, B: 0x40, A: 0xff}, false)
	case "player":
		body := shade(clr, 1-0.1*float64(s.Frame%3))
		vector.FillRect(screen, x, y, wdt, hgt, body, false)
		// eye on the facing side; the sheet faces left unless flipped
		eyeX := x + wdt*0.25
		if s.FlipX {
			eyeX = x + wdt*0.75
		}
		vector.FillCircle(screen, eyeX, y+hgt*0.3, 2.5, color.White, true)
		if s.Frame == FrameJump {
			vector.StrokeRect(screen, x, y, wdt, hgt, 1, color.White, false)
		}
	default:
		vector.FillRect(screen, x, y, wdt, hgt, clr, false)
		tiles := s.Tiles
		if tiles > 1 {
			tileW := wdt / float32(tiles)
			for i := 0; i < tiles; i++ {
				vector.StrokeRect(screen, x+float32(i)*tileW, y, tileW, hgt, 1, shade(clr, 0.7), false)
			}
		}
	}
}

func (r *RenderSystem) drawColliders(w *ecs.World, screen *ebiten.Image, camX, camY float64) {
	ecs.ForEach(w, component.CollisionLayerComponent.Kind(), func(e ecs.Entity, _ *component.CollisionLayer) {
		box, ok := entityBox(w, e)
		if !ok {
			return
		}
		vector.StrokeRect(screen, float32(box.x-camX), float32(box.y-camY), float32(box.w), float32(box.h), 1, color.RGBA{R: 255, A: 255}, false)
	})
}

func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		n := float64(v) * f
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
