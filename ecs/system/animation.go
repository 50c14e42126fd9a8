package system

import (
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

// AnimationSystem advances playing animations and writes the current frame
// into the sprite.
type AnimationSystem struct {
	tps int
}

func NewAnimationSystem(tps int) *AnimationSystem {
	if tps <= 0 {
		tps = 60
	}
	return &AnimationSystem{tps: tps}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if !anim.Playing {
			return
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || len(def.Frames) == 0 || def.FPS <= 0 {
			return
		}

		ticksPerFrame := int(float64(a.tps) / def.FPS)
		if ticksPerFrame < 1 {
			ticksPerFrame = 1
		}

		anim.FrameTimer++
		if anim.FrameTimer >= ticksPerFrame {
			anim.FrameTimer = 0
			advanceFrame(anim, def)
		}
		if anim.Step >= 0 && anim.Step < len(def.Frames) {
			sprite.Frame = def.Frames[anim.Step]
		}
	})
}

// advanceFrame moves one step, bouncing at the ends for yoyo animations.
func advanceFrame(anim *component.Animation, def component.AnimationDef) {
	last := len(def.Frames) - 1
	if last == 0 {
		return
	}
	if def.Yoyo {
		if anim.Reverse {
			anim.Step--
			if anim.Step <= 0 {
				anim.Step = 0
				anim.Reverse = false
				if !def.Loop {
					anim.Playing = false
				}
			}
		} else {
			anim.Step++
			if anim.Step >= last {
				anim.Step = last
				anim.Reverse = true
			}
		}
		return
	}

	anim.Step++
	if anim.Step > last {
		if def.Loop {
			anim.Step = 0
		} else {
			anim.Step = last
			anim.Playing = false
		}
	}
}
