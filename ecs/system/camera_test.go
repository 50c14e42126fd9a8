package system

import (
	"testing"
	"time"

	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
	"github.com/milk9111/barreljumper/ecs/entity"
)

func TestCameraFollowsAndClamps(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{name: "centred", x: 400, y: 300, wantX: 300, wantY: 200},
		{name: "clamped top left", x: 10, y: 10, wantX: 0, wantY: 0},
		{name: "clamped bottom right", x: 790, y: 590, wantX: 600, wantY: 400},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			target := ecs.CreateEntity(w)
			_ = ecs.Add(w, target, component.TransformComponent.Kind(), &component.Transform{X: tc.x, Y: tc.y})
			bounds := ecs.CreateEntity(w)
			_ = ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 800, Height: 600})
			camEntity, err := entity.NewCamera(w, target, 200, 200)
			if err != nil {
				t.Fatalf("new camera: %v", err)
			}
			cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())

			NewCameraSystem().Update(w)
			if cam.X != tc.wantX || cam.Y != tc.wantY {
				t.Fatalf("expected (%v,%v), got (%v,%v)", tc.wantX, tc.wantY, cam.X, cam.Y)
			}
		})
	}
}

func TestCameraSystemIgnoresUntaggedCameras(t *testing.T) {
	w := ecs.NewWorld()
	target := ecs.CreateEntity(w)
	_ = ecs.Add(w, target, component.TransformComponent.Kind(), &component.Transform{X: 400, Y: 300})
	stray := ecs.CreateEntity(w)
	cam := &component.Camera{Target: uint64(target), ViewW: 200, ViewH: 200}
	_ = ecs.Add(w, stray, component.CameraComponent.Kind(), cam)

	NewCameraSystem().Update(w)
	if cam.X != 0 || cam.Y != 0 {
		t.Fatalf("untagged camera moved to (%v,%v)", cam.X, cam.Y)
	}
}

func TestTransitionAlpha(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	tr := &component.TransitionRuntime{Started: time.Second, Duration: 500 * time.Millisecond}
	_ = ecs.Add(w, e, component.TransitionRuntimeComponent.Kind(), tr)

	now := time.Second
	sys := NewTransitionSystem(func() time.Duration { return now })

	for _, step := range []struct {
		at   time.Duration
		want float64
	}{
		{at: time.Second, want: 0},
		{at: 1250 * time.Millisecond, want: 0.5},
		{at: 2 * time.Second, want: 1},
	} {
		now = step.at
		sys.Update(w)
		if tr.Alpha != step.want {
			t.Fatalf("at %v: expected alpha %v, got %v", step.at, step.want, tr.Alpha)
		}
	}
}

func TestAudioRequestCancelsStop(t *testing.T) {
	a := &component.Audio{Names: []string{"walk"}, Play: []bool{false}, Stop: []bool{false}}
	stopCue(a, "walk")
	if !a.Stop[0] {
		t.Fatalf("expected stop flag")
	}
	if !a.Request("walk") || a.Stop[0] || !a.Play[0] {
		t.Fatalf("request should replace the pending stop, got %+v", a)
	}
	if a.Request("missing") {
		t.Fatalf("unknown cue should not be requested")
	}
}
