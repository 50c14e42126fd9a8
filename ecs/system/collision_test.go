package system

import (
	"testing"
	"time"

	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/clock"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
	"github.com/milk9111/barreljumper/ecs/entity"
)

type outcomeFixture struct {
	w           *ecs.World
	clk         *clock.Clock
	player      ecs.Entity
	spawner     *BarrelSpawner
	handler     *OutcomeHandler
	coordinator *CollisionCoordinator
}

// newOutcomeFixture builds a world without physics. Barrels spawn on the
// player when barrelOnPlayer is set, far away otherwise.
func newOutcomeFixture(t *testing.T, barrelOnPlayer bool) *outcomeFixture {
	t.Helper()
	w := ecs.NewWorld()
	catalog := assets.Default()
	clk := clock.New()

	player, err := entity.NewPlayer(w, catalog, 100, 100, entity.PlayerTuning{MoveSpeed: 100, JumpSpeed: -600})
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	goal, err := entity.NewGoal(w, catalog, 1000, 1000)
	if err != nil {
		t.Fatalf("new goal: %v", err)
	}
	origin := goal
	if barrelOnPlayer {
		origin = player
	}
	pool, err := entity.NewBarrelPool(w, catalog, 3)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	spawner, err := NewBarrelSpawner(w, clk, pool, defaultSpawn, origin)
	if err != nil {
		t.Fatalf("new spawner: %v", err)
	}

	handler := NewOutcomeHandler(w, clk, 500*time.Millisecond)
	coordinator := NewCollisionCoordinator(nil, handler, spawner)
	coordinator.Overlap(component.CategoryPlayer, component.CategoryHazard)
	coordinator.Overlap(component.CategoryPlayer, component.CategoryBarrel)
	coordinator.Overlap(component.CategoryPlayer, component.CategoryGoal)

	return &outcomeFixture{w: w, clk: clk, player: player, spawner: spawner, handler: handler, coordinator: coordinator}
}

func (f *outcomeFixture) moveTo(t *testing.T, e ecs.Entity, x, y float64) {
	t.Helper()
	tr, ok := ecs.Get(f.w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	tr.X, tr.Y = x, y
}

func TestSimultaneousOverlapsTriggerOnce(t *testing.T) {
	f := newOutcomeFixture(t, true)
	if _, err := entity.NewFire(f.w, assets.Default(), 105, 100); err != nil {
		t.Fatalf("new fire: %v", err)
	}
	f.spawner.Spawn()
	f.w.Events().Drain()

	f.coordinator.Update(f.w)
	f.coordinator.Update(f.w)

	events := f.w.Events().Drain()
	if n := countEvents(events, ecs.EventOutcomeTransition); n != 1 {
		t.Fatalf("expected one outcome_transition, got %d", n)
	}
	if countEvents(events, ecs.EventHazardTouch) != 1 || countEvents(events, ecs.EventBarrelHit) != 0 {
		t.Fatalf("expected the hazard rule to win, got %+v", events)
	}
	if f.handler.Category() != component.CategoryHazard {
		t.Fatalf("expected hazard outcome, got %v", f.handler.Category())
	}
	if !f.coordinator.Triggered() {
		t.Fatalf("coordinator should report triggered")
	}
}

func TestOutcomeCuePlaysOncePerSession(t *testing.T) {
	f := newOutcomeFixture(t, false)
	if _, err := entity.NewFire(f.w, assets.Default(), 100, 100); err != nil {
		t.Fatalf("new fire: %v", err)
	}

	hazardCues := 0
	restarts := 0
	for i := 0; i < 60; i++ {
		f.coordinator.Update(f.w)
		f.handler.Trigger(component.CategoryHazard)
		f.clk.Advance(16 * time.Millisecond)
		events := f.w.Events().Drain()
		hazardCues += countEvents(events, ecs.EventHazardTouch)
		restarts += countEvents(events, ecs.EventSessionRestart)
	}
	if hazardCues != 1 {
		t.Fatalf("expected one hazard cue, got %d", hazardCues)
	}
	if restarts != 1 {
		t.Fatalf("expected one restart request, got %d", restarts)
	}
	if !f.handler.RestartRequested() {
		t.Fatalf("restart should be requested after the transition")
	}
	if n := len(f.w.Query(component.ReloadRequestComponent.Kind())); n != 1 {
		t.Fatalf("expected one reload request entity, got %d", n)
	}
}

func TestRestartWaitsForTransition(t *testing.T) {
	f := newOutcomeFixture(t, false)
	f.moveTo(t, f.player, 1000, 1000)

	f.coordinator.Update(f.w)
	if countEvents(f.w.Events().Drain(), ecs.EventGoalReached) != 1 {
		t.Fatalf("expected goal cue")
	}
	if n := len(f.w.Query(component.TransitionRuntimeComponent.Kind())); n != 1 {
		t.Fatalf("expected a running transition, got %d", n)
	}

	f.clk.Advance(499 * time.Millisecond)
	if f.handler.RestartRequested() {
		t.Fatalf("restart requested before the transition finished")
	}
	f.clk.Advance(time.Millisecond)
	if !f.handler.RestartRequested() {
		t.Fatalf("restart not requested after the transition")
	}
}

func TestBarrelOverlapRetiresBarrel(t *testing.T) {
	f := newOutcomeFixture(t, true)
	f.spawner.Spawn()
	barrel := f.spawner.Pool().Active()[0]
	f.w.Events().Drain()

	f.coordinator.Update(f.w)

	if countEvents(f.w.Events().Drain(), ecs.EventBarrelHit) != 1 {
		t.Fatalf("expected barrel_hit")
	}
	b, _ := ecs.Get(f.w, barrel, component.BarrelComponent.Kind())
	if b.Active {
		t.Fatalf("barrel should be retired on hit")
	}
	if f.spawner.Retired() != 1 {
		t.Fatalf("expected one retirement, got %d", f.spawner.Retired())
	}
}

func TestInactiveBarrelIsIgnored(t *testing.T) {
	f := newOutcomeFixture(t, true)
	f.spawner.Spawn()
	barrel := f.spawner.Pool().Active()[0]
	f.spawner.Retire(barrel)
	f.moveTo(t, barrel, 100, 100)

	f.coordinator.Update(f.w)
	if f.coordinator.Triggered() || f.handler.Triggered() {
		t.Fatalf("inactive barrel triggered an outcome")
	}
}

func TestUnknownCategoryIsNoop(t *testing.T) {
	f := newOutcomeFixture(t, false)
	if f.handler.Trigger(component.CategoryPlatform) {
		t.Fatalf("platform is not an outcome category")
	}
	if f.handler.Triggered() || f.w.Events().Len() != 0 {
		t.Fatalf("unknown category changed state")
	}

	if _, err := entity.NewPlatform(f.w, assets.Default(), "block", 1, 100, 100); err != nil {
		t.Fatalf("new platform: %v", err)
	}
	f.coordinator.Overlap(component.CategoryPlayer, component.CategoryPlatform)
	f.coordinator.Update(f.w)
	if f.coordinator.Triggered() {
		t.Fatalf("platform overlap should not end the session")
	}
}

func TestOverlapBox(t *testing.T) {
	a := overlapBox{x: 0, y: 0, w: 10, h: 10}
	tests := []struct {
		name string
		b    overlapBox
		want bool
	}{
		{name: "inside", b: overlapBox{x: 2, y: 2, w: 2, h: 2}, want: true},
		{name: "partial", b: overlapBox{x: 9, y: 9, w: 5, h: 5}, want: true},
		{name: "touching edge", b: overlapBox{x: 10, y: 0, w: 5, h: 5}, want: false},
		{name: "apart", b: overlapBox{x: 20, y: 20, w: 5, h: 5}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.overlaps(tc.b); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
