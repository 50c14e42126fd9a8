package entity

import (
	"testing"
	"time"

	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
)

func TestPoolCapacity(t *testing.T) {
	tests := []struct {
		interval, lifespan time.Duration
		want               int
	}{
		{interval: 3 * time.Second, lifespan: 9 * time.Second, want: 4},
		{interval: 2500 * time.Millisecond, lifespan: 8 * time.Second, want: 5},
		{interval: time.Second, lifespan: 500 * time.Millisecond, want: 2},
		{interval: 0, lifespan: time.Second, want: 1},
	}
	for _, tc := range tests {
		if got := PoolCapacity(tc.interval, tc.lifespan); got != tc.want {
			t.Fatalf("PoolCapacity(%v, %v): expected %d, got %d", tc.interval, tc.lifespan, tc.want, got)
		}
	}
}

func TestBarrelPoolAcquireRelease(t *testing.T) {
	w := ecs.NewWorld()
	pool, err := NewBarrelPool(w, assets.Default(), 2)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}

	for _, e := range pool.Entities() {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if !tr.Hidden {
			t.Fatalf("pooled barrels start hidden")
		}
	}

	a, ok := pool.Acquire()
	if !ok {
		t.Fatalf("expected a free slot")
	}
	b, ok := pool.Acquire()
	if !ok || a == b {
		t.Fatalf("expected a second distinct slot")
	}
	if _, ok := pool.Acquire(); ok {
		t.Fatalf("pool should be exhausted")
	}
	if oldest, _ := pool.Oldest(); oldest != a {
		t.Fatalf("expected %v to be oldest, got %v", a, oldest)
	}

	barrelA, _ := ecs.Get(w, a, component.BarrelComponent.Kind())
	if !pool.Release(barrelA.Slot) {
		t.Fatalf("release should succeed")
	}
	if pool.Release(barrelA.Slot) {
		t.Fatalf("double release should be a no-op")
	}
	if active := pool.Active(); len(active) != 1 || active[0] != b {
		t.Fatalf("expected only %v active, got %v", b, active)
	}
	if again, ok := pool.Acquire(); !ok || again != a {
		t.Fatalf("expected the released slot back, got %v", again)
	}
}

func TestNewBarrelPoolRejectsZeroCapacity(t *testing.T) {
	if _, err := NewBarrelPool(ecs.NewWorld(), assets.Default(), 0); err == nil {
		t.Fatalf("expected an error")
	}
}
