package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/barreljumper/clock"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
	"github.com/milk9111/barreljumper/ecs/entity"
)

// ErrNoClock is returned when the spawner has no timer collaborator.
var ErrNoClock = errors.New("spawner: no clock")

// Scheduler is the timer collaborator: cancellable delayed and repeating
// callbacks on one logical clock. *clock.Clock satisfies it.
type Scheduler interface {
	Now() time.Duration
	After(d time.Duration, fn func()) clock.TimerID
	Every(d time.Duration, fn func()) clock.TimerID
	Cancel(id clock.TimerID) bool
}

// BarrelSpawner activates a pooled barrel at the origin entity every
// interval and retires it after its lifespan, or earlier when Retire is
// called. Retirement is idempotent.
type BarrelSpawner struct {
	world  *ecs.World
	clk    Scheduler
	pool   *entity.BarrelPool
	cfg    entity.SpawnerConfig
	origin ecs.Entity
	logger *log.Logger

	repeat  clock.TimerID
	spawned int
	retired int
}

func NewBarrelSpawner(w *ecs.World, clk Scheduler, pool *entity.BarrelPool, cfg entity.SpawnerConfig, origin ecs.Entity) (*BarrelSpawner, error) {
	if clk == nil {
		return nil, ErrNoClock
	}
	if c, ok := clk.(*clock.Clock); ok && c == nil {
		return nil, ErrNoClock
	}
	if w == nil {
		return nil, errors.New("spawner: nil world")
	}
	if pool == nil || pool.Capacity() == 0 {
		return nil, errors.New("spawner: empty pool")
	}
	if cfg.Interval <= 0 || cfg.Lifespan <= 0 {
		return nil, fmt.Errorf("spawner: interval and lifespan must be positive, got %v and %v", cfg.Interval, cfg.Lifespan)
	}
	return &BarrelSpawner{
		world:  w,
		clk:    clk,
		pool:   pool,
		cfg:    cfg,
		origin: origin,
		logger: log.WithPrefix("spawner"),
	}, nil
}

// SetLogger replaces the spawner's logger.
func (s *BarrelSpawner) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Start schedules the repeating spawn timer. Calling it twice is a no-op.
func (s *BarrelSpawner) Start() error {
	if s.repeat != 0 {
		return nil
	}
	s.repeat = s.clk.Every(s.cfg.Interval, s.Spawn)
	if s.repeat == 0 {
		return fmt.Errorf("spawner: schedule every %v: %w", s.cfg.Interval, ErrNoClock)
	}
	return nil
}

// Stop cancels the spawn timer and every pending lifespan timer.
func (s *BarrelSpawner) Stop() {
	if s.repeat != 0 {
		s.clk.Cancel(s.repeat)
		s.repeat = 0
	}
	for _, e := range s.pool.Entities() {
		barrel, ok := ecs.Get(s.world, e, component.BarrelComponent.Kind())
		if !ok || barrel.Lifespan == 0 {
			continue
		}
		s.clk.Cancel(clock.TimerID(barrel.Lifespan))
		barrel.Lifespan = 0
	}
}

// Spawn activates one barrel at the origin. When the pool is exhausted the
// oldest active barrel is retired and reused.
func (s *BarrelSpawner) Spawn() {
	e, ok := s.pool.Acquire()
	if !ok {
		oldest, found := s.pool.Oldest()
		if !found {
			return
		}
		s.logger.Debug("pool exhausted, recycling oldest barrel", "barrel", oldest)
		s.Retire(oldest)
		if e, ok = s.pool.Acquire(); !ok {
			return
		}
	}

	barrel, ok := ecs.Get(s.world, e, component.BarrelComponent.Kind())
	if !ok {
		return
	}
	x, y := s.originPosition()

	barrel.Active = true
	barrel.Generation++
	barrel.SpawnedAt = int64(s.clk.Now() / time.Millisecond)
	gen := barrel.Generation

	if t, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
		t.Hidden = false
	}
	if body, ok := ecs.Get(s.world, e, component.PhysicsBodyComponent.Kind()); ok {
		s.world.PhysicsWorld().Enable(e)
		body.Enabled = true
		if body.Body != nil {
			body.Body.SetPosition(cp.Vector{X: x, Y: y})
			body.Body.SetVelocity(s.cfg.Speed, 0)
		}
	}

	barrel.Lifespan = uint64(s.clk.After(s.cfg.Lifespan, func() { s.expire(e, gen) }))
	s.spawned++
	s.world.Emit(ecs.EventBarrelSpawn, e, barrel.Slot)
	s.logger.Debug("barrel spawned", "barrel", e, "slot", barrel.Slot, "x", x, "y", y)
}

func (s *BarrelSpawner) originPosition() (float64, float64) {
	t, ok := ecs.Get(s.world, s.origin, component.TransformComponent.Kind())
	if !ok {
		return 0, 0
	}
	return t.X, t.Y
}

func (s *BarrelSpawner) expire(e ecs.Entity, gen uint64) {
	barrel, ok := ecs.Get(s.world, e, component.BarrelComponent.Kind())
	if !ok || !barrel.Active || barrel.Generation != gen {
		return
	}
	// the timer has already fired
	barrel.Lifespan = 0
	s.Retire(e)
}

// Retire deactivates, hides and disables the barrel and returns its slot to
// the pool. It reports false if the barrel was not active.
func (s *BarrelSpawner) Retire(e ecs.Entity) bool {
	barrel, ok := ecs.Get(s.world, e, component.BarrelComponent.Kind())
	if !ok || !barrel.Active {
		return false
	}
	barrel.Active = false
	if barrel.Lifespan != 0 {
		s.clk.Cancel(clock.TimerID(barrel.Lifespan))
		barrel.Lifespan = 0
	}

	if t, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
		t.Hidden = true
	}
	if body, ok := ecs.Get(s.world, e, component.PhysicsBodyComponent.Kind()); ok {
		s.world.PhysicsWorld().Disable(e)
		body.Enabled = false
		if body.Body != nil {
			body.Body.SetVelocity(0, 0)
		}
	}

	s.pool.Release(barrel.Slot)
	s.retired++
	s.logger.Debug("barrel retired", "barrel", e, "slot", barrel.Slot)
	return true
}

// Spawned is the number of spawns so far.
func (s *BarrelSpawner) Spawned() int { return s.spawned }

// Retired is the number of retirements so far.
func (s *BarrelSpawner) Retired() int { return s.retired }

// Pool returns the spawner's barrel pool.
func (s *BarrelSpawner) Pool() *entity.BarrelPool { return s.pool }
