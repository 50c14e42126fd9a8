// Package session runs one level session: it builds the world from a level
// description, drives one simulation tick per frame, and tears everything
// down when the session ends.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/clock"
	"github.com/milk9111/barreljumper/config"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
	"github.com/milk9111/barreljumper/ecs/entity"
	"github.com/milk9111/barreljumper/ecs/system"
	"github.com/milk9111/barreljumper/levels"
)

// ErrClosed is returned by operations on a torn-down session.
var ErrClosed = errors.New("session: closed")

// Options carries collaborators a session can be given instead of its
// defaults. The zero value is usable.
type Options struct {
	Catalog assets.Catalog
	Clock   *clock.Clock
	Logger  *log.Logger
	// Input replaces the keyboard/pointer input system.
	Input ecs.System
	// CueNames and CuePlayers attach an audio bank when set.
	CueNames   []string
	CuePlayers []*audio.Player
	// PoolCapacity overrides the computed barrel pool size.
	PoolCapacity int
}

// Session is one run of a level, from load to outcome.
type Session struct {
	ID string

	cfg     config.Config
	desc    *levels.Description
	world   *ecs.World
	physics *ecs.PhysicsWorld
	clock   *clock.Clock
	logger  *log.Logger

	level      *entity.Level
	spawner    *system.BarrelSpawner
	outcome    *system.OutcomeHandler
	collisions *system.CollisionCoordinator

	ground     *system.GroundContactSystem
	input      ecs.System
	controller *system.PlayerControllerSystem
	step       *system.PhysicsSystem
	presenters *ecs.Scheduler
	render     *system.RenderSystem

	events []ecs.Event
	ticks  int
	closed bool
}

// New builds a session. Level problems surface as *levels.MalformedLevelError;
// a missing clock surfaces as system.ErrNoClock.
func New(cfg config.Config, desc *levels.Description, opts Options) (*Session, error) {
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = assets.Default()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("session").With("session", id[:8])

	s := &Session{
		ID:      id,
		cfg:     cfg,
		desc:    desc,
		world:   ecs.NewWorld(),
		physics: ecs.NewPhysicsWorld(cfg.Physics.Gravity),
		clock:   clk,
		logger:  logger,
	}
	s.world.SetPhysicsWorld(s.physics)

	if err := s.build(catalog, opts); err != nil {
		s.Teardown()
		return nil, err
	}

	s.logger.Info("session started", "level", desc.Name, "platforms", len(s.level.Platforms), "hazards", len(s.level.Hazards), "pool", s.spawner.Pool().Capacity())
	return s, nil
}

func (s *Session) build(catalog assets.Catalog, opts Options) error {
	s.outcome = system.NewOutcomeHandler(s.world, s.clock, s.cfg.Outcome.Transition())
	s.outcome.SetLogger(s.logger.WithPrefix("outcome"))

	level, err := entity.LoadLevel(s.world, catalog, s.desc, entity.PlayerTuning{
		MoveSpeed: s.cfg.Player.MoveSpeed,
		JumpSpeed: s.cfg.Player.JumpSpeed,
	})
	if err != nil {
		return fmt.Errorf("session: load level: %w", err)
	}
	s.level = level

	capacity := opts.PoolCapacity
	if capacity <= 0 {
		capacity = entity.PoolCapacity(level.Spawner.Interval, level.Spawner.Lifespan)
	}
	pool, err := entity.NewBarrelPool(s.world, catalog, capacity)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.spawner, err = system.NewBarrelSpawner(s.world, s.clock, pool, level.Spawner, level.Goal)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.spawner.SetLogger(s.logger.WithPrefix("spawner"))

	s.collisions = system.NewCollisionCoordinator(s.physics, s.outcome, s.spawner)
	s.collisions.Collider(component.CategoryPlayer, component.CategoryPlatform)
	s.collisions.Collider(component.CategoryGoal, component.CategoryPlatform)
	s.collisions.Collider(component.CategoryBarrel, component.CategoryPlatform)
	s.collisions.Overlap(component.CategoryPlayer, component.CategoryHazard)
	s.collisions.Overlap(component.CategoryPlayer, component.CategoryBarrel)
	s.collisions.Overlap(component.CategoryPlayer, component.CategoryGoal)

	if s.cfg.Joystick.Enabled {
		if _, err := entity.NewJoystick(s.world, entity.JoystickLayout{
			X:        s.cfg.Joystick.X,
			Y:        s.cfg.Joystick.Y,
			Radius:   s.cfg.Joystick.Radius,
			DeadZone: s.cfg.Joystick.DeadZone,
			Enabled:  true,
		}); err != nil {
			return fmt.Errorf("session: %w", err)
		}
	}
	if len(opts.CueNames) > 0 {
		if _, err := entity.NewAudio(s.world, opts.CueNames, opts.CuePlayers, s.cfg.Audio.Volume); err != nil {
			return fmt.Errorf("session: %w", err)
		}
	}

	s.ground = system.NewGroundContactSystem()
	s.input = opts.Input
	if s.input == nil {
		s.input = system.NewInputSystem()
	}
	s.controller = system.NewPlayerControllerSystem()
	s.step = system.NewPhysicsSystem(s.cfg.TickDuration().Seconds())
	s.presenters = ecs.NewScheduler(
		system.NewTransitionSystem(s.clock.Now),
		system.NewAnimationSystem(s.cfg.TPS),
		system.NewCameraSystem(),
		system.NewAudioSystem(),
	)
	s.render = system.NewRenderSystem(catalog)
	s.render.Debug = s.cfg.Debug

	if err := s.spawner.Start(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

// Update runs one tick covering dt of logical time. Timers due within dt run
// first; once an outcome has fired, input, the player and physics freeze.
func (s *Session) Update(dt time.Duration) error {
	if s.closed {
		return ErrClosed
	}
	s.ticks++
	s.clock.Advance(dt)

	if !s.outcome.Triggered() {
		s.ground.Update(s.world)
		s.input.Update(s.world)
		s.controller.Update(s.world)
		s.step.Update(s.world)
		s.collisions.Update(s.world)
	}
	s.presenters.Update(s.world)

	s.events = append(s.events, s.world.Events().Drain()...)
	return nil
}

// Events returns the presentation events produced since the last call.
func (s *Session) Events() []ecs.Event {
	out := s.events
	s.events = nil
	return out
}

// RestartRequested reports whether the session has finished and should be
// rebuilt from the level description.
func (s *Session) RestartRequested() bool {
	if s.closed {
		return false
	}
	if s.outcome.RestartRequested() {
		return true
	}
	_, ok := s.world.First(component.ReloadRequestComponent.Kind())
	return ok
}

// RequestRestart asks for a rebuild outside the outcome path, e.g. when the
// level file changed on disk.
func (s *Session) RequestRestart(reason string) {
	if s.closed {
		return
	}
	if _, err := entity.NewReloadRequest(s.world, reason); err != nil {
		s.logger.Error("request restart", "err", err)
	}
}

// Teardown cancels every pending timer and releases the physics world. No
// callback registered by this session runs afterwards.
func (s *Session) Teardown() {
	if s.closed {
		return
	}
	s.closed = true
	if s.spawner != nil {
		s.spawner.Stop()
	}
	if s.outcome != nil {
		s.outcome.Cancel()
	}
	s.clock.Stop()
	s.physics.Close()
	s.logger.Info("session ended", "ticks", s.ticks)
}

// Draw renders the world.
func (s *Session) Draw(screen *ebiten.Image) {
	if s.closed {
		return
	}
	s.render.Draw(s.world, screen)
}

func (s *Session) World() *ecs.World                { return s.world }
func (s *Session) Level() *entity.Level             { return s.level }
func (s *Session) Spawner() *system.BarrelSpawner   { return s.spawner }
func (s *Session) Outcome() *system.OutcomeHandler  { return s.outcome }
func (s *Session) Clock() *clock.Clock              { return s.clock }
func (s *Session) Closed() bool                     { return s.closed }
func (s *Session) Description() *levels.Description { return s.desc }
func (s *Session) Ticks() int                       { return s.ticks }
