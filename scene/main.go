package scene

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
	"github.com/milk9111/barreljumper/levels"
	"github.com/milk9111/barreljumper/session"
)

var outcomeBanners = map[component.Category]struct {
	text  string
	color color.RGBA
}{
	component.CategoryGoal:   {text: "You made it!", color: color.RGBA{R: 0x9a, G: 0xd9, B: 0x8d, A: 0xff}},
	component.CategoryHazard: {text: "Burned!", color: color.RGBA{R: 0xff, G: 0x8a, B: 0x40, A: 0xff}},
	component.CategoryBarrel: {text: "Squashed!", color: color.RGBA{R: 0xff, G: 0x5a, B: 0x5a, A: 0xff}},
}

// Main owns the running session. When the session asks for a restart it is
// torn down and rebuilt from the level description, re-read from disk if the
// level file changed.
type Main struct {
	manager *Manager
	res     *Resources
	logger  *log.Logger

	desc     *levels.Description
	sess     *session.Session
	restarts int
	reload   bool
	outcome  component.Category
	ended    bool
	banner   *outcomeBanner
}

func NewMain(m *Manager, res *Resources) *Main {
	return &Main{manager: m, res: res}
}

func (s *Main) Key() string { return KeyMain }

func (s *Main) Init() {
	s.logger = log.WithPrefix("main")
	s.restarts = 0
	s.reload = false
}

func (s *Main) Preload() error {
	desc, err := levels.Load(s.res.Config.Level)
	if err != nil {
		return err
	}
	s.desc = desc
	return nil
}

func (s *Main) Create() error {
	return s.startSession()
}

func (s *Main) startSession() error {
	sess, err := session.New(s.res.Config, s.desc, session.Options{
		Catalog:    s.res.Catalog,
		Logger:     s.logger,
		Input:      s.res.Input,
		CueNames:   s.res.CueNames,
		CuePlayers: s.res.CuePlayers,
	})
	if err != nil {
		return err
	}
	s.sess = sess
	s.ended = false
	s.outcome = component.CategoryNone
	s.banner = nil
	return nil
}

// LevelChanged marks the level for re-reading when the changed file is the
// running level, and asks the session to restart.
func (s *Main) LevelChanged(path string) {
	if !levels.SameLevel(path, s.res.Config.Level) {
		return
	}
	s.logger.Info("level file changed", "path", path)
	s.reload = true
	if s.sess != nil {
		s.sess.RequestRestart("level file changed")
	}
}

func (s *Main) Update() error {
	for {
		changed, ok := s.res.Watcher.Poll()
		if !ok {
			break
		}
		s.LevelChanged(changed)
	}

	if err := s.sess.Update(s.res.Config.TickDuration()); err != nil {
		return err
	}
	for _, ev := range s.sess.Events() {
		s.logger.Debug("event", "type", ev.Type, "entity", ev.Entity)
		if ev.Type == ecs.EventOutcomeTransition {
			if cat, ok := ev.Data.(component.Category); ok {
				s.outcome = cat
				s.ended = true
				if b, ok := outcomeBanners[cat]; ok {
					s.banner = newOutcomeBanner(b.text, b.color)
				}
			}
		}
	}
	if s.banner != nil {
		s.banner.ui.Update()
	}

	if s.sess.RestartRequested() {
		return s.restart()
	}
	return nil
}

func (s *Main) restart() error {
	s.sess.Teardown()
	if s.reload {
		s.reload = false
		desc, err := levels.Load(s.res.Config.Level)
		if err != nil {
			// keep playing the last good version
			s.logger.Error("reload level", "err", err)
		} else {
			s.desc = desc
		}
	}
	s.restarts++
	if err := s.startSession(); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	return nil
}

// Session returns the running session.
func (s *Main) Session() *session.Session { return s.sess }

// Restarts counts rebuilt sessions.
func (s *Main) Restarts() int { return s.restarts }

func (s *Main) Draw(screen *ebiten.Image) {
	if s.sess == nil {
		return
	}
	s.sess.Draw(screen)

	hud := fmt.Sprintf("%s  tries: %d", s.desc.Name, s.restarts+1)
	if s.res.Config.Debug {
		hud += fmt.Sprintf("  fps: %.0f  barrels: %d", ebiten.ActualFPS(), len(s.sess.Spawner().Pool().Active()))
	}
	drawText(screen, hud, 8, 8, color.White, false)

	if s.banner != nil {
		s.banner.ui.Draw(screen)
	}
}

func (s *Main) Shutdown() {
	if s.sess != nil {
		s.sess.Teardown()
		s.sess = nil
	}
}
