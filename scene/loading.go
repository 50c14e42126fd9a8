package scene

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/clock"
	"github.com/milk9111/barreljumper/levels"
)

const (
	progressWidth  = 150
	progressHeight = 30
)

// Loading prepares shared resources, shows a progress bar, and starts the
// home scene once the configured delay has passed on its own clock.
type Loading struct {
	manager *Manager
	res     *Resources
	clk     *clock.Clock
	logger  *log.Logger
	panel   *loadingPanel

	steps    int
	done     int
	finished bool
}

func NewLoading(m *Manager, res *Resources) *Loading {
	return &Loading{manager: m, res: res, logger: log.WithPrefix("loading")}
}

func (l *Loading) Key() string { return KeyLoading }

func (l *Loading) Init() {
	l.clk = clock.New()
	l.steps, l.done = 0, 0
	l.finished = false
}

func (l *Loading) Preload() error {
	steps := []struct {
		name string
		run  func() error
	}{
		{name: "catalog", run: func() error {
			if l.res.Catalog == nil {
				l.res.Catalog = assets.Default()
			}
			return nil
		}},
		{name: "level", run: func() error {
			// fail before the main scene if the level is unusable
			_, err := levels.Load(l.res.Config.Level)
			return err
		}},
		{name: "audio", run: func() error {
			if l.res.Config.Audio.Enabled {
				l.res.loadAudio()
			}
			return nil
		}},
	}

	l.steps = len(steps)
	l.panel = newLoadingPanel(l.steps)
	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("load %s: %w", step.name, err)
		}
		l.done++
		l.panel.bar.SetCurrent(l.done)
		l.logger.Debug("loaded", "step", step.name, "progress", l.Progress())
	}
	return nil
}

func (l *Loading) Create() error {
	delay := l.res.Config.Boot.Delay()
	if delay <= 0 {
		l.finish()
		return nil
	}
	l.clk.After(delay, l.finish)
	return nil
}

func (l *Loading) finish() {
	if l.finished {
		return
	}
	l.finished = true
	if err := l.manager.Start(KeyHome); err != nil {
		l.logger.Error("start home", "err", err)
	}
}

func (l *Loading) Update() error {
	l.clk.Advance(l.res.Config.TickDuration())
	if l.panel != nil {
		l.panel.ui.Update()
	}
	return nil
}

// Progress is the fraction of load steps completed.
func (l *Loading) Progress() float64 {
	if l.steps == 0 {
		return 0
	}
	return float64(l.done) / float64(l.steps)
}

func (l *Loading) Draw(screen *ebiten.Image) {
	if l.panel != nil {
		l.panel.ui.Draw(screen)
	}
}

// Shutdown stops the loading clock.
func (l *Loading) Shutdown() {
	if l.clk != nil {
		l.clk.Stop()
	}
}
