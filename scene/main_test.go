package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/barreljumper/config"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/component"
	"github.com/milk9111/barreljumper/levels"
)

func testResources() *Resources {
	cfg := config.Default()
	cfg.Audio.Enabled = false
	cfg.Boot.DelayMS = 100
	return &Resources{Config: cfg, Input: idleInput{}}
}

// idleInput leaves every Input component untouched.
type idleInput struct{}

func (idleInput) Update(*ecs.World) {}

func startMain(t *testing.T, res *Resources) (*Manager, *Main) {
	t.Helper()
	m := NewManager()
	main := NewMain(m, res)
	if err := m.Register(main); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := m.Start(KeyMain); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := m.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	t.Cleanup(m.Shutdown)
	return m, main
}

func TestLoadingWaitsForDelay(t *testing.T) {
	res := testResources()
	m := NewManager()
	loading := NewLoading(m, res)
	home := &recordingScene{key: KeyHome}
	_ = m.Register(loading)
	_ = m.Register(home)
	_ = m.Start(KeyLoading)

	if err := m.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if loading.Progress() != 1 {
		t.Fatalf("expected loading complete, got %v", loading.Progress())
	}
	if res.Catalog == nil {
		t.Fatalf("expected the catalog to be loaded")
	}

	// 100ms at 60 ticks per second is 6 more ticks
	for i := 0; i < 4; i++ {
		if err := m.Update(); err != nil {
			t.Fatalf("update: %v", err)
		}
		if m.Current() != KeyLoading {
			t.Fatalf("left loading early on tick %d", i)
		}
	}
	for i := 0; i < 3; i++ {
		if err := m.Update(); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if m.Current() != KeyHome {
		t.Fatalf("expected home after the delay, got %q", m.Current())
	}
}

func TestLoadingFillsProgressBar(t *testing.T) {
	res := testResources()
	m := NewManager()
	loading := NewLoading(m, res)
	_ = m.Register(loading)
	_ = m.Register(&recordingScene{key: KeyHome})
	_ = m.Start(KeyLoading)
	if err := m.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}

	bar := loading.panel.bar
	if bar.Max != 3 {
		t.Fatalf("expected one bar step per load step, got max %d", bar.Max)
	}
	if bar.GetCurrent() != bar.Max {
		t.Fatalf("expected a full bar, got %d/%d", bar.GetCurrent(), bar.Max)
	}
}

func TestLoadingRejectsMissingLevel(t *testing.T) {
	res := testResources()
	res.Config.Level = "no-such-level"
	m := NewManager()
	_ = m.Register(NewLoading(m, res))
	_ = m.Start(KeyLoading)
	if err := m.Update(); err == nil {
		t.Fatalf("expected a load error")
	}
}

func TestMainRebuildsSessionOnRestart(t *testing.T) {
	m, main := startMain(t, testResources())
	first := main.Session()

	first.RequestRestart("test")
	if err := m.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !first.Closed() {
		t.Fatalf("old session should be torn down")
	}
	if main.Session() == first || main.Session().ID == first.ID {
		t.Fatalf("expected a fresh session")
	}
	if main.Restarts() != 1 {
		t.Fatalf("expected one restart, got %d", main.Restarts())
	}
}

func TestMainShowsOutcomeBanner(t *testing.T) {
	tests := []struct {
		category component.Category
		want     string
	}{
		{category: component.CategoryHazard, want: "Burned!"},
		{category: component.CategoryBarrel, want: "Squashed!"},
		{category: component.CategoryGoal, want: "You made it!"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			m, main := startMain(t, testResources())
			if main.banner != nil {
				t.Fatalf("banner shown before any outcome")
			}

			main.Session().Outcome().Trigger(tc.category)
			if err := m.Update(); err != nil {
				t.Fatalf("update: %v", err)
			}
			if main.banner == nil {
				t.Fatalf("expected a banner after the outcome")
			}
			if got := main.banner.title.Label; got != tc.want {
				t.Fatalf("expected banner %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMainReloadsChangedLevel(t *testing.T) {
	dir := t.TempDir()
	oldDir := levels.Dir
	levels.Dir = dir
	t.Cleanup(func() { levels.Dir = oldDir })

	m, main := startMain(t, testResources())
	if got := main.Session().Description().Spawner.Interval; got != 3000 {
		t.Fatalf("expected the embedded level first, got interval %d", got)
	}

	data, err := levels.ReadFile("level1")
	if err != nil {
		t.Fatalf("read level: %v", err)
	}
	edited := strings.Replace(string(data), "interval: 3000", "interval: 1234", 1)
	path := filepath.Join(dir, "level1.yaml")
	if err := os.WriteFile(path, []byte(edited), 0o644); err != nil {
		t.Fatalf("write level: %v", err)
	}

	main.LevelChanged(filepath.Join(dir, "level2.yaml"))
	if err := m.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if main.Restarts() != 0 {
		t.Fatalf("another level's change restarted the session")
	}

	main.LevelChanged(path)
	if err := m.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := main.Session().Description().Spawner.Interval; got != 1234 {
		t.Fatalf("expected reloaded interval 1234, got %d", got)
	}
}

func TestMainKeepsLastGoodLevel(t *testing.T) {
	dir := t.TempDir()
	oldDir := levels.Dir
	levels.Dir = dir
	t.Cleanup(func() { levels.Dir = oldDir })

	m, main := startMain(t, testResources())
	path := filepath.Join(dir, "level1.yaml")
	if err := os.WriteFile(path, []byte("platforms: []\n"), 0o644); err != nil {
		t.Fatalf("write level: %v", err)
	}

	main.LevelChanged(path)
	if err := m.Update(); err != nil {
		t.Fatalf("a broken edit should not stop the game: %v", err)
	}
	if main.Restarts() != 1 || main.Session().Description().Name != "level1" {
		t.Fatalf("expected a restart on the previous level")
	}
}
