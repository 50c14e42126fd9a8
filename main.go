// barreljumper runs the Barrel Jumper platform game.
//
// Usage:
//
//	barreljumper [--level name] [--config file] [--debug] [--watch]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/barreljumper/config"
	"github.com/milk9111/barreljumper/levels"
	"github.com/milk9111/barreljumper/scene"
)

var (
	flagLevel  string
	flagConfig string
	flagDebug  bool
	flagWatch  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("barreljumper", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "barreljumper",
	Short: "Barrel Jumper - climb to the goal, dodge the barrels",
	Long: `Barrel Jumper is a small side-scrolling platform game. Walk with the
arrow keys, WASD or the on-screen stick, jump with up, and reach the goal
without touching fire or the barrels it throws.

Examples:
  barreljumper
  barreljumper --level level2
  barreljumper --config ./my-config.yaml --debug --watch`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "level name in levels/ (basename, .yaml optional)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a config YAML overriding the defaults")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging and collider outlines")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "restart the session when the level file changes on disk")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("level") {
		cfg.Level = flagLevel
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = flagDebug
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = flagWatch
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.SetReportTimestamp(true)

	res := &scene.Resources{Config: cfg}
	if cfg.Watch {
		watcher, err := levels.NewWatcher(levels.Dir)
		if err != nil {
			// the game still runs without hot reload
			log.Warn("level watcher disabled", "dir", levels.Dir, "err", err)
		} else {
			defer watcher.Close()
			res.Watcher = watcher
		}
	}

	game, err := NewGame(res)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	defer game.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(float64(cfg.Screen.Width)*cfg.Screen.Scale), int(float64(cfg.Screen.Height)*cfg.Screen.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	log.Info("starting", "level", cfg.Level, "tps", cfg.TPS, "watch", res.Watcher != nil)
	return ebiten.RunGame(game)
}
