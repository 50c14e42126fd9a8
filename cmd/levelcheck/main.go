// levelcheck validates level files without starting the game.
//
// Usage:
//
//	levelcheck [files...]   - check the given files, or every embedded level
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/barreljumper/assets"
	"github.com/milk9111/barreljumper/ecs"
	"github.com/milk9111/barreljumper/ecs/entity"
	"github.com/milk9111/barreljumper/levels"
)

var errInvalidLevels = errors.New("one or more levels are invalid")

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("levelcheck", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "levelcheck [files...]",
	Short: "Validate Barrel Jumper level files",
	Long: `levelcheck parses each level, validates it, and builds it into a
scratch world so unknown asset keys are caught too. With no arguments the
embedded levels are checked.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = levels.Names()
		}
		return checkAll(cmd.OutOrStdout(), names)
	},
}

func checkAll(out io.Writer, names []string) error {
	failed := 0
	for _, name := range names {
		if err := check(name); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", name)
	}
	if failed > 0 {
		return fmt.Errorf("%w (%d of %d)", errInvalidLevels, failed, len(names))
	}
	return nil
}

func check(name string) error {
	desc, err := levels.Load(name)
	if err != nil {
		return err
	}
	w := ecs.NewWorld()
	_, err = entity.LoadLevel(w, assets.Default(), desc, entity.PlayerTuning{MoveSpeed: 1, JumpSpeed: -1})
	return err
}
