package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the platformer in a desktop window.

Controls:
  ←/A, →/D   - Run
  Space/↑/W  - Jump (hold for higher jumps)
  Q/Esc      - Quit

Examples:
  platformer window
  platformer window --scale 1
  platformer window --level ./levels/custom.txt`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0.75, "Window size relative to the 1152x896 viewport")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})

	if _, err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game := platformer.New()
	game.Reset(core.DefaultConfig())

	opts := window.OptionsFromConfig(game.Config())
	opts.Scale = flagScale

	logger.Info("starting", "columns", game.Simulator().Level().Length())
	if err := window.Run(game.Simulator(), opts, logger); err != nil {
		logger.Error("window closed with error", "error", err)
		os.Exit(1)
	}
	logger.Info("bye")
}
