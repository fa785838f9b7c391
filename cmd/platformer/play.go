package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the platformer in the terminal.

Controls:
  ←/A, →/D   - Run
  Space/↑/W  - Jump (hold for higher jumps)
  Ctrl+S     - Save a text screenshot
  ?          - Toggle help
  Q/Esc      - Quit

Terminals only report key presses, so a key counts as held for
input.hold_ms after its last press (or auto-repeat).

Examples:
  platformer play
  platformer play --level ./levels/custom.txt
  platformer play --config ./platformer.yaml --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(platformer.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, runtime, tui.OptionsFromConfig(cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration the game will use. A broken custom
// config or level file is an error here; the game itself would fall back
// to the built-in ones.
func loadConfig() (config.PlatformerConfig, error) {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			return cfg, fmt.Errorf("config rejected: %w", err)
		}
		return cfg, err
	}

	if path := platformer.ResolveLevelPath(cfg); path != "" {
		if _, err := platformer.LoadLevelFile(path); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
