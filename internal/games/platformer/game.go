// Package platformer implements a side-scrolling platformer: a tile level,
// one controllable character, and a fixed-tick simulation with
// axis-separated tile collision.
package platformer

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the registry identifier for the platformer.
const GameID = "platformer"

//go:embed levels/level1.txt
var builtinLevel []byte

// configPath and levelPath store custom paths set via CLI
var (
	configPath string
	levelPath  string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelPath overrides the level file named in the config.
func SetLevelPath(path string) {
	levelPath = path
}

// ResolveLevelPath returns the level file a run started with cfg uses:
// the SetLevelPath override, else the config's level path. Empty means
// the built-in level.
func ResolveLevelPath(cfg config.PlatformerConfig) string {
	if levelPath != "" {
		return levelPath
	}
	return cfg.Level.Path
}

// LoadLevelFile reads a level description from disk.
func LoadLevelFile(path string) (*TileGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening level %s: %w", path, err)
	}
	defer f.Close()

	g, err := LoadLevel(f)
	if err != nil {
		return nil, fmt.Errorf("loading level %s: %w", path, err)
	}
	return g, nil
}

// BuiltinLevel returns a fresh copy of the embedded level.
func BuiltinLevel() *TileGrid {
	g, err := LoadLevel(bytes.NewReader(builtinLevel))
	if err != nil {
		panic(fmt.Sprintf("platformer: embedded level is invalid: %v", err))
	}
	return g
}

// Game adapts the Simulator to the registry.Game interface.
type Game struct {
	sim     *Simulator
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
}

// New creates a new platformer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "One Day Platformer"
}

// Reset loads config and level and starts a fresh run.
// Unreadable config or level files fall back to the built-in ones.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	g.cfg = cfg

	path := ResolveLevelPath(cfg)
	level := BuiltinLevel()
	if path != "" {
		if custom, err := LoadLevelFile(path); err == nil {
			level = custom
		}
	}

	g.sim = NewSimulator(level, cfg)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.sim.Update(in)
	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.sim.Draw(NewScreenCanvas(dst, g.cfg.Render.CellWidth, g.cfg.Render.CellHeight))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.sim.Phase()
	return core.GameState{
		GameOver:   phase != PhasePlaying,
		Terminated: phase == PhaseTerminated,
	}
}

// Simulator exposes the running simulation for hosts that draw it themselves.
func (g *Game) Simulator() *Simulator {
	return g.sim
}

// Config returns the configuration the current run was started with.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
