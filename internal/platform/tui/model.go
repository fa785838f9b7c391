package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// maxCatchUp bounds the simulation ticks run for one render frame.
const maxCatchUp = 8

// Options tunes host behavior that the game itself does not see.
type Options struct {
	HoldDuration  time.Duration // How long a key press counts as held
	ShowFPS       bool
	ScreenshotDir string // Empty means ~/.platformer/screenshots
}

// OptionsFromConfig derives host options from the game configuration.
func OptionsFromConfig(cfg config.PlatformerConfig) Options {
	return Options{
		HoldDuration: time.Duration(cfg.Input.HoldMs) * time.Millisecond,
		ShowFPS:      cfg.Render.ShowFPS,
	}
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

var fpsBackdrop = core.Cell{Rune: ' ', Fg: core.ColorBrightWhite, Bg: core.ColorBlack}

// fpsMeter measures render frames per second over one-second windows.
type fpsMeter struct {
	frames int
	since  time.Time
	value  float64
}

// Frame records one rendered frame at now.
func (f *fpsMeter) Frame(now time.Time) {
	if f.since.IsZero() {
		f.since = now
	}
	f.frames++
	if d := now.Sub(f.since); d >= time.Second {
		f.value = float64(f.frames) / d.Seconds()
		f.frames = 0
		f.since = now
	}
}

// Model is the Bubble Tea model for running a game.
// Render frames arrive at the host tick rate; the game advances in fixed
// ticks of core.TickDuration regardless.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keys      KeyMap
	help      help.Model
	latch     *KeyLatch
	clock     *core.FixedStep
	fps       *fpsMeter
	now       func() time.Time
	lastTick  time.Time
	gameState core.GameState
	status    string
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		latch:  NewKeyLatch(opts.HoldDuration),
		clock:  core.NewFixedStep(core.TickDuration, maxCatchUp),
		fps:    &fpsMeter{},
		now:    time.Now,
	}
	m.help.Width = cfg.ScreenW
	m.fitScreen()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		// No key releases arrive while unfocused.
		m.latch.Release()
		return m, nil

	case tea.ResumeMsg:
		m.latch.Release()
		m.resync()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.status = "screenshot failed: " + err.Error()
		} else {
			m.status = "saved " + path
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.latch.Press(action, m.now())
	}
	return m, nil
}

// handleResize processes window resize events.
// The game keeps running; the canvas adapts on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// handleTick runs the fixed ticks owed since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := core.TickDuration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now
	m.fps.Frame(now)

	for range m.clock.Advance(elapsed) {
		result := m.game.Step(m.latch.Frame(now))
		m.gameState = result.State
		if m.gameState.Terminated {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// resync drops the wall-clock time spent suspended so the game resumes
// without a burst of catch-up ticks.
func (m *Model) resync() {
	m.clock.Reset()
	m.lastTick = time.Time{}
}

// fitScreen sizes the game screen to the terminal minus the footer.
func (m *Model) fitScreen() {
	h := m.config.ScreenH - lipgloss.Height(m.footer())
	m.screen.Resize(m.config.ScreenW, core.Max(h, 1))
}

// footer renders the help line and the latest status message.
func (m Model) footer() string {
	out := m.help.View(m.keys)
	if m.status != "" {
		out += "  " + statusStyle.Render(m.status)
	}
	return out
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		dir = filepath.Join(home, ".platformer", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating screenshot directory: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("writing screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.opts.ShowFPS {
		label := fmt.Sprintf("FPS %.0f", m.fps.value)
		m.screen.DrawRect(core.NewRect(0, 0, len(label)+2, 1), fpsBackdrop)
		m.screen.DrawText(1, 0, label, core.ColorBrightWhite)
	}

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
