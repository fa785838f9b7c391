package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// maxCatchUp bounds the simulation ticks run for one Ebitengine update.
const maxCatchUp = 8

// bindings maps game actions to the keys that hold them.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionJump:  {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
}

// pollInput builds the input frame from the keys currently down.
func pollInput(pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range bindings {
		for _, k := range keys {
			if pressed(k) {
				in.Set(action)
				break
			}
		}
	}
	return in
}

// Options configures the window host.
type Options struct {
	Scale   float64 // Window size relative to the viewport
	ShowFPS bool
	Title   string
}

// OptionsFromConfig derives window options from the game configuration.
func OptionsFromConfig(cfg config.PlatformerConfig) Options {
	return Options{
		Scale:   0.75,
		ShowFPS: cfg.Render.ShowFPS,
		Title:   "One Day Platformer",
	}
}

// Host implements ebiten.Game around a platformer simulator.
// Ebitengine runs Update once per frame; the simulator still advances
// in fixed ticks of core.TickDuration.
type Host struct {
	sim     *platformer.Simulator
	opts    Options
	logger  *log.Logger
	clock   *core.FixedStep
	last    time.Time
	pressed func(ebiten.Key) bool

	pixel     *ebiten.Image
	fpsLabel  string
	fpsImage  *ebiten.Image
	lastPhase platformer.Phase
}

// NewHost creates a host for sim.
func NewHost(sim *platformer.Simulator, opts Options, logger *log.Logger) *Host {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &Host{
		sim:     sim,
		opts:    opts,
		logger:  logger,
		clock:   core.NewFixedStep(core.TickDuration, maxCatchUp),
		pressed: ebiten.IsKeyPressed,
		pixel:   pixel,
	}
}

// Update advances the simulation by the ticks owed since the last frame.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.logger.Info("quit requested")
		return ebiten.Termination
	}

	now := time.Now()
	elapsed := core.TickDuration
	if !h.last.IsZero() {
		elapsed = now.Sub(h.last)
	}
	h.last = now

	for range h.clock.Advance(elapsed) {
		h.sim.Update(pollInput(h.pressed))
		h.logPhase()
		if h.sim.Phase() == platformer.PhaseTerminated {
			return ebiten.Termination
		}
	}
	return nil
}

// logPhase reports phase changes.
func (h *Host) logPhase() {
	phase := h.sim.Phase()
	if phase == h.lastPhase {
		return
	}
	h.logger.Info("phase changed", "from", h.lastPhase, "to", phase, "x", h.sim.Player().X)
	h.lastPhase = phase
}

// Draw renders the simulation and the FPS overlay.
func (h *Host) Draw(screen *ebiten.Image) {
	h.sim.Draw(NewPixelCanvas(newImagePainter(screen, h.pixel)))

	if !h.opts.ShowFPS {
		return
	}
	label := fmt.Sprintf("FPS %.0f", ebiten.ActualFPS())
	if label != h.fpsLabel || h.fpsImage == nil {
		if h.fpsImage != nil {
			h.fpsImage.Deallocate()
		}
		h.fpsImage = ebiten.NewImageFromImage(labelImage(label))
		h.fpsLabel = label
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(8, 8)
	screen.DrawImage(h.fpsImage, &op)
}

// Layout keeps the logical screen at viewport size; Ebitengine scales it to the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return platformer.ViewportWidth, platformer.ViewportHeight
}

// Run opens the window and blocks until it closes or the run terminates.
func Run(sim *platformer.Simulator, opts Options, logger *log.Logger) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	ebiten.SetWindowSize(
		int(float64(platformer.ViewportWidth)*opts.Scale),
		int(float64(platformer.ViewportHeight)*opts.Scale),
	)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	err := ebiten.RunGame(NewHost(sim, opts, logger))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
