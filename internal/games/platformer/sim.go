package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// frameWrap bounds the global animation frame counter.
const frameWrap = 256

// Phase is the simulator's top-level state. Transitions only move forward.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseDying
	PhaseTerminated
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Simulator owns the level, the player and the camera, and advances
// them one fixed tick per Update call.
type Simulator struct {
	physics config.PlatformerPhysics
	death   config.PlatformerDeath

	level     *TileGrid
	player    *Actor
	camera    Camera
	viewportW int

	phase      Phase
	frame      int // Global animation counter, wraps at frameWrap
	phaseFrame int // Ticks spent in the current phase
}

// NewSimulator places the player at the configured spawn cell, standing
// on the top edge of the spawn row.
func NewSimulator(level *TileGrid, cfg config.PlatformerConfig) *Simulator {
	h := BlockSize
	if cfg.Player.Big {
		h = 2 * BlockSize
	}
	x := cfg.Player.SpawnCol*BlockSize + BlockSize/4
	y := cfg.Player.SpawnRow*BlockSize - h

	return &Simulator{
		physics:   cfg.Physics,
		death:     cfg.Death,
		level:     level,
		player:    NewActor(x, y, cfg.Player.Big),
		viewportW: ViewportWidth,
	}
}

// Update advances the simulation by one tick using the held buttons.
// Once terminated, Update does nothing.
func (s *Simulator) Update(in core.InputFrame) {
	if s.phase == PhaseTerminated {
		return
	}

	s.level.AdvanceBump()

	switch s.phase {
	case PhasePlaying:
		s.stepPlaying(in)
	case PhaseDying:
		s.stepDying()
	}

	s.player.SelectAnimationFrame()
	s.frame = (s.frame + 1) % frameWrap
}

// stepPlaying integrates the player and resolves collisions.
func (s *Simulator) stepPlaying(in core.InputFrame) {
	p := s.player
	phys := s.physics

	ax, ay := 0, phys.Gravity
	if in.Has(core.ActionRight) {
		ax = phys.RunAccel
		p.Facing = 1
	}
	if in.Has(core.ActionLeft) {
		ax -= phys.RunAccel
		p.Facing = -1
	}
	if in.Has(core.ActionJump) && (p.OnFloor || p.Jumping < phys.JumpTicks) {
		ay = -phys.JumpForce
		p.OnFloor = false
		p.Jumping++
	}

	// Contacts come from the position before this tick's move.
	near := p.SurroundingObstacles(s.level)

	p.VY = math.Trunc(p.VY + float64(ay))
	p.Y += int(p.VY)
	p.VX = math.Trunc(p.VX+float64(ax)) * phys.Friction
	p.X += int(p.VX)

	if p.VY < 0 && near.Top != nil {
		p.Y = (near.Top.Row+1)*BlockSize + 1
		p.VY = -p.VY
		s.level.TriggerBump(*near.Top)
	}
	if p.VY > 0 && near.Bottom != nil {
		p.Y = near.Bottom.Row*BlockSize - p.H - 1
		p.VY = 0
		p.Jumping = 0
		p.OnFloor = true
	}

	if p.VX < 0 && near.Left != nil {
		p.X = (near.Left.Col + 1) * BlockSize
		p.VX = -p.VX * phys.WallBounce
	}
	if p.VX > 0 && near.Right != nil {
		p.X = near.Right.Col*BlockSize - p.W - 1
		p.VX = -p.VX * phys.WallBounce
	}

	s.camera.Update(p.X, s.viewportW, s.level.Length())

	if p.Y > (VBlocks-1)*BlockSize {
		s.enter(PhaseDying)
	}
}

// stepDying freezes the player, then plays the death hop until the
// player has dropped below the level.
func (s *Simulator) stepDying() {
	p := s.player
	tick := s.phaseFrame
	s.phaseFrame++

	p.Dead = true
	p.VX = 0

	switch {
	case tick < s.death.PauseTicks:
		p.VY = 0
		return
	case tick == s.death.PauseTicks:
		p.VY = -float64(BlockSize / s.death.HopDivisor)
	default:
		p.VY += float64(s.physics.Gravity)
	}
	p.Y += int(p.VY)

	if p.Y > (VBlocks+1)*BlockSize {
		s.enter(PhaseTerminated)
	}
}

func (s *Simulator) enter(p Phase) {
	s.phase = p
	s.phaseFrame = 0
}

// Draw renders the sky, the level and the player through c.
// Draw only reads simulator state.
func (s *Simulator) Draw(c Canvas) {
	c.Fill(SkyColor)
	s.level.Draw(c, s.camera.Offset, s.frame)
	s.player.Draw(c, s.player.X-s.camera.Offset, s.player.Y)
}

// Phase returns the current phase.
func (s *Simulator) Phase() Phase {
	return s.phase
}

// Player returns the player actor.
func (s *Simulator) Player() *Actor {
	return s.player
}

// Level returns the tile grid.
func (s *Simulator) Level() *TileGrid {
	return s.level
}

// CameraOffset returns the horizontal scroll offset in pixels.
func (s *Simulator) CameraOffset() int {
	return s.camera.Offset
}

// Frame returns the global animation frame counter.
func (s *Simulator) Frame() int {
	return s.frame
}
