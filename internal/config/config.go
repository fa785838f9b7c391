// Package config provides YAML-based configuration loading for the platformer.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// PlatformerConfig contains all tunable settings for the platformer.
type PlatformerConfig struct {
	Physics PlatformerPhysics `yaml:"physics"`
	Player  PlatformerPlayer  `yaml:"player"`
	Death   PlatformerDeath   `yaml:"death"`
	Input   PlatformerInput   `yaml:"input"`
	Render  PlatformerRender  `yaml:"render"`
	Level   PlatformerLevel   `yaml:"level"`
}

// PlatformerPhysics defines per-tick integration parameters.
// Accelerations are in pixels per tick squared.
type PlatformerPhysics struct {
	Gravity    int     `yaml:"gravity"`
	RunAccel   int     `yaml:"run_accel"`
	JumpForce  int     `yaml:"jump_force"`
	JumpTicks  int     `yaml:"jump_ticks"`  // Max ticks of sustained upward thrust
	Friction   float64 `yaml:"friction"`    // Horizontal velocity multiplier per tick
	WallBounce float64 `yaml:"wall_bounce"` // Fraction of speed kept after a wall hit
}

// PlatformerPlayer defines where and how the player spawns.
type PlatformerPlayer struct {
	SpawnCol int  `yaml:"spawn_col"`
	SpawnRow int  `yaml:"spawn_row"` // Row the player's feet rest on
	Big      bool `yaml:"big"`
}

// PlatformerDeath defines the death sequence timing.
type PlatformerDeath struct {
	PauseTicks int `yaml:"pause_ticks"`
	HopDivisor int `yaml:"hop_divisor"` // Hop impulse is block size divided by this
}

// PlatformerInput defines host input behavior.
type PlatformerInput struct {
	// HoldMs is how long a key press counts as held on hosts that
	// never report key releases (terminals).
	HoldMs int `yaml:"hold_ms"`
}

// PlatformerRender defines how level pixels map onto terminal cells.
type PlatformerRender struct {
	CellWidth  int  `yaml:"cell_width"`  // Pixels per terminal column
	CellHeight int  `yaml:"cell_height"` // Pixels per terminal row
	ShowFPS    bool `yaml:"show_fps"`
}

// PlatformerLevel selects the level file.
type PlatformerLevel struct {
	Path string `yaml:"path"` // Empty means the built-in level
}

// Validate reports the first out-of-range value.
func (c PlatformerConfig) Validate() error {
	p := c.Physics
	switch {
	case p.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive, got %d", ErrInvalid, p.Gravity)
	case p.RunAccel <= 0:
		return fmt.Errorf("%w: physics.run_accel must be positive, got %d", ErrInvalid, p.RunAccel)
	case p.JumpForce <= 0:
		return fmt.Errorf("%w: physics.jump_force must be positive, got %d", ErrInvalid, p.JumpForce)
	case p.JumpTicks < 0:
		return fmt.Errorf("%w: physics.jump_ticks must not be negative, got %d", ErrInvalid, p.JumpTicks)
	case p.Friction <= 0 || p.Friction > 1:
		return fmt.Errorf("%w: physics.friction must be in (0, 1], got %g", ErrInvalid, p.Friction)
	case p.WallBounce < 0 || p.WallBounce > 1:
		return fmt.Errorf("%w: physics.wall_bounce must be in [0, 1], got %g", ErrInvalid, p.WallBounce)
	}

	if c.Player.SpawnCol < 0 || c.Player.SpawnRow < 0 {
		return fmt.Errorf("%w: player spawn must not be negative", ErrInvalid)
	}
	if c.Death.PauseTicks < 0 {
		return fmt.Errorf("%w: death.pause_ticks must not be negative, got %d", ErrInvalid, c.Death.PauseTicks)
	}
	if c.Death.HopDivisor <= 0 {
		return fmt.Errorf("%w: death.hop_divisor must be positive, got %d", ErrInvalid, c.Death.HopDivisor)
	}
	if c.Input.HoldMs < 0 {
		return fmt.Errorf("%w: input.hold_ms must not be negative, got %d", ErrInvalid, c.Input.HoldMs)
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		return fmt.Errorf("%w: render cell size must be positive", ErrInvalid)
	}
	return nil
}
