package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in platformer configuration.
// It matches defaults/platformer.yaml and is used if that file fails to parse.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:    1,
			RunAccel:   2,
			JumpForce:  3,
			JumpTicks:  8,
			Friction:   0.95,
			WallBounce: 0.25,
		},
		Player: PlatformerPlayer{
			SpawnCol: 2,
			SpawnRow: 12,
			Big:      true,
		},
		Death: PlatformerDeath{
			PauseTicks: 64,
			HopDivisor: 3,
		},
		Input: PlatformerInput{
			HoldMs: 300,
		},
		Render: PlatformerRender{
			CellWidth:  16,
			CellHeight: 32,
			ShowFPS:    true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
