package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded defaults differ from DefaultPlatformerConfig:\n got %+v\nwant %+v", cfg, DefaultPlatformerConfig())
	}
}

func TestLoadPlatformerFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if cfg.Physics.JumpTicks != 8 || cfg.Death.PauseTicks != 64 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPlatformerUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".platformer", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("input:\n  hold_ms: 120\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if cfg.Input.HoldMs != 120 {
		t.Errorf("hold_ms = %d, expected 120 from user config", cfg.Input.HoldMs)
	}
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		check   func(t *testing.T, cfg PlatformerConfig)
	}{
		{
			name: "partial file overlays defaults",
			body: "physics:\n  jump_ticks: 12\nlevel:\n  path: ./my.txt\n",
			check: func(t *testing.T, cfg PlatformerConfig) {
				if cfg.Physics.JumpTicks != 12 {
					t.Errorf("jump_ticks = %d, expected 12", cfg.Physics.JumpTicks)
				}
				if cfg.Physics.Friction != 0.95 {
					t.Errorf("friction should keep default, got %g", cfg.Physics.Friction)
				}
				if cfg.Level.Path != "./my.txt" {
					t.Errorf("level path = %q", cfg.Level.Path)
				}
			},
		},
		{
			name:    "out of range value",
			body:    "physics:\n  friction: 1.5\n",
			wantErr: ErrInvalid,
		},
		{
			name: "malformed yaml",
			body: "physics: [",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "custom.yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0o600); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadPlatformer(path)
			if tc.check != nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				tc.check(t, cfg)
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("error %v should wrap %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadPlatformerMissingCustomPath(t *testing.T) {
	cfg, err := LoadPlatformer(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("missing custom file should be an error")
	}
	if cfg != DefaultPlatformerConfig() {
		t.Error("failed load should still return usable defaults")
	}
}

func TestValidate(t *testing.T) {
	mutate := []struct {
		name string
		fn   func(c *PlatformerConfig)
	}{
		{"gravity", func(c *PlatformerConfig) { c.Physics.Gravity = 0 }},
		{"run accel", func(c *PlatformerConfig) { c.Physics.RunAccel = -1 }},
		{"jump force", func(c *PlatformerConfig) { c.Physics.JumpForce = 0 }},
		{"jump ticks", func(c *PlatformerConfig) { c.Physics.JumpTicks = -1 }},
		{"friction", func(c *PlatformerConfig) { c.Physics.Friction = 0 }},
		{"wall bounce", func(c *PlatformerConfig) { c.Physics.WallBounce = 2 }},
		{"spawn", func(c *PlatformerConfig) { c.Player.SpawnCol = -1 }},
		{"hop divisor", func(c *PlatformerConfig) { c.Death.HopDivisor = 0 }},
		{"hold", func(c *PlatformerConfig) { c.Input.HoldMs = -5 }},
		{"cell size", func(c *PlatformerConfig) { c.Render.CellHeight = 0 }},
	}

	if err := DefaultPlatformerConfig().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	for _, m := range mutate {
		t.Run(m.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			m.fn(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}
