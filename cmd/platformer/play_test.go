package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// useFlags sets the global path flags the way PersistentPreRun does.
func useFlags(t *testing.T, cfgPath, levelPath string) {
	t.Helper()
	flagConfig, flagLevel = cfgPath, levelPath
	platformer.SetConfigPath(cfgPath)
	platformer.SetLevelPath(levelPath)
	t.Cleanup(func() {
		flagConfig, flagLevel = "", ""
		platformer.SetConfigPath("")
		platformer.SetLevelPath("")
	})
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigLevelPath(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	writeFile(t, good, strings.Repeat("#=............\n", 20))
	missing := filepath.Join(dir, "missing.txt")

	badCfg := filepath.Join(dir, "bad.yaml")
	writeFile(t, badCfg, "level:\n  path: "+missing+"\n")
	goodCfg := filepath.Join(dir, "good.yaml")
	writeFile(t, goodCfg, "level:\n  path: "+good+"\n")

	tests := []struct {
		name     string
		cfgPath  string
		flag     string
		wantMiss bool
	}{
		{"config names missing level", badCfg, "", true},
		{"config names valid level", goodCfg, "", false},
		{"flag names missing level", goodCfg, missing, true},
		{"flag overrides bad config level", badCfg, good, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			useFlags(t, tc.cfgPath, tc.flag)

			_, err := loadConfig()
			if tc.wantMiss {
				if !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("loadConfig error = %v, want a missing level file", err)
				}
				return
			}
			if err != nil {
				t.Errorf("loadConfig: %v", err)
			}
		})
	}
}

func TestLoadConfigInvalidLevelContents(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.txt")
	writeFile(t, empty, "")
	cfgPath := filepath.Join(dir, "platformer.yaml")
	writeFile(t, cfgPath, "level:\n  path: "+empty+"\n")
	useFlags(t, cfgPath, "")

	if _, err := loadConfig(); !errors.Is(err, platformer.ErrEmptyLevel) {
		t.Errorf("loadConfig error = %v, want ErrEmptyLevel", err)
	}
}
