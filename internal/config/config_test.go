package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseMaze(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultMazeConfig(), cfg)
}

func TestLoadMazeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ghosts:\n  route_interval: 250ms\ngameplay:\n  lives: 7\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadMaze(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Ghosts.RouteInterval)
	assert.Equal(t, 7, cfg.Gameplay.Lives)
	// Untouched keys keep their defaults.
	assert.Equal(t, 16, cfg.Grid.CellSize)
	assert.Equal(t, 5*time.Second, cfg.Ghosts.RespawnDelay)
}

func TestLoadMazeMissingCustomPath(t *testing.T) {
	_, err := LoadMaze(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseMazeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero cell size", "grid:\n  cell_size: 0\n"},
		{"speed above cell", "player:\n  speed: 32\n"},
		{"speed not a divisor", "player:\n  speed: 3\n"},
		{"ghost speed not a divisor", "ghosts:\n  speed: 5\n"},
		{"no lives", "gameplay:\n  lives: 0\n"},
		{"bad duration", "ghosts:\n  respawn_delay: soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMaze([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestApplyMazePreset(t *testing.T) {
	cfg := DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)
	assert.Equal(t, 2, cfg.Gameplay.Lives)

	cfg = DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 3, cfg.Gameplay.Lives)
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset("easy")
	require.NoError(t, err)
	assert.Equal(t, DifficultyEasy, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}
