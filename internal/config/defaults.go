package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mazechase.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the hardcoded default configuration. It mirrors
// defaults/mazechase.yaml.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: GridConfig{
			CellSize: 16,
		},
		Player: PlayerConfig{
			Speed: 2,
			Spawn: CellConfig{X: 13, Y: 23},
		},
		Ghosts: GhostsConfig{
			Speed: 1,
			Spawns: []CellConfig{
				{X: 12, Y: 14},
				{X: 13, Y: 14},
				{X: 14, Y: 14},
				{X: 15, Y: 14},
			},
			Colors:        []string{"red", "pink", "cyan", "orange"},
			RouteInterval: 500 * time.Millisecond,
			FrightTicks:   420, // 7 seconds at 60 ticks/s
			RespawnDelay:  5 * time.Second,
		},
		Scoring: ScoringConfig{
			Dot:         10,
			PowerPellet: 50,
			Ghost:       100,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			StartLevel:      1,
			LevelClearTicks: 90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				GhostSpeedMultiplier:   1.0,
				RouteIntervalReduction: 0.5,
				FrightReduction:        0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
