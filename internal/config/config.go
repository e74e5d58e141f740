// Package config provides YAML-based game configuration loading and
// difficulty management for the maze game.
package config

import "time"

// MazeConfig contains all tunable game parameters.
type MazeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Player     PlayerConfig     `yaml:"player"`
	Ghosts     GhostsConfig     `yaml:"ghosts"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the pixel geometry of the maze.
type GridConfig struct {
	CellSize int `yaml:"cell_size"` // Pixels per cell side; entity size equals one cell
}

// CellConfig is a cell coordinate in config files.
type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed int        `yaml:"speed"` // Pixels per tick
	Spawn CellConfig `yaml:"spawn"` // Used when a map has no player marker
}

// GhostsConfig defines ghost parameters.
type GhostsConfig struct {
	Speed         int           `yaml:"speed"`          // Pixels per tick
	Spawns        []CellConfig  `yaml:"spawns"`         // Used when a map has no ghost markers
	Colors        []string      `yaml:"colors"`         // Cycled over ghosts
	RouteInterval time.Duration `yaml:"route_interval"` // Wall-clock navigation cadence
	FrightTicks   int           `yaml:"fright_ticks"`   // Frightened duration in ticks
	RespawnDelay  time.Duration `yaml:"respawn_delay"`  // Wall-clock captured duration
}

// ScoringConfig defines points per event.
type ScoringConfig struct {
	Dot         int `yaml:"dot"`
	PowerPellet int `yaml:"power_pellet"`
	Ghost       int `yaml:"ghost"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives              int  `yaml:"lives"`
	StartLevel         int  `yaml:"start_level"`
	LevelClearTicks    int  `yaml:"level_clear_ticks"`     // Pause between levels
	KeepPickupsOnDeath bool `yaml:"keep_pickups_on_death"` // false = full level reset on life loss
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Levels after the first at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max difficulty.
type ScalingConfig struct {
	GhostSpeedMultiplier   float64 `yaml:"ghost_speed_multiplier"`   // Added to the ghost speed factor
	RouteIntervalReduction float64 `yaml:"route_interval_reduction"` // Fraction of the cadence removed
	FrightReduction        float64 `yaml:"fright_reduction"`         // Fraction of fright ticks removed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
