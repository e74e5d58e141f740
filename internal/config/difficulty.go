package config

import (
	"math"
	"time"
)

const (
	minRouteInterval = 100 * time.Millisecond
	minFrightTicks   = 60
)

// DifficultyManager calculates per-level game parameters.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for a maze level number.
// Level 1 plays at the initial difficulty.
func (d *DifficultyManager) Level(mazeLevel int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(mazeLevel-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GhostSpeed returns the ghost speed for a maze level. The result always
// divides cellSize so ghosts keep landing on cell boundaries.
func (d *DifficultyManager) GhostSpeed(base, cellSize, mazeLevel int) int {
	level := d.Level(mazeLevel)
	want := int(math.Floor(float64(base) * (1.0 + level*d.cfg.Scaling.GhostSpeedMultiplier)))
	return snapDivisor(want, cellSize)
}

// RouteInterval returns the ghost navigation cadence for a maze level.
func (d *DifficultyManager) RouteInterval(base time.Duration, mazeLevel int) time.Duration {
	level := d.Level(mazeLevel)
	result := time.Duration(float64(base) * (1.0 - level*clampF(d.cfg.Scaling.RouteIntervalReduction, 0, 1)))
	if result < minRouteInterval && base >= minRouteInterval {
		result = minRouteInterval
	}
	return result
}

// FrightTicks returns the frightened duration for a maze level.
func (d *DifficultyManager) FrightTicks(base, mazeLevel int) int {
	level := d.Level(mazeLevel)
	result := int(float64(base) * (1.0 - level*clampF(d.cfg.Scaling.FrightReduction, 0, 1)))
	if result < minFrightTicks && base >= minFrightTicks {
		result = minFrightTicks
	}
	return result
}

// snapDivisor returns the largest divisor of n that is <= want, at least 1.
func snapDivisor(want, n int) int {
	if want > n {
		want = n
	}
	for v := want; v > 1; v-- {
		if n%v == 0 {
			return v
		}
	}
	return 1
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
