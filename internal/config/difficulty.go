package config

import (
	"math"
	"time"
)

// DifficultyManager calculates the tick period from game progress.
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

// Level returns the current difficulty level (0.0 to 1.0) based on score,
// game level and ticks.
func (d *DifficultyManager) Level(score, level int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "level":
		progress = float64(level-1) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// TickPeriod scales base down as difficulty rises: the tick rate grows from
// 1x to (1 + speed_multiplier)x. The result never drops below floor.
func (d *DifficultyManager) TickPeriod(base, floor time.Duration, score, level int, ticks uint64) time.Duration {
	rate := 1.0 + d.Level(score, level, ticks)*d.cfg.Scaling.SpeedMultiplier
	if rate <= 0 {
		return base
	}
	period := time.Duration(float64(base) / rate)
	return max(period, floor)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
