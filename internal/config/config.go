// Package config provides YAML-based game configuration loading and
// difficulty management for numsnake.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/numsnake/internal/core"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Timing     SnakeTiming      `yaml:"timing"`
	Gameplay   SnakeGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeTiming defines the simulation clock.
type SnakeTiming struct {
	TickMS    int `yaml:"tick_ms"`
	MinTickMS int `yaml:"min_tick_ms"`
}

// SnakeGameplay defines lives and scoring.
type SnakeGameplay struct {
	Lives      int `yaml:"lives"`
	Penalty    int `yaml:"penalty"`
	StartLevel int `yaml:"start_level"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score, level or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the tick rate at max difficulty
}

// TickPeriod returns the base tick period.
func (c SnakeConfig) TickPeriod() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// MinTickPeriod returns the shortest tick period the difficulty ramp allows.
func (c SnakeConfig) MinTickPeriod() time.Duration {
	return time.Duration(c.Timing.MinTickMS) * time.Millisecond
}

// Validate reports the first setting that would make the game unplayable.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Timing.TickMS <= 0:
		return fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS)
	case c.Timing.MinTickMS < 0 || c.Timing.MinTickMS > c.Timing.TickMS:
		return fmt.Errorf("timing.min_tick_ms must be between 0 and tick_ms, got %d", c.Timing.MinTickMS)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	case c.Gameplay.Penalty < 0:
		return fmt.Errorf("gameplay.penalty must not be negative, got %d", c.Gameplay.Penalty)
	case c.Gameplay.StartLevel < 1:
		return fmt.Errorf("gameplay.start_level must be at least 1, got %d", c.Gameplay.StartLevel)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "level", "time":
	default:
		return fmt.Errorf("difficulty.progression.type %q is not one of score, level, time, none", c.Difficulty.Progression.Type)
	}
	return nil
}

// Runtime builds the game's runtime config for a terminal of w x h.
func (c SnakeConfig) Runtime(w, h int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    w,
		ScreenH:    h,
		TickPeriod: c.TickPeriod(),
		Seed:       seed,
		Lives:      c.Gameplay.Lives,
		Penalty:    c.Gameplay.Penalty,
		StartLevel: c.Gameplay.StartLevel,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", s)
}

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

// LivesForPreset returns the starting lives for a difficulty preset, or 0 to
// keep the configured value.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 9
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
