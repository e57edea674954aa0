package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default game configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Timing: SnakeTiming{
			TickMS:    100,
			MinTickMS: 40,
		},
		Gameplay: SnakeGameplay{
			Lives:      5,
			Penalty:    1000,
			StartLevel: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
