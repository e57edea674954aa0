package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickPeriod time.Duration // Time between simulation ticks (default 100ms)
	Seed       int64         // RNG seed for deterministic gameplay
	Lives      int           // Lives at the start of a session
	Penalty    int           // Score deducted when a life is lost
	StartLevel int           // 1-based level a new session starts on
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickPeriod: 100 * time.Millisecond,
		Seed:       0, // 0 means use current time in platform layer
		Lives:      5,
		Penalty:    1000,
		StartLevel: 1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // Current level, 1-based
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Event reports a notable transition that happened during a step.
type Event int

const (
	EventTargetCollected Event = iota + 1
	EventLifeLost
	EventLevelUp
	EventGameOver
	EventRestart
)

func (e Event) String() string {
	switch e {
	case EventTargetCollected:
		return "target_collected"
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}
