package snake

import "github.com/vovakirdan/numsnake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateWaiting  GameStateType = "waiting" // No board yet
	StateRunning  GameStateType = "running"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int // 1-indexed
	Score     int
	Lives     int
	BodyLen   int
	Head      core.Point
	Heading   core.Direction
	Target    core.Point
	HasTarget bool
	Value     int // Number shown at the target
	Growth    int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.GameOver():
		state = StateGameOver
	case g.walls == nil:
		state = StateWaiting
	case g.paused:
		state = StatePaused
	}

	var head core.Point
	if len(g.body) > 0 {
		head = g.body[0]
	}

	return Snapshot{
		Tick:      g.tick,
		Level:     g.level,
		Score:     g.score,
		Lives:     g.lives,
		BodyLen:   len(g.body),
		Head:      head,
		Heading:   g.heading,
		Target:    g.target,
		HasTarget: g.hasTarget,
		Value:     g.value,
		Growth:    g.growth,
		State:     state,
	}
}
