package core

import "time"

// Action represents a semantic game event, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionRight          // D, Right arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionConfirm        // Space - resume, restart after game over
	ActionPause          // Escape
	ActionQuit           // Q, Ctrl+C - handled by the platform
	ActionTick           // Periodic timeout that advances the simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionTick:
		return "Tick"
	default:
		return "Unknown"
	}
}

// Direction maps a directional action to its heading.
// The second result is false for non-directional actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionRight:
		return DirRight, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	}
	return 0, false
}

// Input is a single event delivered to the game.
type Input struct {
	Action Action

	// Elapsed is the time since the previous tick; only set for ActionTick.
	Elapsed time.Duration
}

// Tick returns a tick input carrying the elapsed time since the last one.
func Tick(elapsed time.Duration) Input {
	return Input{Action: ActionTick, Elapsed: elapsed}
}

// Press returns an input for a single action.
func Press(a Action) Input {
	return Input{Action: a}
}
