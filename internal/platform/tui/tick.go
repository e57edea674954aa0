// Package tui hosts the game in a terminal through Bubble Tea.
// It maps keys and timer ticks to game inputs and writes the renderer's
// operations to the terminal, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after period.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// startMsg triggers the first paint once the program is running.
type startMsg struct{}

func startCmd() tea.Msg {
	return startMsg{}
}
