//go:build windows

package tui

import tea "github.com/charmbracelet/bubbletea"

// watchResize is a no-op on Windows; the session keeps its starting size.
func watchResize(_ *tea.Program, _ int) func() {
	return func() {}
}
