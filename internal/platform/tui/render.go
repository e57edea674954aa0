package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numsnake/internal/core"
)

// cellStyle maps a cell's colors to a lipgloss style.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if !fg.IsDefault() {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(int(fg.Index()))))
	}
	if !bg.IsDefault() {
		style = style.Background(lipgloss.Color(strconv.Itoa(int(bg.Index()))))
	}
	return style
}

// ScreenString converts a Screen buffer to a styled multi-line string for
// printing outside the game loop, such as level previews.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func ScreenString(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Cell(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.Cell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Glyph)
				x++
			}

			sb.WriteString(cellStyle(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
