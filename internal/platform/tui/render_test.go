package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/numsnake/internal/core"
)

func TestScreenString(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "ab")
	s.SetForeground(core.Indexed(core.PaletteYellow))
	s.DrawText(2, 0, "cd")
	s.SetBackground(core.Indexed(core.PaletteMaroon))
	s.DrawText(0, 2, "xyz")

	got := ScreenString(s)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(got, want) {
			t.Errorf("text %d (%q) missing from %q", i, want, got)
		}
	}
}

func TestCellStyleDefaultIsPlain(t *testing.T) {
	if got := cellStyle(core.ColorDefault, core.ColorDefault).Render("x"); got != "x" {
		t.Errorf("default colors should render plain text, got %q", got)
	}
}
