package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numsnake/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	for _, e := range []storage.ScoreEntry{
		{Player: "ada", Score: 300, Level: 1},
		{Player: "bob", Score: 2100, Level: 3, Difficulty: "hard"},
		{Player: "ada", Score: 900, Level: 2},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatal(err)
		}
	}
	return store
}

func TestScoreboardFilter(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), "ada", 100, 30)
	if len(m.scores) != 3 {
		t.Fatalf("expected all 3 scores, got %d", len(m.scores))
	}
	if m.scores[0].Player != "bob" {
		t.Errorf("best score should come first, got %+v", m.scores[0])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !m.mine || len(m.scores) != 2 {
		t.Fatalf("tab should filter to the player's 2 scores, got %d", len(m.scores))
	}
	if !strings.Contains(m.View(), "HIGH SCORES - ada") {
		t.Error("title should name the player when filtered")
	}
}

func TestScoreboardRows(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{
		{Player: "bob", Score: 2100, Level: 3, Difficulty: "hard"},
		{Player: "ada", Score: 900, Level: 2},
	})
	if rows[0][0] != "#1" || rows[0][1] != "bob" || rows[0][2] != "2100" || rows[0][3] != "3" || rows[0][4] != "hard" {
		t.Errorf("unexpected first row %v", rows[0])
	}
	if rows[1][4] != "-" {
		t.Errorf("missing difficulty should show \"-\", got %q", rows[1][4])
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "ada", 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("scoreboard without a store should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !isQuit(cmd) || !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should close the scoreboard")
	}
}
