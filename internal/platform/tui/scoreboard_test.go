package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestScoreboardModes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, s := range []struct {
		mode         string
		score, lines int
	}{
		{storage.ModeNormal, 25, 3},
		{storage.ModeNormal, 100, 8},
		{storage.ModeAuto, 5000, 400},
	} {
		if _, err := store.SaveScore(s.mode, s.score, s.lines); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, storage.ModeNormal, 100, 30)
	if len(m.scores) != 2 || m.scores[0].Score != 100 {
		t.Fatalf("normal scores = %+v", m.scores)
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Player") {
		t.Error("View() missing player title")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].Lines != 400 {
		t.Errorf("auto scores = %+v", m.scores)
	}

	// Wraps around in both directions.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := next.(ScoreboardModel).modes[next.(ScoreboardModel).cursor].ID; got != storage.ModeAuto {
		t.Errorf("cursor on %q after two back steps, want auto", got)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "unknown", 60, 20)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 for unknown mode", m.cursor)
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("View() missing empty message")
	}

	next, _ := m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b did not go back")
	}
}
