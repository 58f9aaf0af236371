package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func drawn(snap tetris.Snapshot, hud HUD) *core.Screen {
	s := core.NewScreen(ScreenW, ScreenH)
	DrawSnapshot(s, snap, hud)
	return s
}

func TestDrawSnapshotBoard(t *testing.T) {
	s := drawn(tetris.New(1).Snapshot(), HUD{Title: "T"})

	floor := s.Row(boardY + tetris.InteriorBottom)
	if !strings.Contains(floor, strings.Repeat("██", tetris.VisibleWidth+2)) {
		t.Errorf("floor row = %q, want a full wall", floor)
	}

	middle := s.Row(boardY + tetris.VisibleHeight/2)
	want := "██" + strings.Repeat(" .", tetris.VisibleWidth) + "██"
	if got := middle[boardX:]; !strings.HasPrefix(got, want) {
		t.Errorf("middle row = %q, want prefix %q", got, want)
	}

	if c := s.GetCell(boardX, boardY); c.Color != core.ColorGray {
		t.Errorf("wall color = %v, want gray", c.Color)
	}
}

func TestDrawSnapshotPanel(t *testing.T) {
	snap := tetris.New(1).Snapshot()

	tests := []struct {
		name    string
		snap    tetris.Snapshot
		hud     HUD
		want    []string
		notWant []string
	}{
		{
			name:    "running",
			snap:    snap,
			hud:     HUD{Title: "T E T R I S", HighScore: 42},
			want:    []string{"T E T R I S", "HOLD", "NEXT", "SCORE       0", "HIGH       42"},
			notWant: []string{"PAUSED", "GAME OVER"},
		},
		{
			name: "paused",
			snap: snap,
			hud:  HUD{Paused: true},
			want: []string{"PAUSED"},
		},
		{
			name:    "game over wins over pause",
			snap:    func() tetris.Snapshot { s := snap; s.GameOver = true; return s }(),
			hud:     HUD{Paused: true},
			want:    []string{"GAME OVER"},
			notWant: []string{"PAUSED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := drawn(tt.snap, tt.hud).String()
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("screen missing %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(text, w) {
					t.Errorf("screen unexpectedly contains %q", w)
				}
			}
		})
	}
}

func TestDrawSnapshotPieceAndGhost(t *testing.T) {
	s := drawn(tetris.New(1).Snapshot(), HUD{}).String()
	if !strings.Contains(s, "[]") {
		t.Error("ghost piece not drawn")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawColorText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawColorText(0, 1, "xy", core.Color(200)) // unknown color falls back

	out := RenderScreen(s)
	for _, w := range []string{"ab", "cd", "xy"} {
		if !strings.Contains(out, w) {
			t.Errorf("RenderScreen() missing %q", w)
		}
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("RenderScreen() has %d newlines, want 1", n)
	}
}
