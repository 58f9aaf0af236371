package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestPressedActions(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		want    []core.Action
	}{
		{"none", nil, nil},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, []core.Action{core.ActionMoveLeft}},
		{"both left keys once", []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, []core.Action{core.ActionMoveLeft}},
		{"binding order", []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowRight}, []core.Action{core.ActionMoveRight, core.ActionHardDrop}},
		{"quit", []ebiten.Key{ebiten.KeyQ}, []core.Action{core.ActionQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			down := make(map[ebiten.Key]bool)
			for _, k := range tt.pressed {
				down[k] = true
			}
			got := pressedActions(defaultBindings, func(k ebiten.Key) bool { return down[k] })
			if len(got) != len(tt.want) {
				t.Fatalf("pressedActions() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pressedActions()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBindingsCoverEveryAction(t *testing.T) {
	bound := make(map[core.Action]bool)
	for _, b := range defaultBindings {
		bound[b.Action] = true
	}
	for a := core.ActionMoveLeft; a <= core.ActionQuit; a++ {
		if !bound[a] {
			t.Errorf("no key bound to %v", a)
		}
	}
}

func TestCellColors(t *testing.T) {
	pieces := []tetris.Cell{
		tetris.CellI, tetris.CellO, tetris.CellS, tetris.CellZ,
		tetris.CellJ, tetris.CellL, tetris.CellT,
	}
	seen := make(map[[4]uint8]tetris.Cell)
	for _, c := range pieces {
		col := cellColor(c)
		key := [4]uint8{col.R, col.G, col.B, col.A}
		if prev, dup := seen[key]; dup {
			t.Errorf("%v and %v share a colour", prev, c)
		}
		seen[key] = c
	}
	if cellColor(tetris.Empty) != colorGrid {
		t.Error("empty cell is not drawn as grid")
	}
}

func newTestGame(t *testing.T, auto bool) *Game {
	t.Helper()
	cfg := config.DefaultTetrisConfig()
	cfg.Gravity.BaseMS = 60_000 // keep gravity out of the way
	cfg.Gravity.MinMS = 60_000
	cfg.Autoplay.IntervalMS = 60_000
	g := NewGame(Options{Auto: auto, Seed: 3, Config: cfg, Genome: ai.DefaultGenome})
	t.Cleanup(g.Close)
	return g
}

func TestGameHandle(t *testing.T) {
	g := newTestGame(t, false)
	start := g.session.Snapshot().Position

	g.handle([]core.Action{core.ActionMoveRight})
	if got := g.session.Snapshot().Position.X; got != start.X+1 {
		t.Errorf("X = %d, want %d", got, start.X+1)
	}

	g.handle([]core.Action{core.ActionHardDrop})
	if got := g.session.Snapshot().Board.FilledCells(); got != 4 {
		t.Errorf("filled cells = %d, want 4", got)
	}

	g.handle([]core.Action{core.ActionQuit, core.ActionMoveLeft})
	if !g.quit {
		t.Error("quit not recorded")
	}
}

func TestGameAutoIgnoresMoves(t *testing.T) {
	g := newTestGame(t, true)
	before := g.session.Snapshot()

	g.handle([]core.Action{core.ActionMoveLeft, core.ActionHardDrop, core.ActionHold})
	after := g.session.Snapshot()
	if after.Position != before.Position || after.Board != before.Board {
		t.Error("auto game accepted a piece command")
	}

	g.handle([]core.Action{core.ActionPause})
	if !g.session.Paused() {
		t.Error("pause ignored in auto mode")
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, false)
	g.session.Reset(tetris.NewWithBoard(3, blockedBoard()))
	g.checkGameOver()
	if !g.saved {
		t.Fatal("game over not recorded")
	}

	g.handle([]core.Action{core.ActionRestart})
	if g.saved || g.session.Snapshot().GameOver {
		t.Error("restart kept the finished game")
	}
}

func blockedBoard() tetris.Board {
	b := tetris.NewBoard()
	for y := 0; y < 4; y++ {
		for x := tetris.InteriorLeft; x < tetris.InteriorRight; x++ {
			b[y][x] = tetris.CellT
		}
	}
	return b
}

func TestLayout(t *testing.T) {
	var g Game
	w, h := g.Layout(1, 1)
	if w != ScreenWidth || h != ScreenHeight {
		t.Errorf("Layout() = %dx%d, want %dx%d", w, h, ScreenWidth, ScreenHeight)
	}
}
