package ai

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestMeasure(t *testing.T) {
	full := tetris.NewBoard()
	for x := tetris.InteriorLeft; x < tetris.InteriorRight; x++ {
		full[19][x] = tetris.CellO
	}

	holed := tetris.NewBoard()
	holed[19][2] = tetris.CellT
	holed[17][2] = tetris.CellT

	steps := tetris.NewBoard()
	steps[19][2] = tetris.CellL
	steps[19][4] = tetris.CellL
	steps[18][4] = tetris.CellL

	tests := []struct {
		name  string
		board tetris.Board
		want  Features
	}{
		{"empty", tetris.NewBoard(), Features{}},
		{"full row", full, Features{Lines: 1, MaxHeight: 2}},
		{"hole", holed, Features{MaxHeight: 4, Bumpiness: 4, DeadSpace: 1}},
		{"steps", steps, Features{MaxHeight: 3, Bumpiness: 2 + 3 + 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Measure(&tt.board); got != tt.want {
				t.Errorf("Measure = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		f      Features
		genome Genome
		want   float64
	}{
		{"empty board", Features{}, DefaultGenome, 111},
		{"lines only", Features{Lines: 4}, Genome{200, 0, 0, 0}, 200},
		{"height penalty", Features{MaxHeight: 10}, Genome{0, 100, 0, 0}, 50},
		{"dead space penalty", Features{DeadSpace: 50}, Genome{0, 0, 0, 100}, 75},
		{"zero genome", Features{Lines: 3, MaxHeight: 5}, Genome{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Score(tt.genome); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}
