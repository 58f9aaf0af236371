package ai

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Normalization ranges. Observed values beyond the upper bound are not
// clipped.
const (
	maxLines     = 4
	maxHeight    = tetris.VisibleHeight
	maxBumpiness = 200
	maxDeadSpace = 200
)

// Features are the raw board measurements the evaluator weighs.
type Features struct {
	Lines     int // full rows ready to clear
	MaxHeight int // height of the tallest column
	Bumpiness int // sum of height differences between neighbouring columns
	DeadSpace int // empty cells with a filled cell somewhere above
}

// Measure computes all features of b.
func Measure(b *tetris.Board) Features {
	return Features{
		Lines:     ClearableLines(b),
		MaxHeight: MaxHeight(b),
		Bumpiness: Bumpiness(b),
		DeadSpace: DeadSpace(b),
	}
}

// Score normalizes each feature to [0,1], flips the three where lower is
// better, and returns the weighted sum.
func (f Features) Score(g Genome) float64 {
	lines := normalize(f.Lines, maxLines)
	height := 1 - normalize(f.MaxHeight, maxHeight)
	bumps := 1 - normalize(f.Bumpiness, maxBumpiness)
	dead := 1 - normalize(f.DeadSpace, maxDeadSpace)

	return lines*float64(g[GeneLine]) +
		height*float64(g[GeneHeightMax]) +
		bumps*float64(g[GeneHeightDiff]) +
		dead*float64(g[GeneDeadSpace])
}

// normalize maps v from [0, hi] onto [0, 1].
func normalize(v, hi int) float64 {
	return float64(v) / float64(hi)
}

// ClearableLines counts full playable rows.
func ClearableLines(b *tetris.Board) int {
	return b.FullLines()
}

// MaxHeight returns the tallest column height.
func MaxHeight(b *tetris.Board) int {
	best := 0
	for _, h := range b.ColumnHeights() {
		best = core.Max(best, h)
	}
	return best
}

// Bumpiness sums the absolute height difference of each column and its right
// neighbour.
func Bumpiness(b *tetris.Board) int {
	h := b.ColumnHeights()
	sum := 0
	for i := 0; i+1 < len(h); i++ {
		sum += core.Abs(h[i] - h[i+1])
	}
	return sum
}

// DeadSpace counts empty playable cells that have any filled cell above them
// in the same column.
func DeadSpace(b *tetris.Board) int {
	count := 0
	for x := tetris.InteriorLeft; x < tetris.InteriorRight; x++ {
		covered := false
		for y := tetris.InteriorTop; y < tetris.InteriorBottom; y++ {
			switch {
			case b[y][x].Filled():
				covered = true
			case covered:
				count++
			}
		}
	}
	return count
}
