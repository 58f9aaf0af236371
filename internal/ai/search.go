package ai

import (
	"math"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Search bounds. Shifts are relative to the spawn column and together cover
// every column a 4x4 box can start in.
const (
	rotations = 4
	minShift  = -4
	maxShift  = 5
)

// BestPlacement returns a copy of g with the falling piece moved to the best
// placement found and fixed into the board. The copy still needs Lock to
// clear rows, score and spawn. g itself is never modified.
//
// Candidates are visited hold first, then rotation, then shift. Only a
// strictly better score replaces the current best, so ties go to the
// earliest candidate.
func BestPlacement(g *tetris.Game, genome Genome) *tetris.Game {
	var best *tetris.Game
	bestScore := math.Inf(-1)

	for _, hold := range []bool{true, false} {
		base := g.Clone()
		if hold {
			base.Hold()
		}
		if base.GameOver() {
			continue
		}
		for rot := 0; rot < rotations; rot++ {
			turned := base.Clone()
			for i := 0; i < rot; i++ {
				turned.RotateRight()
			}
			for dx := minShift; dx <= maxShift; dx++ {
				c := turned.Clone()
				pos := c.Position()
				c.MoveTo(tetris.Position{X: max(pos.X+dx, 0), Y: pos.Y})
				c.HardDrop()
				c.Fix()

				b := c.Board()
				if score := Measure(&b).Score(genome); bestScore < score {
					best, bestScore = c, score
				}
			}
		}
	}
	if best == nil {
		return g.Clone()
	}
	return best
}
