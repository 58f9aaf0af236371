package ai

import (
	"context"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Result summarizes one autonomous episode.
type Result struct {
	Score    int
	Lines    int
	Pieces   int
	GameOver bool
}

// Play lets genome drive g until the game ends or lineCap rows have been
// cleared. A lineCap of zero or less means no cap. Game over is a normal
// outcome; the only error returned is ctx's.
func Play(ctx context.Context, g *tetris.Game, genome Genome, lineCap int) (Result, error) {
	pieces := 0
	for !g.GameOver() && (lineCap <= 0 || g.Lines() < lineCap) {
		if err := ctx.Err(); err != nil {
			return summarize(g, pieces), err
		}
		*g = *BestPlacement(g, genome)
		pieces++
		// ErrGameOver ends the loop through g.GameOver.
		_ = g.Lock()
	}
	return summarize(g, pieces), nil
}

func summarize(g *tetris.Game, pieces int) Result {
	return Result{
		Score:    g.Score(),
		Lines:    g.Lines(),
		Pieces:   pieces,
		GameOver: g.GameOver(),
	}
}
