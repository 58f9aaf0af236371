package tetris

// Snapshot is a read-only view of a game for rendering.
type Snapshot struct {
	Board    Board
	Shape    Shape
	Position Position
	Ghost    Position
	Hold     Shape
	HasHold  bool
	Next     []Shape // full queue, front first; display a prefix
	Score    int
	Lines    int
	GameOver bool
}

// Snapshot captures the current state for front-ends.
func (g *Game) Snapshot() Snapshot {
	next := make([]Shape, len(g.next))
	for i, k := range g.next {
		next[i] = k.Shape()
	}
	return Snapshot{
		Board:    g.board,
		Shape:    g.shape,
		Position: g.pos,
		Ghost:    g.Ghost(),
		Hold:     g.hold,
		HasHold:  g.hasHold,
		Next:     next,
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.over,
	}
}

// Compose returns the board with the ghost and the falling piece drawn in.
// The ghost is drawn first so the piece wins where they overlap.
func (s Snapshot) Compose() Board {
	b := s.Board
	if s.GameOver {
		return b
	}
	var ghost Shape
	for y := range s.Shape {
		for x := range s.Shape[y] {
			if s.Shape[y][x].Filled() {
				ghost[y][x] = Ghost
			}
		}
	}
	b.Fix(s.Ghost, &ghost)
	b.Fix(s.Position, &s.Shape)
	return b
}

// Preview returns up to NextLength upcoming shapes.
func (s Snapshot) Preview() []Shape {
	if len(s.Next) <= NextLength {
		return s.Next
	}
	return s.Next[:NextLength]
}
