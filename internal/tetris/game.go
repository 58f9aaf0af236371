package tetris

import (
	"errors"
)

// ErrGameOver is returned by Lock when the next piece cannot spawn.
var ErrGameOver = errors.New("tetris: game over")

// NextLength is how many upcoming pieces front-ends display.
const NextLength = 3

// scoreTable maps the number of rows cleared by one lock to points.
var scoreTable = [5]int{0, 1, 5, 25, 100}

// Direction is a single-cell translation for Move.
type Direction int

const (
	Left Direction = iota
	Right
	Down
)

// Game is the complete state of one game: board, falling piece, hold slot,
// upcoming queue and counters. It is not safe for concurrent use; interactive
// front-ends wrap it in a Session.
type Game struct {
	board    Board
	pos      Position
	shape    Shape
	hold     Shape
	hasHold  bool
	holdUsed bool // hold already used for the current piece
	next     []Kind
	bag      Bag
	score    int
	lines    int
	over     bool
}

// New creates a game with an empty board and the first piece spawned.
func New(seed int64) *Game {
	g := &Game{
		board: NewBoard(),
		bag:   NewBag(seed),
	}
	g.next = make([]Kind, 0, kindCount)
	for i := 0; i < kindCount; i++ {
		g.next = append(g.next, g.bag.Next())
	}
	// The board is empty, spawning cannot collide.
	_ = g.spawn()
	return g
}

// NewWithBoard creates a game on a prepared board. The piece sequence is the
// same as New(seed). If the first piece does not fit the game starts over.
func NewWithBoard(seed int64, b Board) *Game {
	g := New(seed)
	g.board = b
	g.over = IsCollision(&g.board, g.pos, &g.shape)
	return g
}

// Clone returns a deep copy that shares nothing with g.
func (g *Game) Clone() *Game {
	c := *g
	c.next = append([]Kind(nil), g.next...)
	c.bag = g.bag.clone()
	return &c
}

// Board returns a copy of the board without the falling piece.
func (g *Game) Board() Board { return g.board }

// Position returns the falling piece's position.
func (g *Game) Position() Position { return g.pos }

// Shape returns the falling piece in its current orientation.
func (g *Game) Shape() Shape { return g.shape }

// HeldShape returns the held piece, if any.
func (g *Game) HeldShape() (Shape, bool) { return g.hold, g.hasHold }

// Next returns the upcoming queue, front first.
func (g *Game) Next() []Kind { return append([]Kind(nil), g.next...) }

// Score returns the accumulated score.
func (g *Game) Score() int { return g.score }

// Lines returns the total number of cleared rows.
func (g *Game) Lines() int { return g.lines }

// GameOver reports whether a spawn has collided.
func (g *Game) GameOver() bool { return g.over }

// Move shifts the piece one cell. A move into a collision is ignored.
// Returns true if the piece moved.
func (g *Game) Move(d Direction) bool {
	next := g.pos
	switch d {
	case Left:
		next.X = max(next.X-1, 0)
	case Right:
		next.X++
	case Down:
		next.Y++
	}
	if next == g.pos {
		return false
	}
	return g.MoveTo(next)
}

// MoveTo places the piece at pos if it fits there.
func (g *Game) MoveTo(pos Position) bool {
	if g.over || IsCollision(&g.board, pos, &g.shape) {
		return false
	}
	g.pos = pos
	return true
}

// RotateLeft turns the piece counter-clockwise, kicking if needed.
func (g *Game) RotateLeft() bool {
	return g.rotate(g.shape.RotateLeft())
}

// RotateRight turns the piece clockwise, kicking if needed.
func (g *Game) RotateRight() bool {
	return g.rotate(g.shape.RotateRight())
}

// rotate installs shape in place or at the first free kick offset.
// When nothing fits, the piece is left exactly as it was.
func (g *Game) rotate(shape Shape) bool {
	if g.over {
		return false
	}
	if !IsCollision(&g.board, g.pos, &shape) {
		g.shape = shape
		return true
	}
	pos, ok := superRotation(&g.board, g.pos, &shape)
	if !ok {
		return false
	}
	g.pos = pos
	g.shape = shape
	return true
}

// superRotation tries the one-cell kicks up, right, down, left in that order.
// Kicks below zero stay at zero.
func superRotation(b *Board, pos Position, shape *Shape) (Position, bool) {
	kicks := [4]Position{
		{X: pos.X, Y: max(pos.Y-1, 0)},
		{X: pos.X + 1, Y: pos.Y},
		{X: pos.X, Y: pos.Y + 1},
		{X: max(pos.X-1, 0), Y: pos.Y},
	}
	for _, k := range kicks {
		if !IsCollision(b, k, shape) {
			return k, true
		}
	}
	return pos, false
}

// dropPosition returns where the piece at pos would come to rest.
func (g *Game) dropPosition(pos Position) Position {
	for {
		below := Position{X: pos.X, Y: pos.Y + 1}
		if IsCollision(&g.board, below, &g.shape) {
			return pos
		}
		pos = below
	}
}

// HardDrop moves the piece straight down as far as it goes. It does not lock.
func (g *Game) HardDrop() {
	if g.over {
		return
	}
	g.pos = g.dropPosition(g.pos)
}

// Ghost returns the position the piece would land on after a hard drop.
// Used only for display.
func (g *Game) Ghost() Position {
	return g.dropPosition(g.pos)
}

// Hold stashes the falling piece. The first hold spawns from the queue, later
// holds swap with the held piece and restart it at the spawn position.
// Only one hold is allowed per piece; further calls are no-ops until the
// next successful lock.
func (g *Game) Hold() bool {
	if g.over || g.holdUsed {
		return false
	}
	if g.hasHold {
		g.hold, g.shape = g.shape, g.hold
		g.pos = SpawnPosition
	} else {
		g.hold = g.shape
		g.hasHold = true
		if err := g.spawn(); err != nil {
			g.over = true
		}
	}
	g.holdUsed = true
	return true
}

// Fix writes the falling piece into the board without clearing rows, scoring
// or spawning. The AI uses it to inspect the board a placement produces.
func (g *Game) Fix() {
	g.board.Fix(g.pos, &g.shape)
}

// Lock fixes the piece, clears full rows, scores them and spawns the next
// piece. It returns ErrGameOver if the new piece collides on arrival.
// Locking twice at the same spot is harmless: Fix is idempotent.
func (g *Game) Lock() error {
	if g.over {
		return ErrGameOver
	}
	g.Fix()
	cleared := g.board.EraseLines()
	g.score += scoreTable[cleared]
	g.lines += cleared
	if err := g.spawn(); err != nil {
		g.over = true
		return err
	}
	g.holdUsed = false
	return nil
}

// spawn pops the queue front into play and tops the queue up from the bag.
func (g *Game) spawn() error {
	g.pos = SpawnPosition
	g.shape = g.next[0].Shape()
	g.next = append(g.next[:0], g.next[1:]...)
	g.next = append(g.next, g.bag.Next())
	if IsCollision(&g.board, g.pos, &g.shape) {
		return ErrGameOver
	}
	return nil
}
