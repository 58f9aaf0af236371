package tetris

// Board geometry. Each row is: sentinel, wall, 11 playable columns, wall,
// sentinel. Below the 20 playable rows sit the floor and a sentinel row.
// The sentinels give a 4x4 bounding box room to overhang the walls.
const (
	VisibleWidth  = 11
	VisibleHeight = 20

	FieldWidth  = VisibleWidth + 2 + 2
	FieldHeight = VisibleHeight + 1 + 1

	// Playable area bounds, inclusive-exclusive.
	InteriorLeft   = 2
	InteriorRight  = FieldWidth - 2
	InteriorTop    = 0
	InteriorBottom = VisibleHeight

	leftWall  = InteriorLeft - 1
	rightWall = InteriorRight
	floorRow  = InteriorBottom
)

// Board is the occupancy grid indexed [y][x].
type Board [FieldHeight][FieldWidth]Cell

// Position is the top-left corner of a shape's bounding box on the board.
// Coordinates never go negative: moving past zero clamps to zero.
type Position struct {
	X, Y int
}

// SpawnPosition is where every new piece appears.
var SpawnPosition = Position{X: 5, Y: 0}

// NewBoard returns the empty starting board with walls and floor in place.
func NewBoard() Board {
	var b Board
	for y := 0; y < floorRow; y++ {
		b[y][leftWall] = Wall
		b[y][rightWall] = Wall
	}
	for x := leftWall; x <= rightWall; x++ {
		b[floorRow][x] = Wall
	}
	return b
}

// IsCollision reports whether shape placed at pos overlaps any filled board cell.
//
// Empty shape cells that fall outside the board are ignored, which lets a
// bounding box hang over the sentinels. A filled shape cell outside the board
// is treated as a collision: the wall ring makes that state unreachable, so
// reaching it means the geometry constants have drifted.
func IsCollision(b *Board, pos Position, shape *Shape) bool {
	for y := 0; y < ShapeSize; y++ {
		for x := 0; x < ShapeSize; x++ {
			if !shape[y][x].Filled() {
				continue
			}
			bx, by := pos.X+x, pos.Y+y
			if bx < 0 || bx >= FieldWidth || by < 0 || by >= FieldHeight {
				return true
			}
			if b[by][bx].Filled() {
				return true
			}
		}
	}
	return false
}

// Fix writes every filled cell of shape into the board at pos.
func (b *Board) Fix(pos Position, shape *Shape) {
	for y := 0; y < ShapeSize; y++ {
		for x := 0; x < ShapeSize; x++ {
			if !shape[y][x].Filled() {
				continue
			}
			bx, by := pos.X+x, pos.Y+y
			if bx < 0 || bx >= FieldWidth || by < 0 || by >= FieldHeight {
				continue
			}
			b[by][bx] = shape[y][x]
		}
	}
}

// rowFull reports whether every playable column of row y is filled.
func (b *Board) rowFull(y int) bool {
	for x := InteriorLeft; x < InteriorRight; x++ {
		if !b[y][x].Filled() {
			return false
		}
	}
	return true
}

// FullLines counts the playable rows that are completely filled.
func (b *Board) FullLines() int {
	count := 0
	for y := InteriorTop; y < InteriorBottom; y++ {
		if b.rowFull(y) {
			count++
		}
	}
	return count
}

// EraseLines removes every full row and returns how many were removed.
//
// Rows are checked top to bottom. Each match shifts everything above it down by
// one, copying bottom to top so rows still awaiting a check are not disturbed.
// The top row is refilled empty.
func (b *Board) EraseLines() int {
	count := 0
	for y := InteriorTop; y < InteriorBottom; y++ {
		if !b.rowFull(y) {
			continue
		}
		count++
		for y2 := y; y2 > InteriorTop; y2-- {
			b[y2] = b[y2-1]
		}
		b.clearRow(InteriorTop)
	}
	return count
}

// clearRow empties the playable columns of row y, keeping the walls.
func (b *Board) clearRow(y int) {
	for x := InteriorLeft; x < InteriorRight; x++ {
		b[y][x] = Empty
	}
}

// FilledCells counts the filled playable cells.
func (b *Board) FilledCells() int {
	count := 0
	for y := InteriorTop; y < InteriorBottom; y++ {
		for x := InteriorLeft; x < InteriorRight; x++ {
			if b[y][x].Filled() {
				count++
			}
		}
	}
	return count
}

// ColumnHeight returns the height of the topmost filled cell in column x,
// measured as FieldHeight-1-y. An empty column has height 0.
func (b *Board) ColumnHeight(x int) int {
	for y := InteriorTop; y < InteriorBottom; y++ {
		if b[y][x].Filled() {
			return FieldHeight - 1 - y
		}
	}
	return 0
}

// ColumnHeights returns ColumnHeight for every playable column, left to right.
func (b *Board) ColumnHeights() [VisibleWidth]int {
	var h [VisibleWidth]int
	for i := range h {
		h[i] = b.ColumnHeight(InteriorLeft + i)
	}
	return h
}
