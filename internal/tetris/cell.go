// Package tetris implements the falling-block game core: the shape catalog,
// the 7-bag randomizer, the walled board and the game state machine.
// It has no knowledge of terminals, windows or timers beyond Session.
package tetris

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Ghost
	CellI
	CellO
	CellS
	CellZ
	CellJ
	CellL
	CellT
)

// Filled reports whether the cell blocks movement.
func (c Cell) Filled() bool {
	return c != Empty
}

// String returns a short name for the cell.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Ghost:
		return "ghost"
	case CellI:
		return "I"
	case CellO:
		return "O"
	case CellS:
		return "S"
	case CellZ:
		return "Z"
	case CellJ:
		return "J"
	case CellL:
		return "L"
	case CellT:
		return "T"
	default:
		return "?"
	}
}
