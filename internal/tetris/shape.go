package tetris

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindS
	KindZ
	KindJ
	KindL
	KindT
)

// kindCount is the number of piece kinds. A bag holds exactly one of each.
const kindCount = 7

// ShapeSize is the side of the square bounding box every shape lives in.
const ShapeSize = 4

// Shape is a 4x4 occupancy matrix indexed [y][x].
type Shape [ShapeSize][ShapeSize]Cell

const (
	_i = CellI
	_o = CellO
	_s = CellS
	_z = CellZ
	_j = CellJ
	_l = CellL
	_t = CellT
)

// catalog holds the spawn orientation of every kind. Read only.
var catalog = [kindCount]Shape{
	KindI: {
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{_i, _i, _i, _i},
		{0, 0, 0, 0},
	},
	KindO: {
		{0, 0, 0, 0},
		{0, _o, _o, 0},
		{0, _o, _o, 0},
		{0, 0, 0, 0},
	},
	KindS: {
		{0, 0, 0, 0},
		{0, _s, _s, 0},
		{_s, _s, 0, 0},
		{0, 0, 0, 0},
	},
	KindZ: {
		{0, 0, 0, 0},
		{_z, _z, 0, 0},
		{0, _z, _z, 0},
		{0, 0, 0, 0},
	},
	KindJ: {
		{0, 0, 0, 0},
		{_j, 0, 0, 0},
		{_j, _j, _j, 0},
		{0, 0, 0, 0},
	},
	KindL: {
		{0, 0, 0, 0},
		{0, 0, _l, 0},
		{_l, _l, _l, 0},
		{0, 0, 0, 0},
	},
	KindT: {
		{0, 0, 0, 0},
		{0, _t, 0, 0},
		{_t, _t, _t, 0},
		{0, 0, 0, 0},
	},
}

// Kinds returns all piece kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindS, KindZ, KindJ, KindL, KindT}
}

// Shape returns the spawn orientation of the kind.
// The returned value is a copy; the catalog itself never changes.
func (k Kind) Shape() Shape {
	return catalog[k]
}

// Cell returns the board cell a locked piece of this kind leaves behind.
func (k Kind) Cell() Cell {
	return CellI + Cell(k)
}

// String returns the kind's letter.
func (k Kind) String() string {
	if k >= kindCount {
		return "?"
	}
	return k.Cell().String()
}

// RotateLeft returns the shape turned 90 degrees counter-clockwise.
func (s Shape) RotateLeft() Shape {
	var r Shape
	for y := 0; y < ShapeSize; y++ {
		for x := 0; x < ShapeSize; x++ {
			r[ShapeSize-1-x][y] = s[y][x]
		}
	}
	return r
}

// RotateRight returns the shape turned 90 degrees clockwise.
func (s Shape) RotateRight() Shape {
	var r Shape
	for y := 0; y < ShapeSize; y++ {
		for x := 0; x < ShapeSize; x++ {
			r[y][x] = s[ShapeSize-1-x][y]
		}
	}
	return r
}

// IsEmpty reports whether the shape has no occupied cells.
func (s Shape) IsEmpty() bool {
	for y := range s {
		for x := range s[y] {
			if s[y][x].Filled() {
				return false
			}
		}
	}
	return true
}
