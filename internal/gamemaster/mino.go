// Package gamemaster implements the Tetris rules engine: board, minos,
// randomizer, gravity, locking, holding and garbage. It knows nothing about
// how its state is displayed; hosts read it through projections.
package gamemaster

import "fmt"

// MaxMinoSize is the bounding box side of the largest built-in mino (I).
const MaxMinoSize = 4

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindCount
)

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Spawn orientations, rows top to bottom.
var shapeTable = [KindCount][]string{
	KindI: {
		"....",
		"####",
		"....",
		"....",
	},
	KindO: {
		"##",
		"##",
	},
	KindT: {
		".#.",
		"###",
		"...",
	},
	KindS: {
		".##",
		"##.",
		"...",
	},
	KindZ: {
		"##.",
		".##",
		"...",
	},
	KindJ: {
		"#..",
		"###",
		"...",
	},
	KindL: {
		"..#",
		"###",
		"...",
	},
}

var colorTable = [KindCount][4]float32{
	KindI: {0.0, 0.9, 0.9, 1.0},
	KindO: {0.95, 0.85, 0.0, 1.0},
	KindT: {0.6, 0.2, 0.8, 1.0},
	KindS: {0.2, 0.8, 0.2, 1.0},
	KindZ: {0.9, 0.15, 0.15, 1.0},
	KindJ: {0.15, 0.35, 0.9, 1.0},
	KindL: {0.95, 0.55, 0.1, 1.0},
}

// Mino is a square boolean shape with an RGBA color.
// Shapes returned by Shape must not be modified.
type Mino struct {
	kind  Kind
	shape [][]bool
	color [4]float32
}

// NewMino builds a mino from an arbitrary square shape.
// Panics if the shape is empty or not square.
func NewMino(shape [][]bool, color [4]float32) Mino {
	size := len(shape)
	if size == 0 {
		panic("gamemaster: empty mino shape")
	}
	cp := make([][]bool, size)
	for i, row := range shape {
		if len(row) != size {
			panic(fmt.Sprintf("gamemaster: mino shape row %d has %d cells, want %d", i, len(row), size))
		}
		cp[i] = append([]bool(nil), row...)
	}
	return Mino{kind: -1, shape: cp, color: color}
}

// newKindMino returns the spawn orientation of a tetromino.
func newKindMino(k Kind) Mino {
	rows := shapeTable[k]
	shape := make([][]bool, len(rows))
	for i, row := range rows {
		shape[i] = make([]bool, len(row))
		for j, c := range row {
			shape[i][j] = c == '#'
		}
	}
	return Mino{kind: k, shape: shape, color: colorTable[k]}
}

// Kind returns the tetromino kind, or -1 for custom minos.
func (m Mino) Kind() Kind {
	return m.kind
}

// Size returns the bounding box side length.
func (m Mino) Size() int {
	return len(m.shape)
}

// Shape returns the occupancy matrix, indexed [row][col].
func (m Mino) Shape() [][]bool {
	return m.shape
}

// Color returns the RGBA color in the 0-1 range.
func (m Mino) Color() [4]float32 {
	return m.color
}

// rotated returns a copy turned a quarter turn.
func (m Mino) rotated(clockwise bool) Mino {
	size := m.Size()
	out := make([][]bool, size)
	for i := range out {
		out[i] = make([]bool, size)
	}
	for i := range size {
		for j := range size {
			if clockwise {
				out[j][size-1-i] = m.shape[i][j]
			} else {
				out[size-1-j][i] = m.shape[i][j]
			}
		}
	}
	return Mino{kind: m.kind, shape: out, color: m.color}
}

// topEmptyRows counts leading rows without filled cells.
func (m Mino) topEmptyRows() int {
	n := 0
	for _, row := range m.shape {
		for _, filled := range row {
			if filled {
				return n
			}
		}
		n++
	}
	return n
}
