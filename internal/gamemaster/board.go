package gamemaster

// GarbageColor is the color of injected garbage rows.
var GarbageColor = [4]float32{0.5, 0.5, 0.5, 1.0}

type cell struct {
	filled bool
	color  [4]float32
}

// board holds locked cells. Row 0 is the top.
type board struct {
	height int
	width  int
	cells  [][]cell
}

func newBoard(height, width int) *board {
	b := &board{height: height, width: width}
	b.cells = make([][]cell, height)
	for i := range b.cells {
		b.cells[i] = make([]cell, width)
	}
	return b
}

// collides reports whether the mino placed with its top-left corner at
// (row, col) hits a wall, the floor or a locked cell. Cells above the top
// edge only collide with the side walls.
func (b *board) collides(m Mino, row, col int) bool {
	for i, line := range m.shape {
		for j, filled := range line {
			if !filled {
				continue
			}
			r, c := row+i, col+j
			if c < 0 || c >= b.width || r >= b.height {
				return true
			}
			if r >= 0 && b.cells[r][c].filled {
				return true
			}
		}
	}
	return false
}

// lock writes the visible part of the mino into the board. Returns false
// when every filled cell landed above the field.
func (b *board) lock(m Mino, row, col int) bool {
	visible := false
	for i, line := range m.shape {
		for j, filled := range line {
			if !filled {
				continue
			}
			r, c := row+i, col+j
			if r < 0 {
				continue
			}
			b.cells[r][c] = cell{filled: true, color: m.color}
			visible = true
		}
	}
	return visible
}

// clearLines removes full rows and returns how many were removed.
func (b *board) clearLines() int {
	kept := make([][]cell, 0, b.height)
	for _, row := range b.cells {
		full := true
		for _, c := range row {
			if !c.filled {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, row)
		}
	}
	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}
	fresh := make([][]cell, cleared, b.height)
	for i := range fresh {
		fresh[i] = make([]cell, b.width)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

// addGarbage pushes the board up one row and fills the bottom row except
// for the hole column. Returns false if a locked cell was pushed off the top.
func (b *board) addGarbage(hole int) bool {
	overflow := false
	for _, c := range b.cells[0] {
		if c.filled {
			overflow = true
			break
		}
	}
	row := make([]cell, b.width)
	for j := range row {
		if j != hole {
			row[j] = cell{filled: true, color: GarbageColor}
		}
	}
	b.cells = append(b.cells[1:], row)
	return !overflow
}
