package gamemaster

import "testing"

func fillRow(b *board, row int) {
	for j := range b.width {
		b.cells[row][j] = cell{filled: true}
	}
}

func TestClearLines(t *testing.T) {
	b := newBoard(6, 4)
	fillRow(b, 5)
	fillRow(b, 3)
	b.cells[4][0] = cell{filled: true}

	if n := b.clearLines(); n != 2 {
		t.Fatalf("clearLines() = %d, expected 2", n)
	}
	if !b.cells[5][0].filled {
		t.Error("partial row should drop to the bottom")
	}
	for i := range 5 {
		for j := range 4 {
			if b.cells[i][j].filled {
				t.Errorf("cell (%d, %d) should be empty", i, j)
			}
		}
	}
	if len(b.cells) != 6 {
		t.Errorf("board height changed to %d", len(b.cells))
	}
}

func TestCollides(t *testing.T) {
	b := newBoard(6, 4)
	b.cells[5][1] = cell{filled: true}
	o := newKindMino(KindO)

	tests := []struct {
		name     string
		row, col int
		expected bool
	}{
		{"free", 0, 0, false},
		{"left wall", 0, -1, true},
		{"right wall", 0, 3, true},
		{"floor", 5, 0, true},
		{"locked cell", 4, 0, true},
		{"above top", -2, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.collides(o, tc.row, tc.col); got != tc.expected {
				t.Errorf("collides(%d, %d) = %v, expected %v", tc.row, tc.col, got, tc.expected)
			}
		})
	}
}

func TestLockAboveTop(t *testing.T) {
	tests := []struct {
		name     string
		row      int
		expected bool
		visible  bool
	}{
		{"inside", 0, true, true},
		{"partly above", -1, true, true},
		{"entirely above", -2, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newBoard(6, 4)
			if got := b.lock(newKindMino(KindO), tc.row, 0); got != tc.expected {
				t.Errorf("lock(%d, 0) = %v, expected %v", tc.row, got, tc.expected)
			}
			if b.cells[0][0].filled != tc.visible {
				t.Errorf("cell (0,0) filled = %v, expected %v", b.cells[0][0].filled, tc.visible)
			}
		})
	}
}

func TestAddGarbage(t *testing.T) {
	b := newBoard(4, 4)
	b.cells[3][0] = cell{filled: true}

	if !b.addGarbage(2) {
		t.Fatal("addGarbage on a low stack should not overflow")
	}
	if !b.cells[2][0].filled {
		t.Error("existing cells should move up one row")
	}
	for j, c := range b.cells[3] {
		if (j == 2) == c.filled {
			t.Errorf("garbage row col %d filled = %v", j, c.filled)
		}
	}

	fillRow(b, 0)
	if b.addGarbage(0) {
		t.Error("pushing a filled top row should overflow")
	}
}
