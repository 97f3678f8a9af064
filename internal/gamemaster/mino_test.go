package gamemaster

import (
	"math/rand"
	"testing"
)

func TestBuiltinMinoSizes(t *testing.T) {
	tests := []struct {
		kind Kind
		size int
	}{
		{KindI, 4},
		{KindO, 2},
		{KindT, 3},
		{KindS, 3},
		{KindZ, 3},
		{KindJ, 3},
		{KindL, 3},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			m := newKindMino(tc.kind)
			if m.Size() != tc.size {
				t.Errorf("Size() = %d, expected %d", m.Size(), tc.size)
			}
			if m.Size() > MaxMinoSize {
				t.Errorf("Size() = %d exceeds MaxMinoSize", m.Size())
			}
			filled := 0
			for _, row := range m.Shape() {
				for _, f := range row {
					if f {
						filled++
					}
				}
			}
			if filled != 4 {
				t.Errorf("filled cells = %d, expected 4", filled)
			}
		})
	}
}

func TestRotateFullTurn(t *testing.T) {
	m := newKindMino(KindT)
	r := m
	for range 4 {
		r = r.rotated(true)
	}
	for i := range m.Size() {
		for j := range m.Size() {
			if r.shape[i][j] != m.shape[i][j] {
				t.Fatalf("four clockwise turns changed cell (%d, %d)", i, j)
			}
		}
	}

	cw := m.rotated(true)
	back := cw.rotated(false)
	for i := range m.Size() {
		for j := range m.Size() {
			if back.shape[i][j] != m.shape[i][j] {
				t.Fatalf("clockwise then counter-clockwise changed cell (%d, %d)", i, j)
			}
		}
	}
}

func TestRotateClockwiseT(t *testing.T) {
	r := newKindMino(KindT).rotated(true)
	want := []string{
		".#.",
		".##",
		".#.",
	}
	for i, row := range want {
		for j, c := range row {
			if r.shape[i][j] != (c == '#') {
				t.Errorf("cell (%d, %d) = %v, expected %v", i, j, r.shape[i][j], c == '#')
			}
		}
	}
}

func TestNewMinoCopiesShape(t *testing.T) {
	shape := [][]bool{{true, false}, {false, true}}
	m := NewMino(shape, [4]float32{1, 0, 0, 1})
	shape[0][0] = false

	if !m.Shape()[0][0] {
		t.Error("NewMino should copy the shape")
	}
	if m.Kind() != -1 {
		t.Errorf("custom mino Kind() = %v, expected -1", m.Kind())
	}
}

func TestNewMinoPanicsOnNonSquare(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-square shape")
		}
	}()
	NewMino([][]bool{{true, true}}, [4]float32{})
}

func TestBagContainsEveryKind(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	b := newBag(r.Uint64)

	for round := range 5 {
		seen := make(map[Kind]bool)
		for range KindCount {
			seen[b.next()] = true
		}
		if len(seen) != int(KindCount) {
			t.Errorf("round %d: saw %d distinct kinds, expected %d", round, len(seen), KindCount)
		}
	}
}
