package gamemaster

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func constRand(v uint64) RandSource {
	return func() uint64 { return v }
}

func newTestGame(t *testing.T, ghost, garbage bool, opts ...Option) *GameMaster {
	t.Helper()
	g, err := New(20, 10, constRand(0), constRand(3), ghost, garbage, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func countFilled(filled [][]bool) int {
	n := 0
	for _, row := range filled {
		for _, f := range row {
			if f {
				n++
			}
		}
	}
	return n
}

func TestNewRejectsSmallBoard(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"zero", 0, 0},
		{"narrow", 20, 3},
		{"short", 3, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.height, tc.width, constRand(0), constRand(0), true, false)
			if !errors.Is(err, ErrBoardTooSmall) {
				t.Errorf("New(%d, %d) error = %v, expected ErrBoardTooSmall", tc.height, tc.width, err)
			}
		})
	}

	if _, err := New(20, 10, nil, constRand(0), true, false); !errors.Is(err, ErrNilRandSource) {
		t.Errorf("New() with nil rand error = %v, expected ErrNilRandSource", err)
	}
}

func TestProjectionEmptyBeforeFirstTick(t *testing.T) {
	g := newTestGame(t, true, false)

	filled, colors := g.ProjectControlledMino()
	if len(filled) != 20 || len(filled[0]) != 10 {
		t.Fatalf("projection size = %dx%d, expected 20x10", len(filled), len(filled[0]))
	}
	if n := countFilled(filled); n != 0 {
		t.Errorf("expected empty projection before first tick, got %d filled cells", n)
	}
	if colors[19][9] != [4]float32{} {
		t.Errorf("expected zero color, got %v", colors[19][9])
	}
	if _, _, _, ok := g.Active(); ok {
		t.Error("no piece should be active before the first tick")
	}
}

func TestFirstTickSpawnsCentered(t *testing.T) {
	g := newTestGame(t, false, false)
	g.queue[0] = KindT

	g.Tick(0, KeyPress{})

	m, row, col, ok := g.Active()
	if !ok {
		t.Fatal("expected an active piece after the first tick")
	}
	if m.Kind() != KindT {
		t.Errorf("active kind = %v, expected T", m.Kind())
	}
	if row != 0 || col != 3 {
		t.Errorf("spawn position = (%d, %d), expected (0, 3)", row, col)
	}
	if len(g.queue) != DefaultQueueDepth {
		t.Errorf("queue length = %d, expected %d", len(g.queue), DefaultQueueDepth)
	}
}

func TestHardDropLocksAtBottom(t *testing.T) {
	g := newTestGame(t, false, false)

	g.Tick(0, KeyPress{HardDrop: true})

	locked := 0
	for _, row := range g.board.cells {
		for _, c := range row {
			if c.filled {
				locked++
			}
		}
	}
	if locked != 4 {
		t.Errorf("locked cells = %d, expected 4", locked)
	}
	bottom := 0
	for _, c := range g.board.cells[19] {
		if c.filled {
			bottom++
		}
	}
	if bottom == 0 {
		t.Error("hard-dropped piece should rest on the floor")
	}
	if _, _, _, ok := g.Active(); !ok {
		t.Error("next piece should spawn after a lock")
	}
	if g.NumDeletedLines() != 0 {
		t.Errorf("NumDeletedLines() = %d, expected 0", g.NumDeletedLines())
	}
}

func TestHardDropClearsLine(t *testing.T) {
	g := newTestGame(t, false, false)
	g.queue[0] = KindI
	for j := range 10 {
		if j < 3 || j > 6 {
			g.board.cells[19][j] = cell{filled: true, color: GarbageColor}
		}
	}

	g.Tick(0, KeyPress{HardDrop: true})

	if g.NumDeletedLines() != 1 {
		t.Fatalf("NumDeletedLines() = %d, expected 1", g.NumDeletedLines())
	}
	for j, c := range g.board.cells[19] {
		if c.filled {
			t.Errorf("bottom row col %d should be empty after clear", j)
		}
	}
}

func TestGravityAndLockDelay(t *testing.T) {
	g := newTestGame(t, false, false,
		WithFallInterval(10*time.Millisecond),
		WithLockDelay(100*time.Millisecond),
	)
	g.queue[0] = KindO

	g.Tick(0, KeyPress{})
	g.Tick(1000, KeyPress{})

	_, row, _, ok := g.Active()
	if !ok {
		t.Fatal("piece should still be active while lock delay runs")
	}
	if row != 18 {
		t.Errorf("row after gravity = %d, expected 18", row)
	}

	g.Tick(1099, KeyPress{})
	if m, _, _, _ := g.Active(); m.Kind() != KindO {
		t.Error("piece locked before the lock delay expired")
	}

	g.Tick(1100, KeyPress{})
	if !g.board.cells[19][4].filled || !g.board.cells[19][5].filled {
		t.Error("O piece should be locked on the floor")
	}
}

func TestSoftDropMovesOneRow(t *testing.T) {
	g := newTestGame(t, false, false)
	g.queue[0] = KindT

	g.Tick(0, KeyPress{})
	g.Tick(10, KeyPress{SoftDrop: true})

	if _, row, _, _ := g.Active(); row != 1 {
		t.Errorf("row after soft drop = %d, expected 1", row)
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	g := newTestGame(t, false, false)
	g.queue[0] = KindO

	g.Tick(0, KeyPress{})
	for i := range 10 {
		g.Tick(int64(i+1), KeyPress{LeftMove: true})
	}

	if _, _, col, _ := g.Active(); col != 0 {
		t.Errorf("col after moving into the wall = %d, expected 0", col)
	}
}

func TestHoldOncePerPiece(t *testing.T) {
	g := newTestGame(t, false, false)
	g.queue[0] = KindT
	g.queue[1] = KindS

	g.Tick(0, KeyPress{})
	g.Tick(1, KeyPress{Hold: true})

	held, ok := g.Hold()
	if !ok || held.Kind() != KindT {
		t.Fatalf("Hold() = %v, %v; expected T", held.Kind(), ok)
	}
	if m, _, _, _ := g.Active(); m.Kind() != KindS {
		t.Errorf("active after hold = %v, expected S", m.Kind())
	}

	g.Tick(2, KeyPress{Hold: true})
	held, _ = g.Hold()
	if held.Kind() != KindT {
		t.Errorf("second hold for the same piece should be ignored, held = %v", held.Kind())
	}

	g.Tick(3, KeyPress{HardDrop: true})
	g.Tick(4, KeyPress{Hold: true})
	held, _ = g.Hold()
	if m, _, _, _ := g.Active(); m.Kind() != KindT {
		t.Errorf("hold after a lock should swap the held T back in, active = %v", m.Kind())
	}
	if held.Kind() == KindT {
		t.Error("held piece should have been swapped out")
	}
}

func TestNextQueueDepth(t *testing.T) {
	g := newTestGame(t, false, false, WithQueueDepth(3))

	for i := range 3 {
		if _, ok := g.Next(i); !ok {
			t.Errorf("Next(%d) should exist", i)
		}
	}
	if _, ok := g.Next(3); ok {
		t.Error("Next(3) should be beyond the queue depth")
	}
	if _, ok := g.Next(-1); ok {
		t.Error("Next(-1) should not exist")
	}
}

func TestGhostProjection(t *testing.T) {
	withGhost := newTestGame(t, true, false)
	withGhost.queue[0] = KindT
	withGhost.Tick(0, KeyPress{})

	filled, colors := withGhost.ProjectControlledMino()
	if n := countFilled(filled); n != 8 {
		t.Errorf("filled cells with ghost = %d, expected 8", n)
	}
	if colors[19][3][3] != GhostAlpha {
		t.Errorf("ghost alpha = %v, expected %v", colors[19][3][3], GhostAlpha)
	}
	if colors[1][3][3] != 1 {
		t.Errorf("active piece alpha = %v, expected 1", colors[1][3][3])
	}

	noGhost := newTestGame(t, false, false)
	noGhost.queue[0] = KindT
	noGhost.Tick(0, KeyPress{})
	filled, _ = noGhost.ProjectControlledMino()
	if n := countFilled(filled); n != 4 {
		t.Errorf("filled cells without ghost = %d, expected 4", n)
	}
}

func TestGarbageRisesOnLock(t *testing.T) {
	g := newTestGame(t, false, true, WithGarbageInterval(time.Second))

	g.Tick(0, KeyPress{})
	g.Tick(1000, KeyPress{})
	if g.PendingGarbage() != 1 {
		t.Fatalf("PendingGarbage() = %d, expected 1", g.PendingGarbage())
	}

	g.Tick(1001, KeyPress{HardDrop: true})

	if g.PendingGarbage() != 0 {
		t.Errorf("PendingGarbage() after lock = %d, expected 0", g.PendingGarbage())
	}
	bottom := g.board.cells[19]
	if bottom[3].filled {
		t.Error("garbage hole should be at column 3")
	}
	for j, c := range bottom {
		if j != 3 && (!c.filled || c.color != GarbageColor) {
			t.Errorf("garbage cell %d = %+v, expected filled gray", j, c)
		}
	}
}

func TestBlockOutEndsGame(t *testing.T) {
	g := newTestGame(t, false, false)
	for i := range 2 {
		for j := range 10 {
			g.board.cells[i][j] = cell{filled: true}
		}
	}

	g.Tick(0, KeyPress{})
	if !g.GameOver() {
		t.Fatal("spawning into filled cells should end the game")
	}

	g.Tick(10, KeyPress{HardDrop: true})
	if _, _, _, ok := g.Active(); ok {
		t.Error("ticks after game over should be no-ops")
	}
}

func TestFallCurve(t *testing.T) {
	g := newTestGame(t, false, false, WithFallCurve(func(lines int) time.Duration {
		return 100 * time.Millisecond
	}))
	g.queue[0] = KindT

	g.Tick(0, KeyPress{})
	g.Tick(300, KeyPress{})

	if _, row, _, _ := g.Active(); row != 3 {
		t.Errorf("row after 300ms at 100ms gravity = %d, expected 3", row)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() [][]bool {
		r1 := rand.New(rand.NewSource(7))
		r2 := rand.New(rand.NewSource(8))
		g, err := New(20, 10, r1.Uint64, r2.Uint64, true, true)
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		for i := range 200 {
			keys := KeyPress{
				RightMove: i%3 == 0,
				LeftMove:  i%5 == 0,
				HardDrop:  i%7 == 0,
			}
			g.Tick(int64(i*50), keys)
		}
		filled, _ := g.ProjectControlledMino()
		return filled
	}

	a, b := run(), run()
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("runs diverged at (%d, %d)", i, j)
			}
		}
	}
}
