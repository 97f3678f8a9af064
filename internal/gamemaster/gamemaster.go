package gamemaster

import (
	"errors"
	"fmt"
	"time"
)

// Engine defaults. Overridable through Options.
const (
	DefaultFallInterval    = time.Second
	DefaultLockDelay       = 500 * time.Millisecond
	DefaultGarbageInterval = 15 * time.Second
	DefaultQueueDepth      = 6
)

// GhostAlpha is the alpha channel used for ghost cells in projections.
const GhostAlpha float32 = 0.3

// maxLockResets caps how often moving a grounded piece restarts the lock delay.
const maxLockResets = 15

var (
	// ErrBoardTooSmall is returned when the board cannot fit the largest mino.
	ErrBoardTooSmall = errors.New("gamemaster: board too small")
	// ErrNilRandSource is returned when a random source is missing.
	ErrNilRandSource = errors.New("gamemaster: nil random source")
)

// wall kick offsets tried in order when a rotation collides, as (row, col).
var kickOffsets = [][2]int{{0, 0}, {0, -1}, {0, 1}, {-1, 0}, {0, -2}, {0, 2}}

// KeyPress is the input for one simulation step.
type KeyPress struct {
	RightRotate bool
	LeftRotate  bool
	Hold        bool
	SoftDrop    bool
	HardDrop    bool
	RightMove   bool
	LeftMove    bool
}

// Option configures a GameMaster.
type Option func(*GameMaster)

// WithFallInterval sets the base gravity interval.
func WithFallInterval(d time.Duration) Option {
	return func(g *GameMaster) {
		if d > 0 {
			g.fallInterval = d
		}
	}
}

// WithLockDelay sets how long a grounded piece waits before locking.
func WithLockDelay(d time.Duration) Option {
	return func(g *GameMaster) {
		if d >= 0 {
			g.lockDelay = d
		}
	}
}

// WithGarbageInterval sets how often a garbage row becomes pending.
func WithGarbageInterval(d time.Duration) Option {
	return func(g *GameMaster) {
		if d > 0 {
			g.garbageInterval = d
		}
	}
}

// WithQueueDepth sets how many upcoming pieces Next reports.
func WithQueueDepth(n int) Option {
	return func(g *GameMaster) {
		if n >= 0 {
			g.queueDepth = n
		}
	}
}

// WithFallCurve derives the gravity interval from the deleted line count.
// A non-positive result falls back to the base interval.
func WithFallCurve(f func(lines int) time.Duration) Option {
	return func(g *GameMaster) {
		g.fallCurve = f
	}
}

type active struct {
	mino     Mino
	row, col int
}

// GameMaster owns the full game state and advances it one Tick at a time.
// It is not safe for concurrent use.
type GameMaster struct {
	height, width   int
	ghost, garbage  bool
	fallInterval    time.Duration
	lockDelay       time.Duration
	garbageInterval time.Duration
	fallCurve       func(lines int) time.Duration
	queueDepth      int

	board       *board
	bag         *bag
	garbageRand RandSource
	queue       []Kind
	current     *active

	holdKind Kind
	holding  bool
	holdUsed bool

	started        bool
	lastFall       time.Duration
	groundedAt     time.Duration
	grounded       bool
	lockResets     int
	lastGarbage    time.Duration
	pendingGarbage int

	deletedLines int
	gameOver     bool
}

// New creates a game on an empty board. No piece is active until the
// first Tick.
func New(height, width int, pieceRand, garbageRand RandSource, ghost, garbage bool, opts ...Option) (*GameMaster, error) {
	if height < MaxMinoSize || width < MaxMinoSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrBoardTooSmall, height, width, MaxMinoSize, MaxMinoSize)
	}
	if pieceRand == nil || garbageRand == nil {
		return nil, ErrNilRandSource
	}

	g := &GameMaster{
		height:          height,
		width:           width,
		ghost:           ghost,
		garbage:         garbage,
		fallInterval:    DefaultFallInterval,
		lockDelay:       DefaultLockDelay,
		garbageInterval: DefaultGarbageInterval,
		queueDepth:      DefaultQueueDepth,
		board:           newBoard(height, width),
		bag:             newBag(pieceRand),
		garbageRand:     garbageRand,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.fillQueue()
	return g, nil
}

// Tick advances the game to nowMs (milliseconds since session start) and
// applies the input for this step.
func (g *GameMaster) Tick(nowMs int64, keys KeyPress) {
	if g.gameOver {
		return
	}
	now := time.Duration(nowMs) * time.Millisecond
	if !g.started {
		g.started = true
		g.lastGarbage = now
	}

	if g.current == nil && !g.spawn(now) {
		return
	}

	if keys.Hold && !g.holdCurrent(now) {
		return
	}
	if keys.RightRotate {
		g.rotate(true, now)
	}
	if keys.LeftRotate {
		g.rotate(false, now)
	}
	if keys.RightMove {
		g.shift(1, now)
	}
	if keys.LeftMove {
		g.shift(-1, now)
	}
	if keys.SoftDrop && g.tryMove(1, 0) {
		g.lastFall = now
		g.grounded = false
	}

	if keys.HardDrop {
		for g.tryMove(1, 0) {
		}
		g.lockCurrent(now)
	} else {
		g.applyGravity(now)
	}
	g.tickGarbage(now)
}

// ProjectControlledMino composites the active piece, and its ghost when
// enabled, onto the locked board. Both grids are indexed [row][col].
func (g *GameMaster) ProjectControlledMino() ([][]bool, [][][4]float32) {
	filled := make([][]bool, g.height)
	colors := make([][][4]float32, g.height)
	for i := range g.height {
		filled[i] = make([]bool, g.width)
		colors[i] = make([][4]float32, g.width)
		for j, c := range g.board.cells[i] {
			filled[i][j] = c.filled
			colors[i][j] = c.color
		}
	}
	if g.current == nil {
		return filled, colors
	}

	m := g.current.mino
	if g.ghost {
		ghostColor := m.color
		ghostColor[3] = GhostAlpha
		g.paint(filled, colors, m, g.ghostRow(), g.current.col, ghostColor, true)
	}
	g.paint(filled, colors, m, g.current.row, g.current.col, m.color, false)
	return filled, colors
}

func (g *GameMaster) paint(filled [][]bool, colors [][][4]float32, m Mino, row, col int, color [4]float32, emptyOnly bool) {
	for i, line := range m.shape {
		for j, on := range line {
			r, c := row+i, col+j
			if !on || r < 0 || r >= g.height || c < 0 || c >= g.width {
				continue
			}
			if emptyOnly && filled[r][c] {
				continue
			}
			filled[r][c] = true
			colors[r][c] = color
		}
	}
}

// Next returns the piece at queue position index.
func (g *GameMaster) Next(index int) (Mino, bool) {
	if index < 0 || index >= g.queueDepth || index >= len(g.queue) {
		return Mino{}, false
	}
	return newKindMino(g.queue[index]), true
}

// Hold returns the held piece in spawn orientation, if any.
func (g *GameMaster) Hold() (Mino, bool) {
	if !g.holding {
		return Mino{}, false
	}
	return newKindMino(g.holdKind), true
}

// NumDeletedLines returns the number of rows cleared since the game started.
func (g *GameMaster) NumDeletedLines() int {
	return g.deletedLines
}

// GameOver reports whether the game has ended.
func (g *GameMaster) GameOver() bool {
	return g.gameOver
}

// PendingGarbage returns the garbage rows waiting for the next lock.
func (g *GameMaster) PendingGarbage() int {
	return g.pendingGarbage
}

// Active returns the controlled piece and its top-left position.
func (g *GameMaster) Active() (m Mino, row, col int, ok bool) {
	if g.current == nil {
		return Mino{}, 0, 0, false
	}
	return g.current.mino, g.current.row, g.current.col, true
}

func (g *GameMaster) fillQueue() {
	for len(g.queue) < g.queueDepth {
		g.queue = append(g.queue, g.bag.next())
	}
}

func (g *GameMaster) spawn(now time.Duration) bool {
	var k Kind
	if len(g.queue) == 0 {
		k = g.bag.next()
	} else {
		k = g.queue[0]
		g.queue = g.queue[1:]
	}
	g.fillQueue()
	return g.place(newKindMino(k), now)
}

// place puts m at the spawn position. A collision there ends the game.
func (g *GameMaster) place(m Mino, now time.Duration) bool {
	row := -m.topEmptyRows()
	col := (g.width - m.Size()) / 2
	if g.board.collides(m, row, col) {
		g.current = nil
		g.gameOver = true
		return false
	}
	g.current = &active{mino: m, row: row, col: col}
	g.lastFall = now
	g.grounded = false
	g.lockResets = 0
	return true
}

func (g *GameMaster) holdCurrent(now time.Duration) bool {
	if g.holdUsed {
		return true
	}
	g.holdUsed = true
	cur := g.current.mino.kind
	if !g.holding {
		g.holdKind, g.holding = cur, true
		g.current = nil
		return g.spawn(now)
	}
	next := g.holdKind
	g.holdKind = cur
	return g.place(newKindMino(next), now)
}

func (g *GameMaster) tryMove(dRow, dCol int) bool {
	c := g.current
	if c == nil || g.board.collides(c.mino, c.row+dRow, c.col+dCol) {
		return false
	}
	c.row += dRow
	c.col += dCol
	return true
}

func (g *GameMaster) shift(dCol int, now time.Duration) {
	if g.tryMove(0, dCol) {
		g.resetLock(now)
	}
}

func (g *GameMaster) rotate(clockwise bool, now time.Duration) {
	c := g.current
	r := c.mino.rotated(clockwise)
	for _, k := range kickOffsets {
		if !g.board.collides(r, c.row+k[0], c.col+k[1]) {
			c.mino = r
			c.row += k[0]
			c.col += k[1]
			g.resetLock(now)
			return
		}
	}
}

func (g *GameMaster) resetLock(now time.Duration) {
	if g.grounded && g.lockResets < maxLockResets {
		g.groundedAt = now
		g.lockResets++
	}
}

func (g *GameMaster) currentFallInterval() time.Duration {
	if g.fallCurve != nil {
		if d := g.fallCurve(g.deletedLines); d > 0 {
			return d
		}
	}
	return g.fallInterval
}

func (g *GameMaster) applyGravity(now time.Duration) {
	interval := g.currentFallInterval()
	for now-g.lastFall >= interval {
		g.lastFall += interval
		if !g.tryMove(1, 0) {
			g.lastFall = now
			break
		}
		g.grounded = false
	}

	c := g.current
	if !g.board.collides(c.mino, c.row+1, c.col) {
		g.grounded = false
		return
	}
	if !g.grounded {
		g.grounded = true
		g.groundedAt = now
		return
	}
	if now-g.groundedAt >= g.lockDelay {
		g.lockCurrent(now)
	}
}

func (g *GameMaster) ghostRow() int {
	c := g.current
	row := c.row
	for !g.board.collides(c.mino, row+1, c.col) {
		row++
	}
	return row
}

func (g *GameMaster) lockCurrent(now time.Duration) {
	c := g.current
	g.current = nil
	if !g.board.lock(c.mino, c.row, c.col) {
		g.gameOver = true
		return
	}

	lines := g.board.clearLines()
	g.deletedLines += lines
	if lines > 0 {
		g.pendingGarbage = max(0, g.pendingGarbage-lines)
	} else {
		for g.pendingGarbage > 0 {
			g.pendingGarbage--
			hole := int(g.garbageRand() % uint64(g.width))
			if !g.board.addGarbage(hole) {
				g.gameOver = true
				return
			}
		}
	}

	g.holdUsed = false
	g.spawn(now)
}

func (g *GameMaster) tickGarbage(now time.Duration) {
	if !g.garbage || g.gameOver {
		return
	}
	for now-g.lastGarbage >= g.garbageInterval {
		g.lastGarbage += g.garbageInterval
		g.pendingGarbage++
	}
}
