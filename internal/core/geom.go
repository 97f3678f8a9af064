// Package core holds the host-neutral pieces shared by games and hosts: the
// character screen, colors, geometry and input frames. Nothing here imports
// Bubble Tea.
package core

import "cmp"

// Rect is an axis-aligned area in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// BoxRect returns the rect of a one-cell border drawn around cols by rows
// cells, each cellW columns wide, with its top-left corner at (x, y).
func BoxRect(x, y, cols, rows, cellW int) Rect {
	return Rect{X: x, Y: y, W: cols*cellW + 2, H: rows + 2}
}

// Right is the first column past the rect.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the rect.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns r shrunk by one cell on every side. Degenerate rects
// collapse to zero size.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
