package bridge

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/gamemaster"
)

// RenderAll rewrites the field, next-queue and hold buffers.
func (b *Bridge) RenderAll() {
	b.RenderField()
	b.RenderNext()
	b.RenderHold()
}

// RenderField overwrites the field buffers with the engine's composite of
// locked blocks, active piece and ghost.
func (b *Bridge) RenderField() {
	filled, colors := b.engine.ProjectControlledMino()
	buf := &b.buf
	for i := range buf.height {
		for j := range buf.width {
			idx := buf.fieldIndex(i, j)
			buf.field[idx] = boolByte(filled[i][j])
			setColor(buf.fieldColor, idx, colors[i][j])
		}
	}
}

// RenderNext rewrites every next-queue slot. Each slot is reset to the empty
// sentinel, then the piece at that index, if any, is written into its
// top-left corner with transparent cells where the shape is empty.
func (b *Bridge) RenderNext() {
	buf := &b.buf
	size := buf.nextSize
	for slot := range buf.numNexts {
		start := buf.nextIndex(slot, 0, 0)
		for i := start; i < start+size*size; i++ {
			buf.nexts[i] = 0
			setColor(buf.nextsColor, i, EmptyNextColor)
		}

		mino, ok := b.engine.Next(slot)
		if !ok {
			continue
		}
		mustFit("next", mino, size)
		shape, color := mino.Shape(), mino.Color()
		for i := range mino.Size() {
			for j := range mino.Size() {
				idx := buf.nextIndex(slot, i, j)
				buf.nexts[idx] = boolByte(shape[i][j])
				if shape[i][j] {
					setColor(buf.nextsColor, idx, color)
				} else {
					setColor(buf.nextsColor, idx, [channels]float32{})
				}
			}
		}
	}
}

// RenderHold rewrites the hold buffers. Both are zeroed, then a held piece
// is written top-left. Its color covers the whole bounding box, filled or not.
func (b *Bridge) RenderHold() {
	buf := &b.buf
	clear(buf.hold)
	clear(buf.holdColor)

	mino, ok := b.engine.Hold()
	if !ok {
		return
	}
	mustFit("hold", mino, buf.holdSize)
	shape, color := mino.Shape(), mino.Color()
	for i := range mino.Size() {
		for j := range mino.Size() {
			idx := buf.holdIndex(i, j)
			buf.hold[idx] = boolByte(shape[i][j])
			setColor(buf.holdColor, idx, color)
		}
	}
}

// mustFit panics when the engine reports a piece larger than its slot.
func mustFit(slot string, m gamemaster.Mino, size int) {
	if m.Size() > size {
		panic(fmt.Sprintf("bridge: %s piece size %d exceeds %s size %d", slot, m.Size(), slot, size))
	}
}

func boolByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}
