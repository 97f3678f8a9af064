package bridge

import "github.com/vovakirdan/tui-tetris/internal/gamemaster"

// Step packages the seven control flags into one input and advances the
// engine once at timestampMs.
func (b *Bridge) Step(
	timestampMs int64,
	rightRotate, leftRotate, hold, softDrop, hardDrop, rightMove, leftMove bool,
) {
	b.StepKeys(timestampMs, gamemaster.KeyPress{
		RightRotate: rightRotate,
		LeftRotate:  leftRotate,
		Hold:        hold,
		SoftDrop:    softDrop,
		HardDrop:    hardDrop,
		RightMove:   rightMove,
		LeftMove:    leftMove,
	})
}

// StepKeys forwards keys to the engine unchanged. Timing rules such as
// repeat rates belong to the engine.
func (b *Bridge) StepKeys(timestampMs int64, keys gamemaster.KeyPress) {
	b.engine.Tick(timestampMs, keys)
}
