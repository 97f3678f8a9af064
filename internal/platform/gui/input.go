package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tetris/internal/gamemaster"
)

// Soft drop auto-repeats while held. Values are in ticks.
const (
	repeatDelay    = 10
	repeatInterval = 3
)

// pressDuration reports how many ticks a key has been held, zero if up.
type pressDuration func(ebiten.Key) int

// repeating fires on the first tick of a press and then periodically after
// the delay.
func repeating(ticks int) bool {
	switch {
	case ticks == 1:
		return true
	case ticks > repeatDelay:
		return (ticks-repeatDelay)%repeatInterval == 0
	default:
		return false
	}
}

func firstTick(held pressDuration, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if held(k) == 1 {
			return true
		}
	}
	return false
}

func anyRepeating(held pressDuration, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if repeating(held(k)) {
			return true
		}
	}
	return false
}

// readKeys maps the keyboard onto the seven control flags.
func readKeys(held pressDuration) gamemaster.KeyPress {
	return gamemaster.KeyPress{
		RightRotate: firstTick(held, ebiten.KeyX, ebiten.KeyArrowUp),
		LeftRotate:  firstTick(held, ebiten.KeyZ),
		Hold:        firstTick(held, ebiten.KeyC, ebiten.KeyShiftLeft),
		SoftDrop:    anyRepeating(held, ebiten.KeyArrowDown),
		HardDrop:    firstTick(held, ebiten.KeySpace),
		RightMove:   anyRepeating(held, ebiten.KeyArrowRight),
		LeftMove:    anyRepeating(held, ebiten.KeyArrowLeft),
	}
}
