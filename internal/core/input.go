package core

import (
	"maps"
	"time"
)

// Action is a semantic input. Hosts map physical keys onto actions and
// games only ever see actions.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateRight        // X, Up - rotate clockwise
	ActionRotateLeft         // Z - rotate counter-clockwise
	ActionHold               // C, Shift+Tab - swap with hold slot
	ActionSoftDrop           // Down - drop one row
	ActionHardDrop           // Space - drop and lock
	ActionMoveRight          // Right
	ActionMoveLeft           // Left
	ActionUp                 // K - menu navigation
	ActionDown               // J - menu navigation
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - restart game after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

var actionNames = [...]string{
	ActionNone:        "None",
	ActionRotateRight: "RotateRight",
	ActionRotateLeft:  "RotateLeft",
	ActionHold:        "Hold",
	ActionSoftDrop:    "SoftDrop",
	ActionHardDrop:    "HardDrop",
	ActionMoveRight:   "MoveRight",
	ActionMoveLeft:    "MoveLeft",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

// String returns the action name.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the input of one host tick.
type InputFrame struct {
	Actions map[Action]bool

	// At is the absolute time of this tick, measured from session start.
	At time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear drops all actions. At is left unchanged.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns a deep copy.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	maps.Copy(clone.Actions, f.Actions)
	clone.At = f.At
	return clone
}
