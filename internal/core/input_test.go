package core

import (
	"testing"
	"time"
)

func TestActionString(t *testing.T) {
	if got := ActionHardDrop.String(); got != "HardDrop" {
		t.Errorf("ActionHardDrop.String() = %q", got)
	}
	if got := Action(99).String(); got != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", got)
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionHold) {
		t.Error("zero frame should report no actions")
	}

	f.Set(ActionHold)
	f.At = 250 * time.Millisecond
	clone := f.Clone()

	f.Clear()
	if f.Has(ActionHold) {
		t.Error("Clear should drop actions")
	}
	if f.At != 250*time.Millisecond {
		t.Error("Clear should keep At")
	}
	if !clone.Has(ActionHold) || clone.At != 250*time.Millisecond {
		t.Error("Clone should not share actions with its source")
	}
}
