package tetris

import "testing"

func TestLineCounterWidensPastByte(t *testing.T) {
	var c LineCounter
	var raw uint8
	for range 75 {
		raw += 4
		c.Observe(raw)
	}

	if raw != 44 {
		t.Fatalf("raw count = %d, expected the byte to wrap to 44", raw)
	}
	if c.Total() != 300 {
		t.Errorf("Total() = %d, expected 300", c.Total())
	}
}

func TestLineCounterRepeatedObserve(t *testing.T) {
	var c LineCounter
	c.Observe(3)
	c.Observe(3)
	if got := c.Observe(3); got != 3 {
		t.Errorf("Observe without new lines = %d, expected 3", got)
	}
}

func TestLineCounterReset(t *testing.T) {
	var c LineCounter
	c.Observe(255)
	c.Reset()
	if c.Total() != 0 {
		t.Errorf("Total() after Reset = %d, expected 0", c.Total())
	}
	if got := c.Observe(2); got != 2 {
		t.Errorf("Observe after Reset = %d, expected 2", got)
	}
}
