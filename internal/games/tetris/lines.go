package tetris

// LineCounter widens the bridge's byte-sized line count into an int. At
// most four rows clear per step, so observing after every step keeps the
// wrapping difference exact.
type LineCounter struct {
	total int
	last  uint8
}

// Observe records the bridge count after a step and returns the total.
func (c *LineCounter) Observe(n uint8) int {
	c.total += int(n - c.last)
	c.last = n
	return c.total
}

// Total returns the lines deleted since the last Reset.
func (c *LineCounter) Total() int {
	return c.total
}

// Reset starts counting from zero.
func (c *LineCounter) Reset() {
	*c = LineCounter{}
}
