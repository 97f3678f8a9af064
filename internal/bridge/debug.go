package bridge

import "strings"

// String draws the field occupancy buffer as text: one row per line between
// '|' borders, '*' for occupied cells. Intended for debugging only.
func (b *Bridge) String() string {
	var sb strings.Builder
	sb.Grow((b.cfg.Width + 3) * b.cfg.Height)
	for row := range b.cfg.Height {
		sb.WriteByte('|')
		for _, v := range b.buf.field[row*b.cfg.Width : (row+1)*b.cfg.Width] {
			if v == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('*')
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
