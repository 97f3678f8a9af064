package core

import "math"

// Color is a packed 0xRRGGBBAA foreground color for a screen cell.
// The zero value means "terminal default".
type Color uint32

// Colors used for frames and HUD text.
const (
	ColorDefault Color = 0
	ColorWhite   Color = 0xFFFFFFFF
	ColorGray    Color = 0x8C8C8CFF
	ColorCyan    Color = 0x00E5E5FF
	ColorYellow  Color = 0xF2D900FF
	ColorRed     Color = 0xE52626FF
)

// RGBA packs float components in the 0-1 range. Out-of-range values are
// clamped.
func RGBA(r, g, b, a float32) Color {
	return Color(channel(r)<<24 | channel(g)<<16 | channel(b)<<8 | channel(a))
}

// RGBASlice packs the first four floats of c.
func RGBASlice(c []float32) Color {
	return RGBA(c[0], c[1], c[2], c[3])
}

func channel(v float32) uint32 {
	return uint32(math.Round(float64(Clamp(v, 0, 1)) * 255))
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c) }

// Opaque reports whether the alpha channel is fully set.
func (c Color) Opaque() bool {
	return c.A() == 0xFF
}
