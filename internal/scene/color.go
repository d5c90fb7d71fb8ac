package scene

import (
	"fmt"
	"math"
)

// Color is a packed 0xRRGGBB value.
type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
	Red   Color = 0xFF0000
)

func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// LatticeColor maps lattice coordinates in [0,size) linearly onto the 0..255
// channel range, x to red, y to green and z to blue.
func LatticeColor(c Coord, size int) Color {
	return RGB(channel(c.X, size), channel(c.Y, size), channel(c.Z, size))
}

func channel(v, size int) uint8 {
	if size <= 1 || v <= 0 {
		return 0
	}
	if v >= size-1 {
		return 255
	}
	return uint8(math.Floor(float64(v) / float64(size-1) * 255))
}
