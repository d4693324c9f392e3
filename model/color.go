package model

import "fmt"

const (
	RED_OFFSET   uint8 = 0x10
	GREEN_OFFSET uint8 = 0x08
	BLUE_OFFSET  uint8 = 0x0
)

// Color is a 24-bit packed RGB value, 0xRRGGBB.
type Color uint32

// Pack combines three channels into a Color. Each input is masked to its
// low 8 bits first, so out of range values wrap instead of failing.
func Pack(red, green, blue int) Color {
	var c uint32
	c = setcolor(c, uint8(red&0xFF), RED_OFFSET)
	c = setcolor(c, uint8(green&0xFF), GREEN_OFFSET)
	c = setcolor(c, uint8(blue&0xFF), BLUE_OFFSET)
	return Color(c)
}

func setcolor(c uint32, n uint8, off uint8) uint32 {
	var val uint32 = uint32(n) << off
	var mask uint32 = 0xFF << off
	return (c & (^mask)) | val
}

func getcolor(c uint32, off uint8) uint8 {
	var mask uint32 = 0xFF << off
	return uint8((c & mask) >> off)
}

func (c Color) R() uint8 { return getcolor(uint32(c), RED_OFFSET) }
func (c Color) G() uint8 { return getcolor(uint32(c), GREEN_OFFSET) }
func (c Color) B() uint8 { return getcolor(uint32(c), BLUE_OFFSET) }

// RGB splits c into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return c.R(), c.G(), c.B()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}
