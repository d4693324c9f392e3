package model

const MAX_BRIGHTNESS uint8 = 255

// Scale dims every channel of c by brightness/256, rounding toward zero.
// Full brightness passes c through untouched.
func Scale(c Color, brightness uint8) Color {
	if brightness == MAX_BRIGHTNESS {
		return c
	}
	r, g, b := c.RGB()
	br := int(brightness)
	return Pack(int(r)*br>>8, int(g)*br>>8, int(b)*br>>8)
}
