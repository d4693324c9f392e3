package model

// BytesPerPixel is the width of one pixel slot in a Frame.
const BytesPerPixel = 3

// Frame is the byte stream handed to a strip transmitter. Every pixel slot is
// laid out green, red, blue, which is the order the strip shifts bits in.
type Frame []byte

// BuildUniformFrame writes c into all pixelCount slots.
func BuildUniformFrame(c Color, pixelCount int) Frame {
	r, g, b := c.RGB()
	buf := make(Frame, pixelCount*BytesPerPixel)
	for i := 0; i < pixelCount; i++ {
		buf[i*BytesPerPixel+0] = g
		buf[i*BytesPerPixel+1] = r
		buf[i*BytesPerPixel+2] = b
	}
	return buf
}

// BuildClearFrame returns an all zero frame for pixelCount pixels.
func BuildClearFrame(pixelCount int) Frame {
	return make(Frame, pixelCount*BytesPerPixel)
}

// Pixels returns the number of complete pixel slots in f.
func (f Frame) Pixels() int {
	return len(f) / BytesPerPixel
}

// Pixel decodes slot i back into a Color.
func (f Frame) Pixel(i int) Color {
	off := i * BytesPerPixel
	return Pack(int(f[off+1]), int(f[off+0]), int(f[off+2]))
}
