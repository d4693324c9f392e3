package model

import "math"

const (
	MaxSaturation = 99
	MaxLuminosity = 99
)

// FromHSL converts hue [0,360), saturation [0,99] and luminosity [0,99] into
// a Color using integer arithmetic only. Inputs are rounded, hue wraps and
// the other two are clamped, so every input maps to some color.
//
// The lightness offset is computed with two truncating divisions in a fixed
// order. Folding them into one changes the rounding for some chroma values.
func FromHSL(hue, saturation, luminosity float64) Color {
	h := round(hue)
	s := clamp(round(saturation), 0, MaxSaturation)
	l := clamp(round(luminosity), 0, MaxLuminosity)

	h %= 360
	if h < 0 {
		h += 360
	}

	c := ((100 - abs(2*l-100)) * s << 8) / 10000 // chroma, [0,255]
	h1 := h / 60                                 // sector, [0,5]
	h2 := (h - h1*60) * 256 / 60                 // [0,255]
	temp := abs(((h1 % 2) << 8) + h2 - 256)
	x := (c * (256 - temp)) >> 8 // second largest component

	var r, g, b int
	switch h1 {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := ((l * 2 << 8 / 100) - c) / 2
	return Pack(r+m, g+m, b+m)
}

// round matches rounding half up, so -2.5 becomes -2.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
