package model_test

import (
	"strconv"
	"testing"

	. "github.com/coreman2200/moodlight/model"
	"github.com/stretchr/testify/assert"
)

var TestPackIsExpectedColor = []struct {
	R, G, B int
	Expect  Color
}{
	{0x11, 0x22, 0x33, 0x112233},
	{0, 0, 0, 0x000000},
	{255, 255, 255, 0xFFFFFF},
	{256, 511, -1, 0x00FFFF},
	{0x1AB, -256, 0x2CD, 0xAB00CD},
}

func TestPack(t *testing.T) {
	for k, v := range TestPackIsExpectedColor {
		t.Run("Given RGB"+strconv.Itoa(k), func(t *testing.T) {
			col := Pack(v.R, v.G, v.B)
			assert.Equal(t, v.Expect, col, "should be same val")
			assert.Equal(t, uint8(v.R&0xFF), col.R())
			assert.Equal(t, uint8(v.G&0xFF), col.G())
			assert.Equal(t, uint8(v.B&0xFF), col.B())
		})
	}
}

func TestPackRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b++ {
				rr, gg, bb := Pack(r, g, b).RGB()
				if int(rr) != r || int(gg) != g || int(bb) != b {
					t.Fatalf("Pack(%d,%d,%d) came back as (%d,%d,%d)", r, g, b, rr, gg, bb)
				}
			}
		}
	}
}

func TestPackStaysIn24Bits(t *testing.T) {
	for _, v := range []int{0, 255, 256, 511, -1, 1 << 20} {
		assert.LessOrEqual(t, uint32(Pack(v, v, v)), uint32(0xFFFFFF))
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#ffa500", Orange.String())
	assert.Equal(t, "#000000", Black.String())
}

func TestScale(t *testing.T) {
	got := Scale(Pack(200, 100, 50), 128)
	r, g, b := got.RGB()
	assert.Equal(t, uint8(100), r)
	assert.Equal(t, uint8(50), g)
	assert.Equal(t, uint8(25), b)

	// rounds toward zero
	assert.Equal(t, Pack(0, 0, 0), Scale(Pack(1, 1, 1), 254))
	assert.Equal(t, Pack(0, 0, 0), Scale(White, 0))
	assert.Equal(t, Pack(253, 253, 253), Scale(White, 254))
}

func TestScaleFullBrightnessIsIdentity(t *testing.T) {
	for _, c := range []Color{Black, White, Orange, Indigo, 0x010203, 0xFEDCBA} {
		assert.Equal(t, c, Scale(c, 255))
	}
}

func TestNamed(t *testing.T) {
	c, ok := Named("Orange")
	assert.True(t, ok)
	assert.Equal(t, Color(0xFFA500), c)

	_, ok = Named("chartreuse")
	assert.False(t, ok)

	assert.Equal(t, []string{"black", "blue", "green", "indigo", "orange", "purple", "red", "violet", "white", "yellow"}, Names())
}
