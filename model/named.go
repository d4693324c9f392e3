package model

import (
	"sort"
	"strings"
)

// Well known colors.
const (
	Red    Color = 0xFF0000
	Orange Color = 0xFFA500
	Yellow Color = 0xFFFF00
	Green  Color = 0x00FF00
	Blue   Color = 0x0000FF
	Indigo Color = 0x4B0082
	Violet Color = 0x8A2BE2
	Purple Color = 0xFF00FF
	White  Color = 0xFFFFFF
	Black  Color = 0x000000
)

var named = map[string]Color{
	"red":    Red,
	"orange": Orange,
	"yellow": Yellow,
	"green":  Green,
	"blue":   Blue,
	"indigo": Indigo,
	"violet": Violet,
	"purple": Purple,
	"white":  White,
	"black":  Black,
}

// Named looks up a well known color, ignoring case.
func Named(name string) (Color, bool) {
	c, ok := named[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names lists the well known color names in sorted order.
func Names() []string {
	out := make([]string, 0, len(named))
	for k := range named {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
