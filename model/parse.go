package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrUnknownColor = errors.New("unknown color")

// ParseColor accepts a well known name, a #rrggbb or #rgb hex value,
// rgb(r,g,b) or hsl(h,s,l). Numeric forms go through Pack and FromHSL, so
// they wrap and clamp the same way.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := Named(s); ok {
		return c, nil
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "#"):
		cf, err := colorful.Hex(expandHex(lower))
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrUnknownColor, s, err)
		}
		r, g, b := cf.RGB255()
		return Pack(int(r), int(g), int(b)), nil

	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		v, err := parseTriple(lower[len("rgb(") : len(lower)-1])
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrUnknownColor, s, err)
		}
		return Pack(int(v[0]), int(v[1]), int(v[2])), nil

	case strings.HasPrefix(lower, "hsl(") && strings.HasSuffix(lower, ")"):
		v, err := parseTriple(lower[len("hsl(") : len(lower)-1])
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrUnknownColor, s, err)
		}
		return FromHSL(v[0], v[1], v[2]), nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownColor, s)
}

// expandHex turns #rgb into #rrggbb.
func expandHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

func parseTriple(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("want 3 components, got %d", len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}
