package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is
// optional). Any alpha component is discarded.
func ParseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 0 {
		return Color{}, fmt.Errorf("%w: empty color string", ErrInvalidArgument)
	}

	val, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: invalid hex color %q", ErrInvalidArgument, hex)
	}

	switch len(s) {
	case 3:
		r := uint8(val>>8) & 0xf
		g := uint8(val>>4) & 0xf
		b := uint8(val) & 0xf
		return Color{R: r<<4 | r, G: g<<4 | g, B: b<<4 | b}, nil
	case 6:
		return Color{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val)}, nil
	case 8:
		return Color{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8)}, nil
	default:
		return Color{}, fmt.Errorf("%w: invalid hex color length %q", ErrInvalidArgument, hex)
	}
}

// Bytes flattens colors into consecutive RGB triples.
func Bytes(colors []Color) []byte {
	out := make([]byte, 0, len(colors)*3)
	for _, c := range colors {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}
