package layout

import (
	"strconv"
	"strings"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Stock colors used by the planner table styles.
var (
	Black      = Color{0, 0, 0}
	Grey       = Color{128, 128, 128}
	WhiteSmoke = Color{245, 245, 245}
	LightBlue  = Color{173, 216, 230}
)

// ParseHex decodes a "#RGB" or "#RRGGBB" color string. The leading '#' is
// optional, hex digits are case-insensitive, and surrounding whitespace is
// tolerated. The three-digit form expands by doubling each digit, so "abc"
// and "aabbcc" decode to the same color. Any other length or a non-hex
// character reports ok=false rather than an error.
func ParseHex(s string) (Color, bool) {
	h := strings.TrimLeft(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		var doubled strings.Builder
		for _, c := range h {
			doubled.WriteRune(c)
			doubled.WriteRune(c)
		}
		h = doubled.String()
	}
	if len(h) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}
