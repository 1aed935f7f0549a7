package outfit

import (
	"fmt"
	"math"
	"strings"
)

// Color is an 8-bit RGB color value, the space the palette is defined in.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex parses a "#RRGGBB" color value. Malformed values are rejected here
// so the matching logic never sees an out-of-range channel.
func ParseHex(value string) (Color, error) {
	raw := strings.TrimSpace(value)
	raw = strings.TrimPrefix(raw, "#")
	if len(raw) != 6 {
		return Color{}, fmt.Errorf("color must be formatted as #RRGGBB, got %q", value)
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok := hexNibble(raw[2*i])
		if !ok {
			return Color{}, fmt.Errorf("color contains invalid hex digit %q", raw[2*i])
		}
		lo, ok := hexNibble(raw[2*i+1])
		if !ok {
			return Color{}, fmt.Errorf("color contains invalid hex digit %q", raw[2*i+1])
		}
		channels[i] = hi<<4 | lo
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustHex parses a hex color and panics on failure. Reserved for fixed tables.
func MustHex(value string) Color {
	c, err := ParseHex(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the canonical "#RRGGBB" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Distance is the Euclidean distance between two colors in RGB channel space.
// Higher values indicate stronger visual contrast.
func Distance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
