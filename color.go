package ppm

import (
	"fmt"
	"image/color"
)

// Color is a packed 24-bit RGB value in 0x00RRGGBB layout.
// The top byte is unused.
type Color uint32

// Basic colors. Values match the CSS color definitions.
const (
	Black   Color = 0x000000
	White   Color = 0xFFFFFF
	Red     Color = 0xFF0000
	Lime    Color = 0x00FF00
	Blue    Color = 0x0000FF
	Yellow  Color = 0xFFFF00
	Cyan    Color = 0x00FFFF
	Magenta Color = 0xFF00FF
	Silver  Color = 0xC0C0C0
	Gray    Color = 0x808080
	Maroon  Color = 0x800000
	Olive   Color = 0x808000
	Green   Color = 0x008000
	Purple  Color = 0x800080
	Teal    Color = 0x008080
	Navy    Color = 0x000080
)

// RGB packs red, green and blue components into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// Color converts the packed value to the standard color.Color interface.
// The result is always fully opaque.
func (c Color) Color() color.Color {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}

// FromColor converts a standard color.Color to a packed Color.
// Alpha is discarded.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
// Invalid input yields Black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Black
	}

	return RGB(uint8(r), uint8(g), uint8(b))
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// String returns the color in "#RRGGBB" form.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c))
}
