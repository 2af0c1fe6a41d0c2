package chart

import (
	"fmt"
	"image/color"
	"strings"
)

// -------------------------------------------------------------------------
// Colors

// BuiltinColors are the named colors ParseColor understands: the hues
// of the default palette plus black, white, red and a neutral gray.
var BuiltinColors = map[string]color.NRGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"gray":    {0x6b, 0x72, 0x80, 0xff},
	"indigo":  {0x4f, 0x46, 0xe5, 0xff},
	"emerald": {0x10, 0xb9, 0x81, 0xff},
	"amber":   {0xf5, 0x9e, 0x0b, 0xff},
	"violet":  {0x8b, 0x5c, 0xf6, 0xff},
	"pink":    {0xec, 0x48, 0x99, 0xff},
	"lime":    {0x84, 0xcc, 0x16, 0xff},
	"orange":  {0xf9, 0x73, 0x16, 0xff},
}

// ParseColor parses "#rrggbb", "#rrggbbaa", "#rgb" or one of the
// BuiltinColors. The second result is false if s is none of these.
func ParseColor(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)
	if col, ok := BuiltinColors[strings.ToLower(s)]; ok {
		return col, true
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	var c color.NRGBA
	c.A = 0xff
	var n int
	var err error
	switch len(hex) {
	case 6:
		n, err = fmt.Sscanf(hex, "%2x%2x%2x", &c.R, &c.G, &c.B)
		if n != 3 {
			return color.NRGBA{}, false
		}
	case 8:
		n, err = fmt.Sscanf(hex, "%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
		if n != 4 {
			return color.NRGBA{}, false
		}
	default:
		return color.NRGBA{}, false
	}
	if err != nil {
		return color.NRGBA{}, false
	}
	return c, true
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" if c is not opaque.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
