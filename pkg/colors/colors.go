package colors

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

var colorMap = map[string]color.RGBA{
	"amber":    {0xFF, 0xA5, 0x00, 0xFF},
	"darkgray": {0x3E, 0x3E, 0x3E, 0xFF},
	"white":    {0xFF, 0xFF, 0xFF, 0xFF},
	"red":      {247, 10, 10, 255},
	"green":    {6, 245, 34, 255},
	"blue":     {26, 160, 253, 255},
	"yellow":   {244, 251, 18, 255},
	"purple":   {105, 20, 253, 255},
}

// Parse accepts a color name from the palette or a hex string in the
// form #rgb, #rrggbb or #rrggbbaa.
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colorMap[strings.ToLower(s)]; ok {
		return c, nil
	}
	return ParseHex(s)
}

func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	n := color.NRGBA{R: byte(v >> 24), G: byte(v >> 16), B: byte(v >> 8), A: byte(v)}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}

// Hex formats c as #rrggbb, or #rrggbbaa when not opaque. The digits are
// straight alpha, as ParseHex reads them.
func Hex(c color.RGBA) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ToRGBA converts any color to alpha-premultiplied 8-bit RGBA.
func ToRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Fade scales the opacity of c by f, keeping it premultiplied.
func Fade(c color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
