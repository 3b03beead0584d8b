// Package graphics provides the color type used by styles and the named
// palette.
package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is an 8-bit-per-channel RGBA color stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Channels returns the RGBA8 tuple.
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.Channels()
	a = uint32(a8) * 0x101
	r = uint32(r8) * 0x101 * a / 0xFFFF
	g = uint32(g8) * 0x101 * a / 0xFFFF
	b = uint32(b8) * 0x101 * a / 0xFFFF
	return r, g, b, a
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	r8, g8, b8, a8 := c.Channels()
	return float64(r8) / maxByte, float64(g8) / maxByte, float64(b8) / maxByte, float64(a8) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Hex formats the color as #RRGGBBAA.
func (c Color) Hex() string {
	r, g, b, a := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func (c Color) String() string {
	if name, ok := paletteNames[c]; ok {
		return name
	}
	return c.Hex()
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)

var paletteNames = map[Color]string{
	ColorTransparent: "transparent",
	ColorBlack:       "black",
	ColorWhite:       "white",
	ColorRed:         "red",
	ColorGreen:       "green",
	ColorBlue:        "blue",
}

// Palette returns the palette colors keyed by name.
func Palette() map[string]Color {
	out := make(map[string]Color, len(paletteNames))
	for c, name := range paletteNames {
		out[name] = c
	}
	return out
}

// Named looks up a color by name. Palette names take precedence; other names
// resolve through the SVG 1.1 color keywords ("cornflowerblue", "teal", ...).
// Lookup is case-insensitive.
func Named(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range paletteNames {
		if n == name {
			return c, true
		}
	}
	rgba, ok := colornames.Map[name]
	if !ok {
		return 0, false
	}
	return RGBA8(rgba.R, rgba.G, rgba.B, rgba.A), true
}

// ParseError reports a color string that is neither hex nor a known name.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Input)
}

// ParseColor parses "#RGB", "#RRGGBB", "#RRGGBBAA" or a color name.
func ParseColor(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "#") {
		if c, ok := Named(trimmed); ok {
			return c, nil
		}
		return 0, &ParseError{Input: s}
	}

	hex := trimmed[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return 0, &ParseError{Input: s}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, &ParseError{Input: s}
	}
	// v is RRGGBBAA; rotate alpha to the top byte.
	return Color(uint32(v)>>8 | uint32(v)<<24), nil
}
