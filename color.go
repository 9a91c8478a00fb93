package tuix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color represents a terminal color: default, ANSI 256, or true color.
// The zero value is the terminal default color.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255)
	// For RGB: r, g, b hold the color components
	r, g, b uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBColor(r, g, b), nil
}

// Standard ANSI colors.
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)

	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

var namedColors = map[string]Color{
	"black": Black, "red": Red, "green": Green, "yellow": Yellow,
	"blue": Blue, "magenta": Magenta, "cyan": Cyan, "white": White,
	"bright_black": BrightBlack, "gray": BrightBlack, "grey": BrightBlack,
	"bright_red": BrightRed, "bright_green": BrightGreen, "bright_yellow": BrightYellow,
	"bright_blue": BrightBlue, "bright_magenta": BrightMagenta, "bright_cyan": BrightCyan,
	"bright_white": BrightWhite,
}

// ParseColor accepts "default", a color name ("red", "bright_blue"), a
// palette index ("208"), or a hex string ("#ff8800").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "default" || s == "none":
		return DefaultColor(), nil
	case strings.HasPrefix(s, "#"):
		return HexColor(s)
	}
	if c, ok := namedColors[strings.ReplaceAll(s, "-", "_")]; ok {
		return c, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return ANSIColor(uint8(n)), nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// Index returns the palette index of an ANSI color.
func (c Color) Index() (uint8, bool) {
	return c.r, c.typ == ColorANSI
}

// RGB returns the components of a true color.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	return c.r, c.g, c.b, c.typ == ColorRGB
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	switch c.typ {
	case ColorDefault:
		return true
	case ColorANSI:
		return c.r == other.r
	}
	return c.r == other.r && c.g == other.g && c.b == other.b
}

func (c Color) String() string {
	switch c.typ {
	case ColorANSI:
		return strconv.Itoa(int(c.r))
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return "default"
}

// Termenv returns the color as a termenv color. The default color is
// termenv.NoColor.
func (c Color) Termenv() termenv.Color {
	switch c.typ {
	case ColorANSI:
		if c.r < 16 {
			return termenv.ANSIColor(c.r)
		}
		return termenv.ANSI256Color(c.r)
	case ColorRGB:
		return termenv.RGBColor(c.String())
	}
	return termenv.NoColor{}
}

// Downsample converts the color to the nearest one the profile can show.
func (c Color) Downsample(p termenv.Profile) Color {
	if c.typ == ColorDefault {
		return c
	}
	return colorFromTermenv(p.Convert(c.Termenv()))
}

func colorFromTermenv(tc termenv.Color) Color {
	switch v := tc.(type) {
	case termenv.ANSIColor:
		return ANSIColor(uint8(v))
	case termenv.ANSI256Color:
		return ANSIColor(uint8(v))
	case termenv.RGBColor:
		c, err := HexColor(string(v))
		if err != nil {
			return DefaultColor()
		}
		return c
	}
	return DefaultColor()
}

// colorful returns the color in RGB space. ANSI colors go through the
// xterm palette; the default color has no RGB value.
func (c Color) colorful() (colorful.Color, bool) {
	switch c.typ {
	case ColorRGB:
		return colorful.Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}, true
	case ColorANSI:
		return termenv.ConvertToRGB(c.Termenv()), true
	}
	return colorful.Color{}, false
}

// Blend mixes a toward b by t in [0, 1]. If either color is the default
// color, b is returned when t >= 0.5 and a otherwise.
func Blend(a, b Color, t float64) Color {
	ca, okA := a.colorful()
	cb, okB := b.colorful()
	if !okA || !okB {
		if t >= 0.5 {
			return b
		}
		return a
	}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return RGBColor(r, g, bl)
}
