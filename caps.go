package tuix

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// DetectCapabilities determines terminal capabilities for the given output.
// The color level comes from termenv, which honors TERM, COLORTERM,
// NO_COLOR and CLICOLOR_FORCE; a writer that is not a terminal gets no
// color unless forced.
func DetectCapabilities(out io.Writer) Capabilities {
	o := termenv.NewOutput(out)
	caps := Capabilities{
		Colors:    colorCapability(o.EnvColorProfile()),
		Unicode:   true,
		AltScreen: true,
	}

	if strings.ToLower(os.Getenv("TERM")) == "dumb" {
		caps.Unicode = false
		caps.AltScreen = false
	}
	return caps
}

func colorCapability(p termenv.Profile) ColorCapability {
	switch p {
	case termenv.TrueColor:
		return ColorTrue
	case termenv.ANSI256:
		return Color256
	case termenv.ANSI:
		return Color16
	}
	return ColorNone
}

// ParseColorCapability reads a color level: none, 16, 256 or true.
func ParseColorCapability(s string) (ColorCapability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "ascii", "0":
		return ColorNone, nil
	case "16", "ansi":
		return Color16, nil
	case "256", "ansi256":
		return Color256, nil
	case "true", "truecolor", "24bit":
		return ColorTrue, nil
	}
	return ColorNone, fmt.Errorf("unknown color level %q", s)
}

// Profile returns the termenv profile matching the color level.
func (c Capabilities) Profile() termenv.Profile {
	switch c.Colors {
	case ColorTrue:
		return termenv.TrueColor
	case Color256:
		return termenv.ANSI256
	case Color16:
		return termenv.ANSI
	}
	return termenv.Ascii
}

// EffectiveColor returns the nearest color the terminal can show.
func (c Capabilities) EffectiveColor(color Color) Color {
	return color.Downsample(c.Profile())
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	var parts []string

	switch c.Colors {
	case ColorNone:
		parts = append(parts, "no-color")
	case Color16:
		parts = append(parts, "16-color")
	case Color256:
		parts = append(parts, "256-color")
	case ColorTrue:
		parts = append(parts, "true-color")
	}

	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}

	if c.AltScreen {
		parts = append(parts, "altscreen")
	}

	return strings.Join(parts, ", ")
}
