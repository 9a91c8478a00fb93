package tuix

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
)

func TestParseColorCapability(t *testing.T) {
	type tc struct {
		in      string
		want    ColorCapability
		wantErr bool
	}

	tests := map[string]tc{
		"none":      {in: "none", want: ColorNone},
		"zero":      {in: "0", want: ColorNone},
		"16":        {in: "16", want: Color16},
		"ansi":      {in: "ANSI", want: Color16},
		"256":       {in: "256", want: Color256},
		"truecolor": {in: " truecolor ", want: ColorTrue},
		"24bit":     {in: "24bit", want: ColorTrue},
		"bad":       {in: "lots", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseColorCapability(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorCapability(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColorCapability(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCapabilities_Profile(t *testing.T) {
	type tc struct {
		colors ColorCapability
		want   termenv.Profile
	}

	tests := map[string]tc{
		"none": {colors: ColorNone, want: termenv.Ascii},
		"16":   {colors: Color16, want: termenv.ANSI},
		"256":  {colors: Color256, want: termenv.ANSI256},
		"true": {colors: ColorTrue, want: termenv.TrueColor},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := Capabilities{Colors: tt.colors}
			if got := c.Profile(); got != tt.want {
				t.Errorf("Profile() = %v, want %v", got, tt.want)
			}
			if got := colorCapability(c.Profile()); got != tt.colors {
				t.Errorf("colorCapability(Profile()) = %v, want %v", got, tt.colors)
			}
		})
	}
}

func TestCapabilities_EffectiveColor(t *testing.T) {
	red := RGBColor(255, 0, 0)

	if got := (Capabilities{Colors: ColorTrue}).EffectiveColor(red); !got.Equal(red) {
		t.Errorf("true color EffectiveColor() = %v, want %v", got, red)
	}
	if got := (Capabilities{Colors: ColorNone}).EffectiveColor(red); !got.IsDefault() {
		t.Errorf("no color EffectiveColor() = %v, want default", got)
	}
	got := (Capabilities{Colors: Color16}).EffectiveColor(red)
	if idx, ok := got.Index(); !ok || idx >= 16 {
		t.Errorf("16 color EffectiveColor() = %v, want a basic color", got)
	}
}

func TestDetectCapabilities(t *testing.T) {
	t.Setenv("TERM", "dumb")
	t.Setenv("COLORTERM", "")
	t.Setenv("CLICOLOR_FORCE", "")

	caps := DetectCapabilities(&bytes.Buffer{})
	if caps.Unicode || caps.AltScreen {
		t.Errorf("DetectCapabilities() = %+v, want no unicode or alt screen on a dumb terminal", caps)
	}
	if caps.Colors != ColorNone {
		t.Errorf("Colors = %v, want none for a non-terminal writer", caps.Colors)
	}
}

func TestCapabilities_String(t *testing.T) {
	type tc struct {
		caps Capabilities
		want string
	}

	tests := map[string]tc{
		"full":  {caps: Capabilities{Colors: ColorTrue, Unicode: true, AltScreen: true}, want: "true-color, unicode, altscreen"},
		"plain": {caps: Capabilities{}, want: "no-color, ascii"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.caps.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
