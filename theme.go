package tuix

import (
	"fmt"
	"sort"
	"strings"
)

// shadowIntensity is how far the shadow color moves from the background
// toward the prompt background.
const shadowIntensity = 0.3

// Theme is the palette the built-in components paint with. It is a set of
// colors, not a styling language: components pick the entries they need.
type Theme struct {
	Name string

	Background           Color
	PromptBackground     Color
	Border               Color
	Text                 Color
	TextAttrs            Attr
	UnselectedText       Color
	UnselectedBackground Color
	SelectedText         Color
	SelectedBackground   Color
}

var themes = map[string]Theme{
	"classic": {
		Name:               "classic",
		PromptBackground:   RGBColor(0, 0, 0),
		Border:             RGBColor(255, 255, 255),
		Text:               RGBColor(255, 255, 255),
		UnselectedText:     RGBColor(255, 255, 255),
		SelectedText:       RGBColor(0, 0, 0),
		SelectedBackground: RGBColor(255, 255, 255),
	},
}

// ClassicTheme returns the default theme.
func ClassicTheme() *Theme {
	t := themes["classic"]
	return &t
}

// ThemeNames returns the names of the preset themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns a copy of a preset theme.
func LookupTheme(name string) (*Theme, error) {
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return &t, nil
}

// ShadowColor is the background blended toward the prompt background. A
// default color counts as black.
func (t *Theme) ShadowColor() Color {
	return Blend(orBlack(t.Background), orBlack(t.PromptBackground), shadowIntensity)
}

func orBlack(c Color) Color {
	if c.IsDefault() {
		return RGBColor(0, 0, 0)
	}
	return c
}

// Override returns a copy of the theme with the given entries replaced.
// Keys are the snake_case field names (prompt_background, selected_text,
// ...), plus the text attributes bold, italic, underline and dim, which
// take "true" or "false". Bad entries are skipped and reported.
func (t *Theme) Override(values map[string]string) (*Theme, []error) {
	out := *t
	colors := map[string]*Color{
		"background":            &out.Background,
		"prompt_background":     &out.PromptBackground,
		"border":                &out.Border,
		"text_color":            &out.Text,
		"text":                  &out.Text,
		"unselected_text":       &out.UnselectedText,
		"unselected_background": &out.UnselectedBackground,
		"selected_text":         &out.SelectedText,
		"selected_background":   &out.SelectedBackground,
	}

	var errs []error
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := values[k]
		if dst, ok := colors[k]; ok {
			c, err := ParseColor(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("theme %s: %w", k, err))
				continue
			}
			*dst = c
			continue
		}

		on, err := parseFlag(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme %s: %w", k, err))
			continue
		}
		attr, ok := attrByName(k)
		if !ok {
			errs = append(errs, fmt.Errorf("theme: unknown key %q", k))
			continue
		}
		if on {
			out.TextAttrs |= attr
		} else {
			out.TextAttrs &^= attr
		}
	}
	return &out, errs
}

func parseFlag(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("want true or false, got %q", v)
}

func attrByName(name string) (Attr, bool) {
	for _, an := range attrNames {
		if an.name == name {
			return an.attr, true
		}
	}
	return AttrNone, false
}

// textStyle is the style of ordinary text on the prompt background.
func (t *Theme) textStyle() Style {
	return Style{Fg: t.Text, Bg: t.PromptBackground, Attrs: t.TextAttrs}
}
