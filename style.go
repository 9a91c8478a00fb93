package tuix

import "strings"

// Attr represents text attributes as a bitfield for cheap comparison.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << (iota - 1)
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrBlink makes text blink (rarely supported).
	AttrBlink
	// AttrReverse swaps foreground and background colors.
	AttrReverse
	// AttrStrikethrough draws a line through the text.
	AttrStrikethrough
)

var attrNames = []struct {
	attr Attr
	name string
}{
	{AttrBold, "bold"},
	{AttrDim, "dim"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrReverse, "reverse"},
	{AttrStrikethrough, "strikethrough"},
}

func (a Attr) String() string {
	if a == AttrNone {
		return "none"
	}
	var parts []string
	for _, an := range attrNames {
		if a&an.attr != 0 {
			parts = append(parts, an.name)
		}
	}
	return strings.Join(parts, "|")
}

// Style combines text attributes with foreground and background colors.
// The zero value is default styling.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns a new Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// With returns a copy with the given attributes added.
func (s Style) With(a Attr) Style {
	s.Attrs |= a
	return s
}

// Without returns a copy with the given attributes removed.
func (s Style) Without(a Attr) Style {
	s.Attrs &^= a
	return s
}

func (s Style) Bold() Style      { return s.With(AttrBold) }
func (s Style) Dim() Style       { return s.With(AttrDim) }
func (s Style) Italic() Style    { return s.With(AttrItalic) }
func (s Style) Underline() Style { return s.With(AttrUnderline) }
func (s Style) Reverse() Style   { return s.With(AttrReverse) }

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// HasAttr returns true if the style has all of the given attributes set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}

// styleFromProps overlays the fg, bg and attribute properties of a node on
// base. Unparseable colors keep the base color.
func styleFromProps(base Style, props Props) Style {
	if c, err := ParseColor(props.String("fg", "")); err == nil && props.Has("fg") {
		base.Fg = c
	}
	if c, err := ParseColor(props.String("bg", "")); err == nil && props.Has("bg") {
		base.Bg = c
	}
	for _, an := range attrNames {
		if props.Bool(an.name, false) {
			base.Attrs |= an.attr
		}
	}
	return base
}
