package tuix

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// BorderStyle names a set of box-drawing characters.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
)

var borderNames = map[string]BorderStyle{
	"none":    BorderNone,
	"single":  BorderSingle,
	"double":  BorderDouble,
	"rounded": BorderRounded,
	"thick":   BorderThick,
}

// ParseBorder maps a border name to its style.
func ParseBorder(s string) (BorderStyle, error) {
	b, ok := borderNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return BorderNone, fmt.Errorf("unknown border %q", s)
	}
	return b, nil
}

func (b BorderStyle) String() string {
	for name, v := range borderNames {
		if v == b {
			return name
		}
	}
	return "none"
}

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

// borderSets lists each style's runes in BorderChars field order.
var borderSets = map[BorderStyle]string{
	BorderSingle:  "┌─┐││└─┘",
	BorderDouble:  "╔═╗║║╚═╝",
	BorderRounded: "╭─╮││╰─╯",
	BorderThick:   "┏━┓┃┃┗━┛",
}

// Chars returns the box-drawing characters for this border style. BorderNone
// and unknown styles draw with spaces.
func (b BorderStyle) Chars() BorderChars {
	set, ok := borderSets[b]
	if !ok {
		set = "        "
	}
	r := []rune(set)
	return BorderChars{
		TopLeft: r[0], Top: r[1], TopRight: r[2],
		Left: r[3], Right: r[4],
		BottomLeft: r[5], Bottom: r[6], BottomRight: r[7],
	}
}

// Title writes title centered in the top border of r, truncated with an
// ellipsis when it does not fit between the corners.
func (c *Canvas) Title(r Rect, title string, style Style) {
	avail := r.Width - 4
	if avail <= 0 || r.Height < 1 || title == "" {
		return
	}
	title = ansi.Truncate(" "+title+" ", avail+2, "…")
	w := ansi.StringWidth(title)
	c.SetString(r.X+1+(r.Width-2-w)/2, r.Y, title, style)
}
