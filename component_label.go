package tuix

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Built-in component kinds.
const (
	KindBox         = "box"
	KindLabel       = "label"
	KindPanel       = "panel"
	KindChoice      = "choice"
	KindProgressBar = "progress_bar"
	KindTextInput   = "text_input"
)

// textLines splits text into display lines. With a positive width and wrap
// set, long lines are word-wrapped and words longer than width are broken.
func textLines(text string, width int, wrap bool) []string {
	if text == "" {
		return nil
	}
	if wrap && width > 0 {
		text = ansi.Wrap(text, width, "")
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}

// alignOffset returns the x offset of a line of width w in a box of the
// given width. Centering puts the extra cell on the right.
func alignOffset(align string, box, w int) int {
	switch align {
	case "center", "centre", "middle":
		return max((box-w)/2, 0)
	case "right", "end":
		return max(box-w, 0)
	}
	return 0
}

// labelComponent draws text, one line per row.
//
// Props: text, text_align (left|center|right), wrap, fg, bg, and the
// attribute flags bold, dim, italic, underline, blink, reverse,
// strikethrough.
type labelComponent struct{}

func (labelComponent) Measure(props Props, availWidth, availHeight int) Size {
	lines := textLines(props.String("text", ""), availWidth, props.Bool("wrap", false))
	return Size{Width: maxLineWidth(lines), Height: len(lines)}
}

func (labelComponent) Inset(Props) Edges { return Edges{} }

func (labelComponent) Paint(props Props, clip Rect, c *Canvas) {
	r := c.Bounds()
	style := styleFromProps(Style{Fg: c.Theme().Text, Attrs: c.Theme().TextAttrs}, props)

	if props.Has("bg") {
		c.Fill(clip, ' ', style)
	}

	align := strings.ToLower(props.String("text_align", "left"))
	lines := textLines(props.String("text", ""), r.Width, props.Bool("wrap", false))
	for i, line := range lines {
		if i >= r.Height {
			break
		}
		x := r.X + alignOffset(align, r.Width, ansi.StringWidth(line))
		c.SetString(x, r.Y+i, ansi.Truncate(line, r.Right()-x, ""), style)
	}
}
