package tuix

import "github.com/charmbracelet/x/ansi"

// minInputWidth is the auto width of an empty input line.
const minInputWidth = 12

// inputComponent draws an optional label line above an underlined input
// line holding default_text, or a dimmed placeholder when that is empty.
//
// Props: label, default_text, placeholder, fg, bg.
type inputComponent struct{}

func (inputComponent) Measure(props Props, availWidth, availHeight int) Size {
	label := props.String("label", "")
	w := max(
		ansi.StringWidth(label),
		ansi.StringWidth(props.String("default_text", ""))+1,
		ansi.StringWidth(props.String("placeholder", ""))+1,
		minInputWidth,
	)
	h := 1
	if label != "" {
		h = 2
	}
	return Size{Width: w, Height: h}
}

func (inputComponent) Inset(Props) Edges { return Edges{} }

func (inputComponent) Paint(props Props, clip Rect, c *Canvas) {
	r := c.Bounds()
	base := styleFromProps(Style{Fg: c.Theme().Text}, props)

	y := r.Y
	if label := props.String("label", ""); label != "" {
		c.SetString(r.X, y, ansi.Truncate(label, r.Width, "…"), base.Bold())
		y++
	}

	line := base.Underline()
	c.Fill(Rect{X: r.X, Y: y, Width: r.Width, Height: 1}, ' ', line)

	text, style := props.String("default_text", ""), line
	if text == "" {
		text, style = props.String("placeholder", ""), line.Dim()
	}
	// Keep the end of long input visible, as a cursor would.
	if w := ansi.StringWidth(text); w > r.Width-1 && r.Width > 1 {
		text = ansi.TruncateLeft(text, w-(r.Width-1), "")
	}
	c.SetString(r.X, y, text, style)
}
