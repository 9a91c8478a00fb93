package tuix

// panelComponent is a container: it fills its rectangle, optionally draws a
// border with a title, and can cast a one-cell drop shadow on its right and
// bottom edges. Children are laid out inside the border.
//
// Props: border (none|single|double|rounded|thick, default single), title,
// bg, fg, shadow.
type panelComponent struct{}

func panelBorder(props Props) BorderStyle {
	b, err := ParseBorder(props.String("border", "single"))
	if err != nil {
		return BorderSingle
	}
	return b
}

func (panelComponent) Measure(Props, int, int) Size { return Size{} }

func (panelComponent) Inset(props Props) Edges {
	var e Edges
	if panelBorder(props) != BorderNone {
		e = EdgeAll(1)
	}
	if props.Bool("shadow", false) {
		e.Right++
		e.Bottom++
	}
	return e
}

func (panelComponent) Paint(props Props, clip Rect, c *Canvas) {
	theme := c.Theme()
	body := c.Bounds()
	if props.Bool("shadow", false) {
		body = paintShadow(c, body, theme)
	}

	fill := styleFromProps(Style{Fg: theme.Border, Bg: theme.Background}, props)
	c.Fill(body, ' ', fill)
	c.Box(body, panelBorder(props), fill)
	if title := props.String("title", ""); title != "" {
		c.Title(body, title, fill.Bold())
	}
}

// paintShadow paints a one-cell shadow along the right and bottom edges of
// r, offset by one cell, and returns the rectangle left for the body.
func paintShadow(c *Canvas, r Rect, theme *Theme) Rect {
	if r.Width < 2 || r.Height < 2 {
		return r
	}
	body := Rect{X: r.X, Y: r.Y, Width: r.Width - 1, Height: r.Height - 1}
	shadow := Style{Bg: theme.ShadowColor()}
	c.Fill(Rect{X: r.Right() - 1, Y: r.Y + 1, Width: 1, Height: r.Height - 1}, ' ', shadow)
	c.Fill(Rect{X: r.X + 1, Y: r.Bottom() - 1, Width: r.Width - 1, Height: 1}, ' ', shadow)
	return body
}
