package tuix

import "github.com/rivo/uniseg"

// Canvas is the writer a component paints through. Coordinates are absolute
// viewport cells. Writes outside the visible clip are dropped; writes that
// also fall outside the node's own rectangle break the paint contract and
// are counted so the renderer can report them.
type Canvas struct {
	buf    *FrameBuffer
	bounds Rect
	clip   Rect
	theme  *Theme

	violations int
}

func newCanvas(buf *FrameBuffer, bounds, clip Rect, theme *Theme) *Canvas {
	return &Canvas{
		buf:    buf,
		bounds: bounds,
		clip:   clip.Intersect(bounds).Intersect(buf.Rect()),
		theme:  theme,
	}
}

// Bounds returns the node's full, unclipped rectangle.
func (c *Canvas) Bounds() Rect { return c.bounds }

// Clip returns the visible part of the node's rectangle.
func (c *Canvas) Clip() Rect { return c.clip }

// Theme returns the palette built-in components paint with.
func (c *Canvas) Theme() *Theme { return c.theme }

// Violations returns how many cells were written outside Bounds.
func (c *Canvas) Violations() int { return c.violations }

// visible reports whether (x, y) may be written and counts contract
// violations.
func (c *Canvas) visible(x, y int) bool {
	if c.clip.Contains(x, y) {
		return true
	}
	if !c.bounds.Contains(x, y) {
		c.violations++
	}
	return false
}

// Set writes a rune at (x, y). A wide rune whose second column is clipped
// becomes a space. Overwriting half of a wide character painted earlier
// blanks its other half, even when that cell is outside the clip.
func (c *Canvas) Set(x, y int, r rune, style Style) {
	if !c.visible(x, y) {
		return
	}
	c.buf.SetRune(x, y, r, style, c.clip.Right())
}

// SetString writes s starting at (x, y) one grapheme cluster per cell
// group and returns the display width consumed, clipped or not. A cluster
// is drawn with its first rune; combining marks do not take cells.
func (c *Canvas) SetString(x, y int, s string, style Style) int {
	cur := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if w <= 0 {
			continue
		}
		w = min(w, 2)
		r := runes[0]
		if w == 2 && RuneWidth(r) < 2 {
			// Emoji sequences such as flags are wide as a cluster only.
			c.Set(cur, y, r, style)
			c.Set(cur+1, y, ' ', style)
		} else {
			c.Set(cur, y, r, style)
		}
		cur += w
	}
	return cur - x
}

// Fill paints every cell of r with ch. Only the visible part of r is
// visited, so the cost is bounded by the clip, not by r. Cells of r outside
// Bounds count as violations.
func (c *Canvas) Fill(r Rect, ch rune, style Style) {
	if r.IsEmpty() {
		return
	}
	c.violations += r.Area() - r.Intersect(c.bounds).Area()

	v := r.Intersect(c.clip)
	if v.IsEmpty() {
		return
	}
	w := max(RuneWidth(ch), 1)
	// Wide runes keep the column phase of r.
	x0 := v.X + (w-(v.X-r.X)%w)%w
	for y := v.Y; y < v.Bottom(); y++ {
		for x := x0; x < v.Right(); x += w {
			c.buf.SetRune(x, y, ch, style, c.clip.Right())
		}
	}
}

// Box draws a border along the edge of r. Rectangles smaller than 2x2 get
// no border.
func (c *Canvas) Box(r Rect, border BorderStyle, style Style) {
	if r.Width < 2 || r.Height < 2 || border == BorderNone {
		return
	}
	chars := border.Chars()
	left, right := r.X, r.Right()-1
	top, bottom := r.Y, r.Bottom()-1

	c.Set(left, top, chars.TopLeft, style)
	c.Set(right, top, chars.TopRight, style)
	c.Set(left, bottom, chars.BottomLeft, style)
	c.Set(right, bottom, chars.BottomRight, style)

	inner := r.Width - 2
	c.Fill(Rect{X: left + 1, Y: top, Width: inner, Height: 1}, chars.Top, style)
	c.Fill(Rect{X: left + 1, Y: bottom, Width: inner, Height: 1}, chars.Bottom, style)

	side := r.Height - 2
	c.Fill(Rect{X: left, Y: top + 1, Width: 1, Height: side}, chars.Left, style)
	c.Fill(Rect{X: right, Y: top + 1, Width: 1, Height: side}, chars.Right, style)
}
