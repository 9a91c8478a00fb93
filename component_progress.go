package tuix

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

const (
	barFull  = '█'
	barEmpty = '░'

	// minBarWidth is the auto width of the bar itself, without the percent.
	minBarWidth = 10
	// percentWidth is " 100%".
	percentWidth = 5
)

// progressComponent draws an optional label line above a bar with the
// percentage on its right:
//
//	Downloading
//	██████░░░░░░░░  42%
//
// Props: label, progress (0-100, clamped), fg, bg.
type progressComponent struct{}

func (progressComponent) Measure(props Props, availWidth, availHeight int) Size {
	w := max(ansi.StringWidth(props.String("label", "")), minBarWidth+percentWidth)
	h := 1
	if props.String("label", "") != "" {
		h = 2
	}
	return Size{Width: w, Height: h}
}

func (progressComponent) Inset(Props) Edges { return Edges{} }

func (progressComponent) Paint(props Props, clip Rect, c *Canvas) {
	r := c.Bounds()
	style := styleFromProps(Style{Fg: c.Theme().Text}, props)

	y := r.Y
	if label := props.String("label", ""); label != "" {
		c.SetString(r.X, y, ansi.Truncate(label, r.Width, "…"), style)
		y++
	}

	pct := min(max(props.Float("progress", 0), 0), 100)
	barWidth := r.Width - percentWidth
	if barWidth <= 0 {
		c.SetString(r.X, y, fmt.Sprintf("%3.0f%%", pct), style)
		return
	}

	filled := int(float64(barWidth) * pct / 100)
	vis := c.Clip()
	for x := max(vis.X-r.X, 0); x < min(barWidth, vis.Right()-r.X); x++ {
		ch := barEmpty
		if x < filled {
			ch = barFull
		}
		c.Set(r.X+x, y, ch, style)
	}
	c.SetString(r.X+barWidth, y, fmt.Sprintf(" %3.0f%%", pct), style)
}
