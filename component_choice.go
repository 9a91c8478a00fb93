package tuix

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// buttonGap separates the buttons of one row.
const buttonGap = "    "

// choiceComponent is a prompt: a heavy box holding a centered, wrapped
// label and rows of buttons aligned to the bottom of the box. Every button
// row is followed by an empty row. The button at (selected_row,
// selected_index) is highlighted.
//
//	┏━━━━━━━━━━━━━━━━┓
//	┃                ┃
//	┃   Continue?    ┃
//	┃                ┃
//	┃   Yes    No    ┃
//	┃                ┃
//	┃                ┃
//	┗━━━━━━━━━━━━━━━━┛
//
// Props: label, choices, selected_row, selected_index, shadow.
type choiceComponent struct{}

// choiceChrome is the border plus one column of padding on each side.
const choiceChrome = 4

// choiceFixedRows counts the borders and the three spacer rows.
const choiceFixedRows = 5

func (choiceComponent) Measure(props Props, availWidth, availHeight int) Size {
	rows := props.Choices("choices")
	inner := 0
	for _, row := range rows {
		inner = max(inner, ansi.StringWidth(buttonRow(row)))
	}
	label := props.String("label", "")
	labelWidth := ansi.StringWidth(label)
	if availWidth > choiceChrome {
		labelWidth = min(labelWidth, availWidth-choiceChrome)
	}
	inner = max(inner, labelWidth)
	lines := textLines(label, inner, true)

	w := inner + choiceChrome
	h := len(lines) + choiceFixedRows + 2*len(rows)
	if props.Bool("shadow", false) {
		w++
		h++
	}
	return Size{Width: w, Height: h}
}

func (choiceComponent) Inset(Props) Edges { return Edges{} }

func buttonRow(row []Choice) string {
	names := make([]string, len(row))
	for i, ch := range row {
		names[i] = ch.Name
	}
	return strings.Join(names, buttonGap)
}

func (choiceComponent) Paint(props Props, clip Rect, c *Canvas) {
	theme := c.Theme()
	box := c.Bounds()
	if props.Bool("shadow", false) {
		box = paintShadow(c, box, theme)
	}

	text := theme.textStyle()
	c.Fill(box, ' ', text)
	c.Box(box, BorderThick, Style{Fg: theme.Border, Bg: theme.PromptBackground})

	inner := box.Width - choiceChrome
	if inner <= 0 || box.Height < choiceFixedRows {
		return
	}
	left := box.X + 2

	lines := textLines(props.String("label", ""), inner, true)
	y := box.Y + 2
	for _, line := range lines {
		if y >= box.Bottom()-3 {
			break
		}
		w := ansi.StringWidth(line)
		c.SetString(left+alignOffset("center", inner, w), y, line, text)
		y++
	}

	// Buttons fill the space between the label and the bottom spacer,
	// keeping the last rows when they do not all fit.
	area := box.Bottom() - 2 - (y + 1)
	rows := props.Choices("choices")
	visible := min(len(rows), max(area/2, 0))
	first := len(rows) - visible
	by := box.Bottom() - 2 - 2*visible

	selRow := props.Int("selected_row", 0)
	selIdx := props.Int("selected_index", 0)
	for r := first; r < len(rows); r++ {
		row := rows[r]
		w := ansi.StringWidth(buttonRow(row))
		x := left + alignOffset("center", inner, w)
		for i, ch := range row {
			style := Style{Fg: theme.UnselectedText, Bg: theme.UnselectedBackground}
			if style.Bg.IsDefault() {
				style.Bg = theme.PromptBackground
			}
			if r == selRow && i == selIdx {
				style = Style{Fg: theme.SelectedText, Bg: theme.SelectedBackground, Attrs: AttrBold}
			}
			x += c.SetString(x, by, ansi.Truncate(ch.Name, max(box.Right()-2-x, 0), "…"), style)
			if i < len(row)-1 {
				x += ansi.StringWidth(buttonGap)
			}
		}
		by += 2
	}
}

// MoveSelection returns the selection after a move by (dRow, dIndex) over
// the given rows. Moving to a shorter row clamps the index.
func MoveSelection(rows [][]Choice, row, index, dRow, dIndex int) (int, int) {
	if len(rows) == 0 {
		return 0, 0
	}
	row = min(max(row+dRow, 0), len(rows)-1)
	last := max(len(rows[row])-1, 0)
	index = min(max(index+dIndex, 0), last)
	return row, index
}

// Selected returns the choice at (row, index), if any.
func Selected(rows [][]Choice, row, index int) (Choice, bool) {
	if row < 0 || row >= len(rows) || index < 0 || index >= len(rows[row]) {
		return Choice{}, false
	}
	return rows[row][index], true
}
