package tuix

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in the frame buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds the
// rune and the second is a continuation with Width 0.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Style Style // Visual styling
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// invalidWidth marks the sentinel cell used to poison a previous buffer.
// No painted cell ever carries it.
const invalidWidth uint8 = 0xFF

var (
	blankCell   = Cell{Rune: ' ', Width: 1}
	invalidCell = Cell{Rune: -1, Width: invalidWidth}
)

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(RuneWidth(r)),
	}
}

// NewCellWithWidth creates a new Cell with an explicit width.
// Use this for continuation cells (width 0) or when width is already known.
func NewCellWithWidth(r rune, style Style, width uint8) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: width,
	}
}

// BlankCell returns a space with default styling.
func BlankCell() Cell {
	return blankCell
}

// IsContinuation returns true if this cell is the second column of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal compares the full (rune, style, width) tuple.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equal(other.Style) && c.Width == other.Width
}

// IsBlank returns true if the cell is indistinguishable from a cleared cell.
func (c Cell) IsBlank() bool {
	return c.Equal(blankCell)
}

// RuneWidth returns the display width of a rune in terminal cells: 2 for
// East Asian wide characters and most emoji, 1 otherwise. Zero-width and
// control runes still take one cell so that every rune written is visible
// in the grid.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	switch {
	case w < 1:
		return 1
	case w > 2:
		return 2
	}
	return w
}

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
