package tuix

import "strings"

// CellChange is one cell of an update set, in viewport coordinates.
type CellChange struct {
	X, Y int
	Cell Cell
}

// FrameBuffer is a fixed-size grid of cells stored row-major. It has no
// notion of front and back: the Renderer owns two of them and swaps.
type FrameBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewFrameBuffer creates a blank buffer of the given dimensions.
func NewFrameBuffer(width, height int) *FrameBuffer {
	width = max(width, 0)
	height = max(height, 0)

	b := &FrameBuffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in columns.
func (b *FrameBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *FrameBuffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions (width, height).
func (b *FrameBuffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *FrameBuffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *FrameBuffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (b *FrameBuffer) Cell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return b.cells[idx]
}

// SetCell stores c at (x, y). Out of bounds writes are ignored.
func (b *FrameBuffer) SetCell(x, y int, c Cell) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	b.cells[idx] = c
}

// SetRune writes r at (x, y), keeping wide characters consistent: a wide
// rune also claims x+1, and any wide character it partly overwrites is
// replaced by spaces. A wide rune that does not fit before limit (exclusive)
// is written as a space.
//
// Blanking the other half of a partly overwritten wide character may touch
// x-1 or x+2, which can lie outside the writer's clip. A half glyph cannot
// be displayed, so that cell is cleared rather than left inconsistent.
func (b *FrameBuffer) SetRune(x, y int, r rune, style Style, limit int) {
	if b.idx(x, y) < 0 {
		return
	}
	limit = min(limit, b.width)

	width := RuneWidth(r)
	if width == 2 && x+1 >= limit {
		r, width = ' ', 1
	}

	b.clearWideAt(x, y)
	if width == 2 {
		b.clearWideAt(x+1, y)
	}

	b.cells[y*b.width+x] = NewCellWithWidth(r, style, uint8(width))
	if width == 2 {
		b.cells[y*b.width+x+1] = NewCellWithWidth(0, style, 0)
	}
}

// clearWideAt blanks both halves of a wide character touching (x, y).
func (b *FrameBuffer) clearWideAt(x, y int) {
	cell := b.Cell(x, y)
	switch {
	case cell.IsContinuation():
		if x > 0 {
			b.SetCell(x-1, y, blankCell)
		}
		b.SetCell(x, y, blankCell)
	case cell.Width == 2:
		b.SetCell(x, y, blankCell)
		b.SetCell(x+1, y, blankCell)
	}
}

// Clear resets every cell to a blank cell.
func (b *FrameBuffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blankCell
	}
}

// Invalidate fills the buffer with a sentinel cell that differs from every
// paintable cell, so the next diff against it covers the whole grid.
func (b *FrameBuffer) Invalidate() {
	for i := range b.cells {
		b.cells[i] = invalidCell
	}
}

// Valid reports whether no cell holds the invalidation sentinel.
func (b *FrameBuffer) Valid() bool {
	for _, c := range b.cells {
		if c.Width == invalidWidth {
			return false
		}
	}
	return true
}

// Diff compares b against prev cell by cell and returns every cell of b
// whose (rune, style, width) differs, in row-major order. A nil prev or one
// of a different size counts as entirely different.
func (b *FrameBuffer) Diff(prev *FrameBuffer) []CellChange {
	full := prev == nil || prev.width != b.width || prev.height != b.height
	changes := make([]CellChange, 0, b.width) // Pre-allocate one row
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			if full || !b.cells[idx].Equal(prev.cells[idx]) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: b.cells[idx]})
			}
		}
	}
	return changes
}

// Apply writes a set of changes into the buffer, ignoring those out of
// bounds.
func (b *FrameBuffer) Apply(changes []CellChange) {
	for _, ch := range changes {
		b.SetCell(ch.X, ch.Y, ch.Cell)
	}
}

// String renders the buffer to text, one line per row. Continuation cells
// are skipped.
func (b *FrameBuffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		b.writeRow(&sb, y)
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from each line.
func (b *FrameBuffer) StringTrimmed() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		b.writeRow(&line, y)
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func (b *FrameBuffer) writeRow(sb *strings.Builder, y int) {
	for x := 0; x < b.width; x++ {
		cell := b.cells[y*b.width+x]
		switch {
		case cell.IsContinuation():
		case cell.Rune <= 0:
			sb.WriteRune(' ')
		default:
			sb.WriteRune(cell.Rune)
		}
	}
}
