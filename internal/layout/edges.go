package layout

// Edges holds one value per side of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL creates Edges in CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Add returns the per-side sum of two Edges.
func (e Edges) Add(other Edges) Edges {
	return Edges{
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
		Left:   e.Left + other.Left,
	}
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// Size is a width/height pair in cells.
type Size struct {
	Width, Height int
}
