package layout

// MarginMode selects how a margin edge is computed.
type MarginMode uint8

const (
	MarginFixed    MarginMode = iota // Exact cell count
	MarginCentered                   // Center the node along the edge's axis
	MarginFraction                   // Fraction of the parent's content extent
)

// Margin is the directive for a single edge.
type Margin struct {
	Mode     MarginMode
	Cells    int
	Fraction float64
}

// MarginCells returns a fixed margin of n cells.
func MarginCells(n int) Margin {
	return Margin{Mode: MarginFixed, Cells: max(n, 0)}
}

// Centered returns a centering margin.
func Centered() Margin {
	return Margin{Mode: MarginCentered}
}

// MarginOf returns a margin of f times the parent's content extent.
func MarginOf(f float64) Margin {
	return Margin{Mode: MarginFraction, Fraction: f}
}

// IsCentered reports whether the edge uses centered mode.
func (m Margin) IsCentered() bool {
	return m.Mode == MarginCentered
}

// cells returns the fixed part of the margin against an axis extent.
// Centered margins have no fixed part.
func (m Margin) cells(extent int) int {
	switch m.Mode {
	case MarginFixed:
		return max(m.Cells, 0)
	case MarginFraction:
		return max(int(float64(extent)*m.Fraction), 0)
	default:
		return 0
	}
}

// Margins holds one Margin per edge.
type Margins struct {
	Top, Right, Bottom, Left Margin
}
