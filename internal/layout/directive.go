package layout

// Align positions a node inside its parent's free space along one axis.
type Align uint8

const (
	AlignStart  Align = iota // Leading edge
	AlignCenter              // Middle, extra cell to the trailing side
	AlignEnd                 // Trailing edge
)

// Flow controls how a container arranges its children.
type Flow uint8

const (
	// FlowOverlay positions every child independently against the content
	// box origin. Later children paint over earlier ones.
	FlowOverlay Flow = iota
	// FlowColumn stacks children top to bottom.
	FlowColumn
	// FlowRow places children left to right.
	FlowRow
)

// Directive carries the layout instructions of one node.
type Directive struct {
	Width   Value
	Height  Value
	Margin  Margins
	Padding Edges
	AlignX  Align
	AlignY  Align
	Flow    Flow
}

// DefaultDirective returns auto size, zero margins, start alignment and
// overlay flow.
func DefaultDirective() Directive {
	return Directive{
		Width:  Auto(),
		Height: Auto(),
	}
}

// fixedMargins returns the non-centered margin cells against the given
// content extents, as Edges.
func (d Directive) fixedMargins(width, height int) Edges {
	return Edges{
		Top:    d.Margin.Top.cells(height),
		Right:  d.Margin.Right.cells(width),
		Bottom: d.Margin.Bottom.cells(height),
		Left:   d.Margin.Left.cells(width),
	}
}
