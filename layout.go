// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tuix

import "github.com/grindlemire/tuix/internal/layout"

// Value is a size hint for one axis (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Margin is the layout directive for a single edge.
type Margin = layout.Margin

// Margins holds one Margin per edge.
type Margins = layout.Margins

// Align positions a node inside its parent's free space.
type Align = layout.Align

const (
	AlignStart  = layout.AlignStart
	AlignCenter = layout.AlignCenter
	AlignEnd    = layout.AlignEnd
)

// Flow controls how a container arranges its children.
type Flow = layout.Flow

const (
	FlowOverlay = layout.FlowOverlay
	FlowColumn  = layout.FlowColumn
	FlowRow     = layout.FlowRow
)

// Directive carries the layout instructions of one node.
type Directive = layout.Directive

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Box is the computed geometry of one node.
type Box = layout.Box

// LayoutResult maps node ids to their computed boxes.
type LayoutResult = layout.Result

// Fixed creates a Value with a fixed cell count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of the parent.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// MarginCells returns a fixed margin of n cells.
func MarginCells(n int) Margin {
	return layout.MarginCells(n)
}

// Centered returns a centering margin.
func Centered() Margin {
	return layout.Centered()
}

// MarginOf returns a margin of f times the parent's content extent.
func MarginOf(f float64) Margin {
	return layout.MarginOf(f)
}

// DefaultDirective returns auto size, zero margins, start alignment and
// overlay flow.
func DefaultDirective() Directive {
	return layout.DefaultDirective()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Layout computes the geometry of a built tree inside viewport. The tree has
// already been validated by Build, so an error here means it was modified
// afterwards.
func Layout(t *Tree, viewport Rect) (*LayoutResult, error) {
	res, err := layout.Calculate(t, viewport)
	if err != nil {
		return nil, &StructuralError{NodeID: t.ID(t.Root()), Err: err}
	}
	return res, nil
}
