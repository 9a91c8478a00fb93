package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrCycle is returned when a node is reachable from itself or from two parents.
	ErrCycle = errors.New("node reached more than once")
	// ErrDanglingChild is returned when a child index does not name a node.
	ErrDanglingChild = errors.New("dangling child reference")
)

// visit states for the structure check.
const (
	unvisited uint8 = iota
	visiting
	visited
)

// calc holds per-pass state. It is discarded when Calculate returns, so no
// geometry survives from one pass to the next.
type calc struct {
	tree  Tree
	sizes []Size
	dirs  []Directive
	state []uint8
}

// Calculate lays out the tree inside viewport and returns a fresh Result.
// Nodes not reachable from the root are left out. The only failure is a
// structural one: a cycle, a shared child, or a child index out of range.
func Calculate(t Tree, viewport Rect) (*Result, error) {
	n := t.Len()
	res := &Result{boxes: make([]Box, n), index: make(map[string]int, n)}
	if n == 0 {
		return res, nil
	}

	c := &calc{
		tree:  t,
		sizes: make([]Size, n),
		dirs:  make([]Directive, n),
		state: make([]uint8, n),
	}

	root := t.Root()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("root index %d: %w", root, ErrDanglingChild)
	}
	if err := c.check(root); err != nil {
		return nil, err
	}

	viewport.Width = max(viewport.Width, 0)
	viewport.Height = max(viewport.Height, 0)

	// 1. Size pass
	c.measure(root, viewport.Width, viewport.Height)

	// 2. Position pass
	c.place(root, viewport, viewport.Width, viewport.Height, viewport, res)

	return res, nil
}

// check walks the tree once, caching directives and rejecting anything that
// is not a tree.
func (c *calc) check(i int) error {
	c.state[i] = visiting
	c.dirs[i] = c.tree.Directive(i)
	for _, ch := range c.tree.Children(i) {
		if ch < 0 || ch >= len(c.state) {
			return fmt.Errorf("node %q child %d: %w", c.tree.ID(i), ch, ErrDanglingChild)
		}
		if c.state[ch] != unvisited {
			return fmt.Errorf("node %q child %q: %w", c.tree.ID(i), c.tree.ID(ch), ErrCycle)
		}
		if err := c.check(ch); err != nil {
			return err
		}
	}
	c.state[i] = visited
	return nil
}

// measure resolves the size of node i given its parent's content extent.
// Fixed and percentage sizes come from the parent (pre-order); auto sizes
// need the children first (post-order).
func (c *calc) measure(i, availW, availH int) Size {
	d := c.dirs[i]
	margins := d.fixedMargins(availW, availH)

	w, wKnown := d.Width.resolve(availW, availW-margins.Horizontal())
	h, hKnown := d.Height.resolve(availH, availH-margins.Vertical())

	chrome := d.Padding.Add(c.tree.Inset(i))
	innerW, innerH := availW, availH
	if wKnown {
		innerW = w
	}
	if hKnown {
		innerH = h
	}
	innerW = max(innerW-chrome.Horizontal(), 0)
	innerH = max(innerH-chrome.Vertical(), 0)

	var agg Size
	for _, ch := range c.tree.Children(i) {
		cs := c.measure(ch, innerW, innerH)
		cm := c.dirs[ch].fixedMargins(innerW, innerH)
		outerW := cs.Width + cm.Horizontal()
		outerH := cs.Height + cm.Vertical()

		switch d.Flow {
		case FlowColumn:
			agg.Width = max(agg.Width, outerW)
			agg.Height += outerH
		case FlowRow:
			agg.Width += outerW
			agg.Height = max(agg.Height, outerH)
		default:
			agg.Width = max(agg.Width, outerW)
			agg.Height = max(agg.Height, outerH)
		}
	}

	if !wKnown || !hKnown {
		content := c.tree.Measure(i, innerW, innerH)
		if !wKnown {
			w = max(content.Width, agg.Width, 0) + chrome.Horizontal()
		}
		if !hKnown {
			h = max(content.Height, agg.Height, 0) + chrome.Vertical()
		}
	}

	c.sizes[i] = Size{Width: w, Height: h}
	return c.sizes[i]
}

// place positions node i inside slot and recurses into its children.
// basisW and basisH are the parent's content extents, used for fractional
// margins. clip is the visible part of the parent's content box.
func (c *calc) place(i int, slot Rect, basisW, basisH int, clip Rect, res *Result) {
	d := c.dirs[i]
	size := c.sizes[i]

	x := placeAxis(slot.X, slot.Width, basisW, size.Width, d.Margin.Left, d.Margin.Right, d.AlignX)
	y := placeAxis(slot.Y, slot.Height, basisH, size.Height, d.Margin.Top, d.Margin.Bottom, d.AlignY)

	rect := Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
	content := rect.Inset(d.Padding.Add(c.tree.Inset(i)))

	res.boxes[i] = Box{
		Rect:    rect,
		Content: content,
		Visible: rect.Intersect(clip),
	}
	res.index[c.tree.ID(i)] = i

	childClip := content.Intersect(clip)
	cursor := 0
	for _, ch := range c.tree.Children(i) {
		childSlot := content
		switch d.Flow {
		case FlowColumn:
			cm := c.dirs[ch].fixedMargins(content.Width, content.Height)
			outer := c.sizes[ch].Height + cm.Vertical()
			childSlot = Rect{X: content.X, Y: content.Y + cursor, Width: content.Width, Height: outer}
			cursor += outer
		case FlowRow:
			cm := c.dirs[ch].fixedMargins(content.Width, content.Height)
			outer := c.sizes[ch].Width + cm.Horizontal()
			childSlot = Rect{X: content.X + cursor, Y: content.Y, Width: outer, Height: content.Height}
			cursor += outer
		}
		c.place(ch, childSlot, content.Width, content.Height, childClip, res)
	}
}

// placeAxis returns the leading coordinate of a node of the given size on
// one axis. Fixed margins shrink the box first; a centered edge or center
// alignment splits the remaining free space with the leading side taking
// the floor. A node larger than the box overflows toward the trailing edge.
func placeAxis(start, extent, basis, size int, lead, trail Margin, align Align) int {
	leadCells := lead.cells(basis)
	trailCells := trail.cells(basis)
	free := max(extent-leadCells-trailCells-size, 0)

	switch {
	case lead.IsCentered() || trail.IsCentered() || align == AlignCenter:
		return start + leadCells + free/2
	case align == AlignEnd:
		return start + leadCells + free
	default:
		return start + leadCells
	}
}
