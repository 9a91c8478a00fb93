package layout

// Tree is the read-only view of a component tree that the layout engine
// works on. Nodes are addressed by index; Root returns the root's index.
type Tree interface {
	Len() int
	Root() int
	ID(i int) string
	Children(i int) []int
	Directive(i int) Directive

	// Measure returns the intrinsic content size of node i given the space
	// it may use. It is only called for auto-sized axes.
	Measure(i int, availWidth, availHeight int) Size

	// Inset returns the chrome the node's component draws around its
	// children (a border, a shadow strip). It is applied after padding.
	Inset(i int) Edges
}

// Box is the computed geometry of one node.
type Box struct {
	// Rect is the unclipped border box. Children are positioned from it.
	Rect Rect
	// Content is Rect minus padding and component inset.
	Content Rect
	// Visible is Rect clipped against the viewport and every ancestor's
	// content box. Painting is restricted to it.
	Visible Rect
}

// Result maps node ids to their computed boxes. A Result is never mutated
// after Calculate returns it.
type Result struct {
	boxes []Box
	index map[string]int
}

// Len returns the number of laid out nodes.
func (r *Result) Len() int {
	return len(r.index)
}

// At returns the box of the node at tree index i.
func (r *Result) At(i int) Box {
	if i < 0 || i >= len(r.boxes) {
		return Box{}
	}
	return r.boxes[i]
}

// Box returns the box of the node with the given id.
func (r *Result) Box(id string) (Box, bool) {
	i, ok := r.index[id]
	if !ok {
		return Box{}, false
	}
	return r.boxes[i], true
}

// Rect returns the unclipped rectangle of the node with the given id.
func (r *Result) Rect(id string) (Rect, bool) {
	b, ok := r.Box(id)
	return b.Rect, ok
}

// Rects returns a copy of the id to Rect mapping.
func (r *Result) Rects() map[string]Rect {
	out := make(map[string]Rect, len(r.index))
	for id, i := range r.index {
		out[id] = r.boxes[i].Rect
	}
	return out
}
