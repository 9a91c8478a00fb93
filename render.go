package tuix

import (
	"fmt"
	"log/slog"
)

// Renderer paints a laid out tree into a frame buffer and computes the
// update against the last committed frame. It owns two buffers and swaps
// them on Commit; buffers are only reallocated when the viewport changes.
type Renderer struct {
	current  *FrameBuffer
	previous *FrameBuffer
	registry *Registry
	theme    *Theme
	logger   *slog.Logger
}

// NewRenderer creates a renderer with empty buffers. Nil arguments fall back
// to the default registry, the classic theme and a discarding logger.
func NewRenderer(reg *Registry, theme *Theme, logger *slog.Logger) *Renderer {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if theme == nil {
		theme = ClassicTheme()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Renderer{
		current:  NewFrameBuffer(0, 0),
		previous: NewFrameBuffer(0, 0),
		registry: reg,
		theme:    theme,
		logger:   logger,
	}
	return r
}

// Resize reallocates both buffers when the size differs from the current
// one and invalidates the previous buffer so the next diff repaints every
// cell. It reports whether anything changed.
func (r *Renderer) Resize(width, height int) bool {
	if r.current.width == width && r.current.height == height {
		return false
	}
	r.current = NewFrameBuffer(width, height)
	r.previous = NewFrameBuffer(width, height)
	r.previous.Invalidate()
	return true
}

// Invalidate forgets what the terminal shows. Use it when the screen state
// is unknown, for instance after a failed flush.
func (r *Renderer) Invalidate() {
	r.previous.Invalidate()
}

// NeedsFullRepaint reports whether the next diff will cover every cell
// because the previous frame is unknown.
func (r *Renderer) NeedsFullRepaint() bool {
	return !r.previous.Valid()
}

// Current returns the buffer being painted. After Commit the painted frame
// is Previous.
func (r *Renderer) Current() *FrameBuffer { return r.current }

// Previous returns the last committed buffer.
func (r *Renderer) Previous() *FrameBuffer { return r.previous }

// Paint clears the current buffer and paints every node of t in tree
// order: parents before children, siblings in declared order, so later
// nodes win where rectangles overlap. Nodes whose visible rectangle is
// empty are skipped. Problems with individual nodes are returned as
// *PaintWarning and never stop the pass.
func (r *Renderer) Paint(t *Tree, res *LayoutResult) []error {
	r.current.Clear()

	var warnings []error
	t.Walk(func(i int, n *Node) {
		box := res.At(i)
		if box.Visible.IsEmpty() {
			return
		}
		if w := r.paintNode(n, box); w != nil {
			r.logger.Warn("paint", "node", n.ID, "kind", n.Kind, "err", w)
			warnings = append(warnings, w)
		}
	})
	return warnings
}

func (r *Renderer) paintNode(n *Node, box Box) (warning *PaintWarning) {
	comp, ok := r.registry.Lookup(n.Kind)
	if !ok {
		return &PaintWarning{NodeID: n.ID, Kind: n.Kind, Err: ErrUnknownKind}
	}

	c := newCanvas(r.current, box.Rect, box.Visible, r.theme)
	defer func() {
		if rec := recover(); rec != nil {
			warning = &PaintWarning{
				NodeID:  n.ID,
				Kind:    n.Kind,
				Dropped: c.Violations(),
				Err:     fmt.Errorf("%w: %v", ErrPaintPanic, rec),
			}
		}
	}()

	comp.Paint(n.Props, box.Visible, c)
	if v := c.Violations(); v > 0 {
		return &PaintWarning{NodeID: n.ID, Kind: n.Kind, Dropped: v, Err: ErrOutOfBounds}
	}
	return nil
}

// Diff returns the cells of the current buffer that differ from the last
// committed frame, in row-major order.
func (r *Renderer) Diff() []CellChange {
	return r.current.Diff(r.previous)
}

// Commit makes the current buffer the committed frame by swapping the two
// buffers. The next Paint clears and reuses the old previous buffer.
func (r *Renderer) Commit() {
	r.current, r.previous = r.previous, r.current
}
