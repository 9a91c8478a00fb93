package tuix

import (
	"sort"
	"sync"
)

// Component is the pluggable behaviour of one component kind. The layout
// engine asks it for an intrinsic size and for the chrome it draws around
// its children; the renderer asks it to paint.
//
// Paint receives the node's resolved properties, the visible part of its
// rectangle, and a Canvas bounded by that rectangle. The full rectangle is
// available from Canvas.Bounds.
type Component interface {
	Measure(props Props, availWidth, availHeight int) Size
	Inset(props Props) Edges
	Paint(props Props, clip Rect, c *Canvas)
}

// ComponentFuncs adapts plain functions to Component. Nil functions measure
// 0x0, have no inset, and paint nothing.
type ComponentFuncs struct {
	MeasureFunc func(props Props, availWidth, availHeight int) Size
	InsetFunc   func(props Props) Edges
	PaintFunc   func(props Props, clip Rect, c *Canvas)
}

func (f ComponentFuncs) Measure(props Props, availWidth, availHeight int) Size {
	if f.MeasureFunc == nil {
		return Size{}
	}
	return f.MeasureFunc(props, availWidth, availHeight)
}

func (f ComponentFuncs) Inset(props Props) Edges {
	if f.InsetFunc == nil {
		return Edges{}
	}
	return f.InsetFunc(props)
}

func (f ComponentFuncs) Paint(props Props, clip Rect, c *Canvas) {
	if f.PaintFunc != nil {
		f.PaintFunc(props, clip, c)
	}
}

// Registry maps component kinds to their implementation. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Component
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Component)}
}

// NewBuiltinRegistry returns a registry holding the built-in components:
// box, label, panel, choice, progress_bar and text_input.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register(KindBox, ComponentFuncs{})
	r.Register(KindLabel, labelComponent{})
	r.Register(KindPanel, panelComponent{})
	r.Register(KindChoice, choiceComponent{})
	r.Register(KindProgressBar, progressComponent{})
	r.Register(KindTextInput, inputComponent{})
	return r
}

var defaultRegistry = sync.OnceValue(NewBuiltinRegistry)

// DefaultRegistry returns the process-wide registry of built-in components.
// Components registered on it are visible to every engine that uses it.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Register adds or replaces the component for kind.
func (r *Registry) Register(kind string, c Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[kind] = c
}

// Lookup returns the component registered for kind.
func (r *Registry) Lookup(kind string) (Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.kinds[kind]
	return c, ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.kinds))
	for k := range r.kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
