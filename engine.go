package tuix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Report describes one draw.
type Report struct {
	// Viewport is the grid the tree was laid out in.
	Viewport Rect
	// Changes is the update set handed to the transport.
	Changes []CellChange
	// Warnings holds the *DirectiveWarning and *PaintWarning values of the
	// draw. None of them stopped it.
	Warnings []error
	// FullRepaint is set when the previous frame was unknown, on the first
	// draw and after a resize or a failed flush.
	FullRepaint bool
	// Duration is the wall time of the draw.
	Duration time.Duration
}

// Observer is told about every draw, successful or not. It is called with
// the engine lock held and must not call Draw.
type Observer interface {
	ObserveDraw(r Report, err error)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(r Report, err error)

func (f ObserverFunc) ObserveDraw(r Report, err error) { f(r, err) }

// Engine runs draws against a transport: query the viewport, build the tree,
// lay it out, paint it, diff against the committed frame, flush, swap.
// Draws are serialized by a mutex and run in call order, one at a time.
type Engine struct {
	mu        sync.Mutex
	transport Transport
	registry  *Registry
	theme     *Theme
	renderer  *Renderer
	logger    *slog.Logger
	observer  Observer
}

// NewEngine creates an engine drawing to t.
func NewEngine(t Transport, opts ...Option) *Engine {
	e := &Engine{
		transport: t,
		registry:  DefaultRegistry(),
		theme:     ClassicTheme(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.renderer = NewRenderer(e.registry, e.theme, e.logger)
	return e
}

// Registry returns the component registry the engine builds trees with.
func (e *Engine) Registry() *Registry { return e.registry }

// Draw renders one snapshot. The context is checked once before any work;
// a draw that has started runs to completion.
//
// A *StructuralError leaves the screen untouched. Directive and paint
// problems are logged, collected in Report.Warnings, and do not fail the
// draw. A transport error is returned wrapped and makes the next draw
// repaint everything.
func (e *Engine) Draw(ctx context.Context, s Snapshot) (rep Report, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	defer func() {
		rep.Duration = time.Since(start)
		if e.observer != nil {
			e.observer.ObserveDraw(rep, err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return rep, err
	}

	w, h, err := e.transport.Size()
	if err != nil {
		return rep, fmt.Errorf("query viewport: %w", err)
	}
	if w <= 0 || h <= 0 {
		return rep, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, w, h)
	}
	rep.Viewport = NewRect(0, 0, w, h)

	tree, err := Build(s, e.registry)
	if err != nil {
		e.logger.Error("draw aborted", "err", err)
		return rep, err
	}
	rep.Warnings = append(rep.Warnings, tree.Warnings()...)

	if e.renderer.Resize(w, h) {
		e.logger.Debug("viewport resized", "width", w, "height", h)
	}

	res, err := Layout(tree, rep.Viewport)
	if err != nil {
		return rep, err
	}

	rep.Warnings = append(rep.Warnings, e.renderer.Paint(tree, res)...)
	for _, warn := range tree.Warnings() {
		e.logger.Warn("directive", "err", warn)
	}

	rep.FullRepaint = e.renderer.NeedsFullRepaint()
	rep.Changes = e.renderer.Diff()

	if rep.FullRepaint {
		if c, ok := e.transport.(Clearer); ok {
			if err := c.Clear(); err != nil {
				e.renderer.Invalidate()
				return rep, fmt.Errorf("clear terminal: %w", err)
			}
		}
		e.logger.Debug("full repaint", "cells", len(rep.Changes))
	}

	if err := e.transport.Flush(rep.Changes); err != nil {
		e.renderer.Invalidate()
		return rep, fmt.Errorf("flush %d cells: %w", len(rep.Changes), err)
	}
	e.renderer.Commit()

	return rep, nil
}

// Frame returns a copy of the last committed frame as text.
func (e *Engine) Frame() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.renderer.previous.Valid() {
		return ""
	}
	return e.renderer.previous.String()
}

// Invalidate makes the next draw repaint every cell, for instance after
// another program wrote to the terminal.
func (e *Engine) Invalidate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderer.Invalidate()
}

// IsStructural reports whether err aborted a draw because the tree was
// malformed.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}
