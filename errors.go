package tuix

import (
	"errors"
	"fmt"

	"github.com/grindlemire/tuix/internal/layout"
)

// Structural causes, matchable with errors.Is through a *StructuralError.
var (
	ErrDuplicateID   = errors.New("duplicate node id")
	ErrDanglingChild = layout.ErrDanglingChild
	ErrCycle         = layout.ErrCycle
	ErrSharedChild   = errors.New("child has more than one parent")
	ErrMissingRoot   = errors.New("root node not found")
)

// Warning causes.
var (
	ErrBadDirective = errors.New("invalid layout directive")
	ErrBadProperty  = errors.New("unsupported property value")
	ErrUnknownKind  = errors.New("unknown component kind")
	ErrOutOfBounds  = errors.New("write outside node rectangle")
	ErrPaintPanic   = errors.New("paint function panicked")
)

// ErrInvalidViewport is returned when the transport reports a size that
// cannot hold a single cell.
var ErrInvalidViewport = errors.New("invalid viewport")

// StructuralError reports a tree that is not a tree: duplicate ids, a
// dangling child reference, a cycle, or a child with two parents. It aborts
// the draw and nothing is sent to the terminal.
type StructuralError struct {
	NodeID string
	Err    error
}

func (e *StructuralError) Error() string {
	if e.NodeID == "" {
		return fmt.Sprintf("structural error: %v", e.Err)
	}
	return fmt.Sprintf("structural error at node %q: %v", e.NodeID, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// DirectiveWarning reports a property value that could not be used. The
// default was substituted and the draw went on.
type DirectiveWarning struct {
	NodeID string
	Key    string
	Value  any
	Err    error
}

func (e *DirectiveWarning) Error() string {
	return fmt.Sprintf("node %q: %s=%v: %v", e.NodeID, e.Key, e.Value, e.Err)
}

func (e *DirectiveWarning) Unwrap() error { return e.Err }

// PaintWarning reports a component that painted outside its rectangle,
// panicked, or has no registered painter. Dropped counts discarded cells.
type PaintWarning struct {
	NodeID  string
	Kind    string
	Dropped int
	Err     error
}

func (e *PaintWarning) Error() string {
	if e.Dropped > 0 {
		return fmt.Sprintf("paint %s %q: %v (%d cells dropped)", e.Kind, e.NodeID, e.Err, e.Dropped)
	}
	return fmt.Sprintf("paint %s %q: %v", e.Kind, e.NodeID, e.Err)
}

func (e *PaintWarning) Unwrap() error { return e.Err }
