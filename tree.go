package tuix

import (
	"errors"
	"fmt"

	"github.com/grindlemire/tuix/internal/layout"
)

// NodeSpec is one node of a Snapshot. Children are referenced by id.
type NodeSpec struct {
	ID       string
	Kind     string
	Children []string
	Props    map[string]any
}

// Snapshot is the flat ingestion format of a component tree: every node
// plus the id of the root. Nodes not reachable from the root are ignored.
type Snapshot struct {
	Root  string
	Nodes []NodeSpec
}

// Element is the nested form of a node, convenient for building trees in
// code. Snapshot flattens it.
type Element struct {
	ID       string
	Kind     string
	Props    map[string]any
	Children []Element
}

// El builds an Element.
func El(id, kind string, props map[string]any, children ...Element) Element {
	return Element{ID: id, Kind: kind, Props: props, Children: children}
}

// Snapshot flattens the element tree in pre-order.
func (e Element) Snapshot() Snapshot {
	var s Snapshot
	s.Root = e.ID
	var walk func(el Element)
	walk = func(el Element) {
		spec := NodeSpec{ID: el.ID, Kind: el.Kind, Props: el.Props}
		for _, ch := range el.Children {
			spec.Children = append(spec.Children, ch.ID)
		}
		s.Nodes = append(s.Nodes, spec)
		for _, ch := range el.Children {
			walk(ch)
		}
	}
	walk(e)
	return s
}

// Node is a validated node of a Tree.
type Node struct {
	ID        string
	Kind      string
	Props     Props
	Directive Directive

	parent   int
	children []int
}

// Parent returns the index of the parent node, or -1 for the root.
func (n *Node) Parent() int { return n.parent }

// Children returns the indices of the child nodes in declared order.
func (n *Node) Children() []int { return n.children }

// Tree is an arena of validated nodes addressed by index. The root is at
// index 0 and nodes are stored in pre-order, so iterating the arena visits
// parents before children and siblings in declared order.
//
// Tree implements layout.Tree; component metrics come from the registry it
// was built with.
type Tree struct {
	nodes    []Node
	index    map[string]int
	registry *Registry
	warnings []error
}

var _ layout.Tree = (*Tree)(nil)

// Build validates a snapshot and converts it into a Tree. Structural
// problems (duplicate ids, a missing root, dangling children, cycles, shared
// children) return a *StructuralError. Property and directive problems are
// recovered and available from Warnings.
//
// A nil registry uses DefaultRegistry.
func Build(s Snapshot, reg *Registry) (*Tree, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	specs := make(map[string]int, len(s.Nodes))
	for i, n := range s.Nodes {
		if _, dup := specs[n.ID]; dup {
			return nil, &StructuralError{NodeID: n.ID, Err: ErrDuplicateID}
		}
		specs[n.ID] = i
	}
	rootSpec, ok := specs[s.Root]
	if !ok {
		return nil, &StructuralError{NodeID: s.Root, Err: ErrMissingRoot}
	}

	t := &Tree{
		nodes:    make([]Node, 0, len(s.Nodes)),
		index:    make(map[string]int, len(s.Nodes)),
		registry: reg,
	}

	const (
		unseen = iota
		open
		done
	)
	state := make([]uint8, len(s.Nodes))

	var visit func(spec, parent int) (int, error)
	visit = func(spec, parent int) (int, error) {
		ns := s.Nodes[spec]
		state[spec] = open

		idx := len(t.nodes)
		t.nodes = append(t.nodes, t.newNode(ns, parent))
		t.index[ns.ID] = idx

		children := make([]int, 0, len(ns.Children))
		for _, cid := range ns.Children {
			c, ok := specs[cid]
			if !ok {
				return 0, &StructuralError{NodeID: ns.ID, Err: fmt.Errorf("%w: %q", ErrDanglingChild, cid)}
			}
			switch state[c] {
			case open:
				return 0, &StructuralError{NodeID: ns.ID, Err: fmt.Errorf("%w: %q", ErrCycle, cid)}
			case done:
				return 0, &StructuralError{NodeID: ns.ID, Err: fmt.Errorf("%w: %q", ErrSharedChild, cid)}
			}
			ci, err := visit(c, idx)
			if err != nil {
				return 0, err
			}
			children = append(children, ci)
		}
		t.nodes[idx].children = children
		state[spec] = done
		return idx, nil
	}

	if _, err := visit(rootSpec, -1); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) newNode(ns NodeSpec, parent int) Node {
	props, errs := NewProps(ns.Props)
	for _, err := range errs {
		var ke *keyError
		if errors.As(err, &ke) {
			t.warnings = append(t.warnings, &DirectiveWarning{NodeID: ns.ID, Key: ke.key, Value: ke.value, Err: ke.err})
		}
	}
	dir, warns := ParseDirective(ns.ID, props)
	t.warnings = append(t.warnings, warns...)

	kind := ns.Kind
	if kind == "" {
		kind = KindBox
	}
	return Node{
		ID:        ns.ID,
		Kind:      kind,
		Props:     props,
		Directive: dir,
		parent:    parent,
	}
}

// Warnings returns the directive and property warnings collected by Build.
func (t *Tree) Warnings() []error { return t.warnings }

// Node returns the node at index i.
func (t *Tree) Node(i int) *Node { return &t.nodes[i] }

// Lookup returns the index of the node with the given id.
func (t *Tree) Lookup(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// Walk calls fn for every node in paint order: depth first, parents before
// children, siblings in declared order.
func (t *Tree) Walk(fn func(i int, n *Node)) {
	for i := range t.nodes {
		fn(i, &t.nodes[i])
	}
}

func (t *Tree) Len() int                  { return len(t.nodes) }
func (t *Tree) Root() int                 { return 0 }
func (t *Tree) ID(i int) string           { return t.nodes[i].ID }
func (t *Tree) Children(i int) []int      { return t.nodes[i].children }
func (t *Tree) Directive(i int) Directive { return t.nodes[i].Directive }

// Measure returns the intrinsic content size of node i. Unknown kinds
// measure 0x0.
func (t *Tree) Measure(i int, availWidth, availHeight int) Size {
	n := &t.nodes[i]
	c, ok := t.registry.Lookup(n.Kind)
	if !ok {
		return Size{}
	}
	s := c.Measure(n.Props, availWidth, availHeight)
	return Size{Width: max(s.Width, 0), Height: max(s.Height, 0)}
}

// Inset returns the chrome the component of node i draws around its
// children.
func (t *Tree) Inset(i int) Edges {
	n := &t.nodes[i]
	c, ok := t.registry.Lookup(n.Kind)
	if !ok {
		return Edges{}
	}
	return c.Inset(n.Props)
}
