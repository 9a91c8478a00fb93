// Package document loads component trees from YAML files.
//
// A document holds an optional theme and a tree in one of two shapes. The
// nested shape puts the tree under root:
//
//	theme:
//	  preset: classic
//	  overrides: {selected_background: "#ffaf00"}
//	root:
//	  kind: panel
//	  props: {width: 30, height: 8, margin: centered}
//	  children:
//	    - kind: choice
//	      props: {label: "Continue?", choices: [[Yes, No]]}
//
// The flat shape lists nodes with id references and names the root by id:
//
//	root: main
//	nodes:
//	  - {id: main, kind: panel, children: [ask]}
//	  - {id: ask, kind: choice, props: {label: "Continue?"}}
//
// Nested nodes without an id get a random one.
package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/grindlemire/tuix"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmpty     = errors.New("document is empty")
	ErrNoRoot    = errors.New("document has no root")
	ErrMissingID = errors.New("node has no id")
)

// Document is a loaded tree plus its theme settings.
type Document struct {
	Snapshot tuix.Snapshot
	Theme    ThemeSpec
}

// ThemeSpec selects a preset theme and overrides some of its entries.
type ThemeSpec struct {
	Preset    string            `mapstructure:"preset"`
	Overrides map[string]string `mapstructure:"overrides"`
}

type documentDTO struct {
	Theme ThemeSpec `mapstructure:"theme"`
	Root  any       `mapstructure:"root"`
	Nodes []flatDTO `mapstructure:"nodes"`
}

type elementDTO struct {
	ID       string         `mapstructure:"id"`
	Kind     string         `mapstructure:"kind"`
	Type     string         `mapstructure:"type"`
	Props    map[string]any `mapstructure:"props"`
	Children []elementDTO   `mapstructure:"children"`
}

type flatDTO struct {
	ID       string         `mapstructure:"id"`
	Kind     string         `mapstructure:"kind"`
	Type     string         `mapstructure:"type"`
	Props    map[string]any `mapstructure:"props"`
	Children []string       `mapstructure:"children"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a YAML document. Structural problems of the tree itself
// (cycles, dangling children) are left to tuix.Build.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmpty
	}

	var dto documentDTO
	if err := decode(raw, &dto); err != nil {
		return nil, err
	}

	doc := &Document{Theme: dto.Theme}
	switch root := dto.Root.(type) {
	case map[string]any:
		var el elementDTO
		if err := decode(root, &el); err != nil {
			return nil, fmt.Errorf("root: %w", err)
		}
		if len(dto.Nodes) > 0 {
			return nil, errors.New("nested root and nodes list are exclusive")
		}
		doc.Snapshot = el.element().Snapshot()
	case string:
		if root == "" {
			return nil, ErrNoRoot
		}
		snap, err := flatSnapshot(root, dto.Nodes)
		if err != nil {
			return nil, err
		}
		doc.Snapshot = snap
	case nil:
		if len(dto.Nodes) == 0 {
			return nil, ErrNoRoot
		}
		snap, err := flatSnapshot(dto.Nodes[0].ID, dto.Nodes)
		if err != nil {
			return nil, err
		}
		doc.Snapshot = snap
	default:
		return nil, fmt.Errorf("root: want a node or an id, got %T", root)
	}
	return doc, nil
}

// ResolveTheme returns the preset theme with the overrides applied. An
// empty preset is the classic theme. Bad overrides are skipped and
// returned.
func (d *Document) ResolveTheme() (*tuix.Theme, []error) {
	base := tuix.ClassicTheme()
	if d.Theme.Preset != "" {
		t, err := tuix.LookupTheme(d.Theme.Preset)
		if err != nil {
			return base, []error{err}
		}
		base = t
	}
	if len(d.Theme.Overrides) == 0 {
		return base, nil
	}
	return base.Override(d.Theme.Overrides)
}

// Node returns the node with the given id, for callers that
// update props between draws.
func (d *Document) Node(id string) (*tuix.NodeSpec, bool) {
	for i := range d.Snapshot.Nodes {
		if d.Snapshot.Nodes[i].ID == id {
			return &d.Snapshot.Nodes[i], true
		}
	}
	return nil, false
}

func decode(in any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

func kindOf(kind, typ string) string {
	if kind != "" {
		return kind
	}
	return typ
}

func (e elementDTO) element() tuix.Element {
	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}
	el := tuix.El(id, kindOf(e.Kind, e.Type), e.Props)
	for _, ch := range e.Children {
		el.Children = append(el.Children, ch.element())
	}
	return el
}

func flatSnapshot(root string, nodes []flatDTO) (tuix.Snapshot, error) {
	snap := tuix.Snapshot{Root: root, Nodes: make([]tuix.NodeSpec, 0, len(nodes))}
	for i, n := range nodes {
		if n.ID == "" {
			return tuix.Snapshot{}, fmt.Errorf("nodes[%d]: %w", i, ErrMissingID)
		}
		snap.Nodes = append(snap.Nodes, tuix.NodeSpec{
			ID:       n.ID,
			Kind:     kindOf(n.Kind, n.Type),
			Children: n.Children,
			Props:    n.Props,
		})
	}
	return snap, nil
}
