package layout

// testTree is a minimal Tree used by the layout tests.
type testTree struct {
	nodes []testNode
}

type testNode struct {
	id       string
	children []int
	dir      Directive
	content  Size
	inset    Edges
}

func newTestTree(rootID string, d Directive) *testTree {
	return &testTree{nodes: []testNode{{id: rootID, dir: d}}}
}

// add appends a child to parent and returns its index.
func (t *testTree) add(parent int, id string, d Directive) int {
	t.nodes = append(t.nodes, testNode{id: id, dir: d})
	idx := len(t.nodes) - 1
	t.nodes[parent].children = append(t.nodes[parent].children, idx)
	return idx
}

func (t *testTree) Len() int                  { return len(t.nodes) }
func (t *testTree) Root() int                 { return 0 }
func (t *testTree) ID(i int) string           { return t.nodes[i].id }
func (t *testTree) Children(i int) []int      { return t.nodes[i].children }
func (t *testTree) Directive(i int) Directive { return t.nodes[i].dir }
func (t *testTree) Inset(i int) Edges         { return t.nodes[i].inset }

func (t *testTree) Measure(i int, availWidth, availHeight int) Size {
	return t.nodes[i].content
}

func fixedDir(w, h int) Directive {
	d := DefaultDirective()
	d.Width = Fixed(w)
	d.Height = Fixed(h)
	return d
}

func centeredDir(w, h int) Directive {
	d := fixedDir(w, h)
	d.Margin.Top = Centered()
	d.Margin.Left = Centered()
	return d
}

func mustCalculate(t interface {
	Helper()
	Fatalf(string, ...any)
}, tree Tree, viewport Rect) *Result {
	t.Helper()
	res, err := Calculate(tree, viewport)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	return res
}
