package tuix

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, w, h int) (*TcellTerminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := NewTcellTerminalWithScreen(sim)
	if err != nil {
		t.Fatalf("NewTcellTerminalWithScreen() error = %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(func() { term.Close() })
	return term, sim
}

// simRow returns row y of the simulated screen as text.
func simRow(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var out []byte
	for x := 0; x < w; x++ {
		b := cells[y*w+x].Bytes
		if len(b) == 0 {
			b = []byte{' '}
		}
		out = append(out, b...)
	}
	return string(out)
}

func TestTcellTerminal_Flush(t *testing.T) {
	term, sim := newSimTerminal(t, 5, 2)

	if w, h, err := term.Size(); w != 5 || h != 2 || err != nil {
		t.Fatalf("Size() = (%d, %d, %v), want (5, 2, nil)", w, h, err)
	}

	style := NewStyle().Foreground(RGBColor(255, 0, 0)).Bold()
	err := term.Flush([]CellChange{
		{X: 0, Y: 0, Cell: NewCell('a', style)},
		{X: 1, Y: 0, Cell: NewCell('世', NewStyle())},
		{X: 2, Y: 0, Cell: NewCellWithWidth(0, NewStyle(), 0)},
		{X: 3, Y: 1, Cell: Cell{Width: 1}},
	})
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	r, _, st, _ := sim.GetContent(0, 0)
	if r != 'a' {
		t.Errorf("GetContent(0,0) = %q, want a", r)
	}
	fg, _, attrs := st.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("fg = %v, want red", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute lost")
	}
	if r, _, _, _ := sim.GetContent(1, 0); r != '世' {
		t.Errorf("GetContent(1,0) = %q, want 世", r)
	}
	if r, _, _, _ := sim.GetContent(3, 1); r != ' ' {
		t.Errorf("GetContent(3,1) = %q, want space", r)
	}
}

func TestTcellTerminal_Engine(t *testing.T) {
	term, sim := newSimTerminal(t, 8, 2)
	e := NewEngine(term)

	if _, err := e.Draw(context.Background(), helloSnapshot("hello")); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got := simRow(sim, 0); got != "hello   " {
		t.Errorf("row 0 = %q, want %q", got, "hello   ")
	}

	sim.SetSize(4, 1)
	rep, err := e.Draw(context.Background(), helloSnapshot("hello"))
	if err != nil {
		t.Fatalf("Draw() after resize error = %v", err)
	}
	if !rep.FullRepaint || len(rep.Changes) != 4 {
		t.Errorf("resize draw: FullRepaint = %v, changes = %d, want true, 4", rep.FullRepaint, len(rep.Changes))
	}
	if got := simRow(sim, 0); got != "hell" {
		t.Errorf("row 0 = %q, want %q", got, "hell")
	}
}

func TestTcellTerminal_Clear(t *testing.T) {
	term, sim := newSimTerminal(t, 3, 1)
	term.Flush([]CellChange{{X: 0, Y: 0, Cell: NewCell('x', NewStyle())}})

	if err := term.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	sim.Show()
	if got := simRow(sim, 0); got != "   " {
		t.Errorf("row 0 after Clear = %q, want blank", got)
	}
}

func TestTcellColor(t *testing.T) {
	type tc struct {
		in   Color
		want tcell.Color
	}

	tests := map[string]tc{
		"default": {in: DefaultColor(), want: tcell.ColorDefault},
		"basic":   {in: ANSIColor(3), want: tcell.PaletteColor(3)},
		"indexed": {in: ANSIColor(200), want: tcell.PaletteColor(200)},
		"rgb":     {in: RGBColor(1, 2, 3), want: tcell.NewRGBColor(1, 2, 3)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tcellColor(tt.in); got != tt.want {
				t.Errorf("tcellColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
