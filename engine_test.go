package tuix

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func helloSnapshot(text string) Snapshot {
	return screen(El("msg", KindLabel, map[string]any{"text": text}))
}

func TestEngine_CenteredScenario(t *testing.T) {
	term := NewMockTerminal(10, 4)
	e := NewEngine(term)

	snap := El("dialog", KindLabel, map[string]any{
		"text":        "abcd",
		"width":       4,
		"height":      1,
		"margin_top":  "centered",
		"margin_left": "centered",
	}).Snapshot()

	rep, err := e.Draw(context.Background(), snap)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if rep.Viewport != NewRect(0, 0, 10, 4) {
		t.Errorf("Viewport = %v, want 0,0+10x4", rep.Viewport)
	}
	if got, want := term.StringTrimmed(), "\n   abcd\n\n"; got != want {
		t.Errorf("screen = %q, want %q", got, want)
	}
}

func TestEngine_OversizedNodes(t *testing.T) {
	type tc struct {
		kind      string
		wantFrame string
	}

	tests := map[string]tc{
		"panel": {
			kind:      KindPanel,
			wantFrame: "┌─────────\n│\n│\n│",
		},
		"choice":       {kind: KindChoice},
		"progress bar": {kind: KindProgressBar},
		"text input":   {kind: KindTextInput},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term := NewMockTerminal(10, 4)
			e := NewEngine(term)
			snap := screen(El("big", tt.kind, map[string]any{"width": 40000, "height": 40000}))

			start := time.Now()
			if _, err := e.Draw(context.Background(), snap); err != nil {
				t.Fatalf("Draw() error = %v", err)
			}
			if d := time.Since(start); d > time.Second {
				t.Errorf("Draw() of 10x4 viewport took %v", d)
			}
			if tt.wantFrame != "" {
				if got := term.StringTrimmed(); got != tt.wantFrame {
					t.Errorf("screen = %q, want %q", got, tt.wantFrame)
				}
			}
		})
	}
}

func TestEngine_IncrementalDraws(t *testing.T) {
	term := NewMockTerminal(10, 4)
	e := NewEngine(term)
	ctx := context.Background()

	rep, err := e.Draw(ctx, helloSnapshot("hello"))
	if err != nil {
		t.Fatalf("first Draw() error = %v", err)
	}
	if !rep.FullRepaint {
		t.Error("first draw is not a full repaint")
	}
	if len(rep.Changes) != 40 {
		t.Errorf("first draw changed %d cells, want 40", len(rep.Changes))
	}
	if term.Clears() != 1 {
		t.Errorf("Clears() = %d, want 1", term.Clears())
	}

	rep, err = e.Draw(ctx, helloSnapshot("hello"))
	if err != nil {
		t.Fatalf("second Draw() error = %v", err)
	}
	if rep.FullRepaint || len(rep.Changes) != 0 {
		t.Errorf("unchanged draw: FullRepaint = %v, changes = %d, want false, 0", rep.FullRepaint, len(rep.Changes))
	}

	rep, err = e.Draw(ctx, helloSnapshot("help"))
	if err != nil {
		t.Fatalf("third Draw() error = %v", err)
	}
	want := []CellChange{
		{X: 3, Y: 0, Cell: NewCell('p', Style{Fg: ClassicTheme().Text})},
		{X: 4, Y: 0, Cell: BlankCell()},
	}
	if len(rep.Changes) != len(want) {
		t.Fatalf("changes = %v, want %v", rep.Changes, want)
	}
	for i := range want {
		if rep.Changes[i].X != want[i].X || rep.Changes[i].Y != want[i].Y || !rep.Changes[i].Cell.Equal(want[i].Cell) {
			t.Errorf("change %d = %+v, want %+v", i, rep.Changes[i], want[i])
		}
	}
	if got := term.StringTrimmed(); got != "help\n\n\n" {
		t.Errorf("screen = %q, want %q", got, "help\n\n\n")
	}
	if got := len(term.Flushes()); got != 3 {
		t.Errorf("flushes = %d, want 3", got)
	}
	if term.Clears() != 1 {
		t.Errorf("Clears() = %d, want 1", term.Clears())
	}
}

func TestEngine_Resize(t *testing.T) {
	term := NewMockTerminal(10, 4)
	e := NewEngine(term)
	ctx := context.Background()

	if _, err := e.Draw(ctx, helloSnapshot("hello")); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	term.Resize(6, 2)

	rep, err := e.Draw(ctx, helloSnapshot("hello"))
	if err != nil {
		t.Fatalf("Draw() after resize error = %v", err)
	}
	if !rep.FullRepaint {
		t.Error("draw after resize is not a full repaint")
	}
	if len(rep.Changes) != 12 {
		t.Errorf("changes = %d, want 12", len(rep.Changes))
	}
	if rep.Viewport != NewRect(0, 0, 6, 2) {
		t.Errorf("Viewport = %v, want 0,0+6x2", rep.Viewport)
	}
	for _, ch := range rep.Changes {
		if ch.X >= 6 || ch.Y >= 2 {
			t.Errorf("change %+v outside the new viewport", ch)
		}
	}
	if term.Clears() != 2 {
		t.Errorf("Clears() = %d, want 2", term.Clears())
	}
	if got := term.StringTrimmed(); got != "hello\n" {
		t.Errorf("screen = %q, want %q", got, "hello\n")
	}
}

func TestEngine_StructuralError(t *testing.T) {
	term := NewMockTerminal(10, 4)
	e := NewEngine(term)
	ctx := context.Background()

	if _, err := e.Draw(ctx, helloSnapshot("hello")); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	bad := Snapshot{Root: "a", Nodes: []NodeSpec{{ID: "a", Children: []string{"a"}}}}
	_, err := e.Draw(ctx, bad)
	if !IsStructural(err) || !errors.Is(err, ErrCycle) {
		t.Fatalf("Draw() error = %v, want structural cycle", err)
	}
	if got := len(term.Flushes()); got != 1 {
		t.Errorf("flushes = %d, want 1", got)
	}
	if got := term.StringTrimmed(); got != "hello\n\n\n" {
		t.Errorf("screen = %q, want it untouched", got)
	}

	rep, err := e.Draw(ctx, helloSnapshot("hello"))
	if err != nil {
		t.Fatalf("Draw() after structural error = %v", err)
	}
	if len(rep.Changes) != 0 {
		t.Errorf("changes = %d after structural error, want 0", len(rep.Changes))
	}
}

func TestEngine_FlushFailure(t *testing.T) {
	term := NewMockTerminal(10, 4)
	e := NewEngine(term)
	ctx := context.Background()

	if _, err := e.Draw(ctx, helloSnapshot("hello")); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	term.SetFailing(true)
	_, err := e.Draw(ctx, helloSnapshot("world"))
	if !errors.Is(err, ErrMockFlush) {
		t.Fatalf("Draw() error = %v, want ErrMockFlush", err)
	}
	if IsStructural(err) {
		t.Error("flush failure reported as structural")
	}

	term.SetFailing(false)
	rep, err := e.Draw(ctx, helloSnapshot("world"))
	if err != nil {
		t.Fatalf("Draw() after recovery error = %v", err)
	}
	if !rep.FullRepaint || len(rep.Changes) != 40 {
		t.Errorf("recovery draw: FullRepaint = %v, changes = %d, want true, 40", rep.FullRepaint, len(rep.Changes))
	}
	if got := term.StringTrimmed(); got != "world\n\n\n" {
		t.Errorf("screen = %q, want %q", got, "world\n\n\n")
	}
}

func TestEngine_ViewportErrors(t *testing.T) {
	type tc struct {
		setup func(m *MockTerminal)
		want  error
	}

	sizeErr := errors.New("no tty")
	tests := map[string]tc{
		"size error": {
			setup: func(m *MockTerminal) { m.SetSizeError(sizeErr) },
			want:  sizeErr,
		},
		"zero width": {
			setup: func(m *MockTerminal) { m.Resize(0, 4) },
			want:  ErrInvalidViewport,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term := NewMockTerminal(10, 4)
			tt.setup(term)
			_, err := NewEngine(term).Draw(context.Background(), helloSnapshot("x"))
			if !errors.Is(err, tt.want) {
				t.Errorf("Draw() error = %v, want %v", err, tt.want)
			}
			if len(term.Flushes()) != 0 {
				t.Error("failed draw flushed")
			}
		})
	}
}

func TestEngine_CanceledContext(t *testing.T) {
	term := NewMockTerminal(10, 4)
	e := NewEngine(term)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Draw(ctx, helloSnapshot("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("Draw() error = %v, want context.Canceled", err)
	}
	if len(term.Flushes()) != 0 {
		t.Error("canceled draw flushed")
	}
}

func TestEngine_WarningsDoNotFail(t *testing.T) {
	term := NewMockTerminal(10, 4)
	e := NewEngine(term)

	snap := screen(
		El("msg", KindLabel, map[string]any{"text": "hi", "width": "wide"}),
		El("odd", "sparkline", map[string]any{"width": 2, "height": 1}),
	)
	rep, err := e.Draw(context.Background(), snap)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if len(rep.Warnings) != 2 {
		t.Fatalf("Warnings = %v, want 2", rep.Warnings)
	}
	var dw *DirectiveWarning
	var pw *PaintWarning
	if !errors.As(rep.Warnings[0], &dw) || !errors.As(rep.Warnings[1], &pw) {
		t.Errorf("Warnings = %v, want a directive then a paint warning", rep.Warnings)
	}
	if got := term.StringTrimmed(); !strings.HasPrefix(got, "hi") {
		t.Errorf("screen = %q, want hi", got)
	}
}

func TestEngine_Observer(t *testing.T) {
	term := NewMockTerminal(10, 4)
	var (
		reports []Report
		errs    []error
	)
	e := NewEngine(term, WithObserver(ObserverFunc(func(r Report, err error) {
		reports = append(reports, r)
		errs = append(errs, err)
	})))
	ctx := context.Background()

	e.Draw(ctx, helloSnapshot("hello"))
	e.Draw(ctx, Snapshot{Root: "missing"})

	if len(reports) != 2 {
		t.Fatalf("observer called %d times, want 2", len(reports))
	}
	if errs[0] != nil || !reports[0].FullRepaint {
		t.Errorf("first observation = %+v, %v", reports[0], errs[0])
	}
	if !errors.Is(errs[1], ErrMissingRoot) {
		t.Errorf("second observation error = %v, want ErrMissingRoot", errs[1])
	}
	if reports[0].Duration <= 0 {
		t.Errorf("Duration = %v, want > 0", reports[0].Duration)
	}
}

func TestEngine_Frame(t *testing.T) {
	term := NewMockTerminal(6, 2)
	e := NewEngine(term)

	if got := e.Frame(); got != "" {
		t.Errorf("Frame() before any draw = %q, want empty", got)
	}
	if _, err := e.Draw(context.Background(), helloSnapshot("hi")); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if got, want := e.Frame(), "hi    \n      "; got != want {
		t.Errorf("Frame() = %q, want %q", got, want)
	}

	e.Invalidate()
	if got := e.Frame(); got != "" {
		t.Errorf("Frame() after Invalidate = %q, want empty", got)
	}
	rep, err := e.Draw(context.Background(), helloSnapshot("hi"))
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if !rep.FullRepaint {
		t.Error("draw after Invalidate is not a full repaint")
	}
}

func TestEngine_Options(t *testing.T) {
	reg := NewRegistry()
	reg.Register("dot", ComponentFuncs{
		MeasureFunc: func(Props, int, int) Size { return Size{Width: 1, Height: 1} },
		PaintFunc: func(_ Props, _ Rect, c *Canvas) {
			c.Set(c.Bounds().X, c.Bounds().Y, '•', Style{Fg: c.Theme().Text})
		},
	})
	theme := ClassicTheme()
	theme.Text = RGBColor(1, 2, 3)

	term := NewMockTerminal(3, 1)
	e := NewEngine(term, WithRegistry(reg), WithTheme(theme), WithLogger(nil))
	if e.Registry() != reg {
		t.Fatal("Registry() is not the configured registry")
	}

	if _, err := e.Draw(context.Background(), El("d", "dot", nil).Snapshot()); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	cell := term.Cell(0, 0)
	if cell.Rune != '•' || !cell.Style.Fg.Equal(theme.Text) {
		t.Errorf("Cell(0,0) = %+v, want themed dot", cell)
	}
}

func TestEngine_ConcurrentDraws(t *testing.T) {
	term := NewMockTerminal(10, 4)
	e := NewEngine(term)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := e.Draw(context.Background(), helloSnapshot("hello")); err != nil {
				t.Errorf("Draw() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if got := len(term.Flushes()); got != 8 {
		t.Errorf("flushes = %d, want 8", got)
	}
	if term.Clears() != 1 {
		t.Errorf("Clears() = %d, want 1", term.Clears())
	}
}
