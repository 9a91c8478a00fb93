package tuix

import (
	"testing"
)

func TestNewFrameBuffer(t *testing.T) {
	type tc struct {
		width, height int
		wantW, wantH  int
	}

	tests := map[string]tc{
		"normal":   {width: 5, height: 3, wantW: 5, wantH: 3},
		"zero":     {width: 0, height: 0, wantW: 0, wantH: 0},
		"negative": {width: -2, height: 4, wantW: 0, wantH: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewFrameBuffer(tt.width, tt.height)
			w, h := b.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if !b.Cell(x, y).IsBlank() {
						t.Fatalf("Cell(%d, %d) = %+v, want blank", x, y, b.Cell(x, y))
					}
				}
			}
		})
	}
}

func TestFrameBuffer_OutOfBounds(t *testing.T) {
	b := NewFrameBuffer(3, 2)
	b.SetCell(-1, 0, NewCell('x', Style{}))
	b.SetCell(3, 0, NewCell('x', Style{}))
	b.SetRune(0, 2, 'x', Style{}, 3)

	if got := b.StringTrimmed(); got != "\n" {
		t.Errorf("StringTrimmed() = %q, want blank grid", got)
	}
	if got := b.Cell(5, 5); got != (Cell{}) {
		t.Errorf("Cell(5, 5) = %+v, want zero cell", got)
	}
}

func TestFrameBuffer_SetRune_Wide(t *testing.T) {
	type tc struct {
		setup    func(b *FrameBuffer)
		x        int
		r        rune
		limit    int
		want     string
		wantCont int // x of the expected continuation cell, -1 for none
	}

	tests := map[string]tc{
		"wide fits": {
			x: 1, r: '世', limit: 5, want: " 世", wantCont: 2,
		},
		"wide at limit becomes space": {
			x: 4, r: '世', limit: 5, want: "", wantCont: -1,
		},
		"wide before clip limit becomes space": {
			x: 2, r: '世', limit: 3, want: "", wantCont: -1,
		},
		"narrow over wide clears both halves": {
			setup: func(b *FrameBuffer) { b.SetRune(1, 0, '世', Style{}, 5) },
			x:     2, r: 'a', limit: 5, want: "  a", wantCont: -1,
		},
		"narrow over lead clears continuation": {
			setup: func(b *FrameBuffer) { b.SetRune(1, 0, '世', Style{}, 5) },
			x:     1, r: 'a', limit: 5, want: " a", wantCont: -1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewFrameBuffer(5, 1)
			if tt.setup != nil {
				tt.setup(b)
			}
			b.SetRune(tt.x, 0, tt.r, Style{}, tt.limit)

			if got := b.StringTrimmed(); got != tt.want {
				t.Errorf("StringTrimmed() = %q, want %q", got, tt.want)
			}
			for x := 0; x < 5; x++ {
				cont := b.Cell(x, 0).IsContinuation()
				if cont != (x == tt.wantCont) {
					t.Errorf("Cell(%d).IsContinuation() = %v", x, cont)
				}
			}
		})
	}
}

func TestFrameBuffer_Diff(t *testing.T) {
	type tc struct {
		paint       func(b *FrameBuffer)
		prev        func() *FrameBuffer
		wantChanges int
	}

	bold := Style{}.Bold()

	tests := map[string]tc{
		"identical": {
			paint:       func(b *FrameBuffer) { b.SetRune(1, 1, 'a', Style{}, 4) },
			prev:        func() *FrameBuffer { p := NewFrameBuffer(4, 3); p.SetRune(1, 1, 'a', Style{}, 4); return p },
			wantChanges: 0,
		},
		"blank previous yields the non-blank cells": {
			paint: func(b *FrameBuffer) {
				b.SetRune(0, 0, 'a', Style{}, 4)
				b.SetRune(3, 2, 'b', Style{}, 4)
			},
			prev:        func() *FrameBuffer { return NewFrameBuffer(4, 3) },
			wantChanges: 2,
		},
		"style only change": {
			paint:       func(b *FrameBuffer) { b.SetRune(0, 0, 'a', bold, 4) },
			prev:        func() *FrameBuffer { p := NewFrameBuffer(4, 3); p.SetRune(0, 0, 'a', Style{}, 4); return p },
			wantChanges: 1,
		},
		"nil previous is full": {
			paint:       func(b *FrameBuffer) {},
			prev:        func() *FrameBuffer { return nil },
			wantChanges: 12,
		},
		"different size is full": {
			paint:       func(b *FrameBuffer) {},
			prev:        func() *FrameBuffer { return NewFrameBuffer(2, 2) },
			wantChanges: 12,
		},
		"invalidated previous is full": {
			paint:       func(b *FrameBuffer) {},
			prev:        func() *FrameBuffer { p := NewFrameBuffer(4, 3); p.Invalidate(); return p },
			wantChanges: 12,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewFrameBuffer(4, 3)
			tt.paint(b)
			changes := b.Diff(tt.prev())
			if len(changes) != tt.wantChanges {
				t.Errorf("Diff() returned %d changes, want %d", len(changes), tt.wantChanges)
			}
		})
	}
}

func TestFrameBuffer_Diff_RowMajorOrder(t *testing.T) {
	b := NewFrameBuffer(3, 3)
	b.SetRune(2, 2, 'I', Style{}, 3)
	b.SetRune(0, 0, 'A', Style{}, 3)
	b.SetRune(1, 1, 'E', Style{}, 3)

	changes := b.Diff(NewFrameBuffer(3, 3))
	want := []struct {
		x, y int
		r    rune
	}{{0, 0, 'A'}, {1, 1, 'E'}, {2, 2, 'I'}}

	if len(changes) != len(want) {
		t.Fatalf("Diff() returned %d changes, want %d", len(changes), len(want))
	}
	for i, w := range want {
		if changes[i].X != w.x || changes[i].Y != w.y || changes[i].Cell.Rune != w.r {
			t.Errorf("change %d = (%d, %d, %q), want (%d, %d, %q)",
				i, changes[i].X, changes[i].Y, changes[i].Cell.Rune, w.x, w.y, w.r)
		}
	}
}

func TestFrameBuffer_Diff_RoundTrip(t *testing.T) {
	prev := NewFrameBuffer(6, 2)
	prev.SetRune(0, 0, 'x', Style{}, 6)
	prev.SetRune(2, 1, '世', Style{}, 6)

	cur := NewFrameBuffer(6, 2)
	cur.SetRune(1, 0, 'y', Style{}.Underline(), 6)
	cur.SetRune(3, 1, '界', Style{}, 6)

	screen := NewFrameBuffer(6, 2)
	screen.Apply(prev.Diff(NewFrameBuffer(6, 2)))
	screen.Apply(cur.Diff(prev))

	if got, want := screen.String(), cur.String(); got != want {
		t.Errorf("applied diff = %q, want %q", got, want)
	}
	if len(screen.Diff(cur)) != 0 {
		t.Error("screen differs from current after applying the diff")
	}
}

func TestFrameBuffer_Valid(t *testing.T) {
	b := NewFrameBuffer(2, 2)
	if !b.Valid() {
		t.Error("new buffer is not valid")
	}
	b.Invalidate()
	if b.Valid() {
		t.Error("invalidated buffer is valid")
	}
	b.Clear()
	if !b.Valid() {
		t.Error("cleared buffer is not valid")
	}
}

func TestFrameBuffer_String(t *testing.T) {
	b := NewFrameBuffer(4, 2)
	b.SetRune(0, 0, 'h', Style{}, 4)
	b.SetRune(1, 0, 'i', Style{}, 4)
	b.SetRune(0, 1, '世', Style{}, 4)

	if got, want := b.String(), "hi  \n世  "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := b.StringTrimmed(), "hi\n世"; got != want {
		t.Errorf("StringTrimmed() = %q, want %q", got, want)
	}
}
