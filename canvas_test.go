package tuix

import (
	"strings"
	"testing"
)

func TestCanvas_Clipping(t *testing.T) {
	type tc struct {
		bounds         Rect
		clip           Rect
		x, y           int
		wantWritten    bool
		wantViolations int
	}

	tests := map[string]tc{
		"inside": {
			bounds: NewRect(1, 1, 4, 2), clip: NewRect(1, 1, 4, 2),
			x: 2, y: 1, wantWritten: true,
		},
		"outside bounds": {
			bounds: NewRect(1, 1, 4, 2), clip: NewRect(1, 1, 4, 2),
			x: 0, y: 0, wantViolations: 1,
		},
		"clipped by ancestor": {
			bounds: NewRect(0, 0, 6, 3), clip: NewRect(0, 0, 3, 3),
			x: 4, y: 1,
		},
		"outside viewport": {
			bounds: NewRect(4, 0, 4, 1), clip: NewRect(4, 0, 4, 1),
			x: 7, y: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewFrameBuffer(6, 3)
			c := newCanvas(buf, tt.bounds, tt.clip, ClassicTheme())
			c.Set(tt.x, tt.y, 'x', NewStyle())

			written := buf.Cell(tt.x, tt.y).Rune == 'x'
			if written != tt.wantWritten {
				t.Errorf("written = %v, want %v", written, tt.wantWritten)
			}
			if c.Violations() != tt.wantViolations {
				t.Errorf("Violations() = %d, want %d", c.Violations(), tt.wantViolations)
			}
		})
	}
}

func TestCanvas_ClipIsIntersectedWithBuffer(t *testing.T) {
	buf := NewFrameBuffer(5, 2)
	c := newCanvas(buf, NewRect(3, 0, 10, 2), NewRect(3, 0, 10, 2), nil)
	if got, want := c.Clip(), NewRect(3, 0, 2, 2); got != want {
		t.Errorf("Clip() = %v, want %v", got, want)
	}
	if got, want := c.Bounds(), NewRect(3, 0, 10, 2); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestCanvas_SetString(t *testing.T) {
	type tc struct {
		s         string
		clipWidth int
		wantWidth int
		want      string
	}

	tests := map[string]tc{
		"ascii":          {s: "abc", clipWidth: 6, wantWidth: 3, want: "abc"},
		"clipped":        {s: "abcdef", clipWidth: 4, wantWidth: 6, want: "abcd"},
		"wide":           {s: "世界", clipWidth: 6, wantWidth: 4, want: "世界"},
		"wide at edge":   {s: "a世", clipWidth: 2, wantWidth: 3, want: "a"},
		"combining mark": {s: "e\u0301x", clipWidth: 6, wantWidth: 2, want: "ex"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewFrameBuffer(6, 1)
			clip := NewRect(0, 0, tt.clipWidth, 1)
			c := newCanvas(buf, NewRect(0, 0, 6, 1), clip, nil)

			if got := c.SetString(0, 0, tt.s, NewStyle()); got != tt.wantWidth {
				t.Errorf("SetString() = %d, want %d", got, tt.wantWidth)
			}
			if got := buf.StringTrimmed(); got != tt.want {
				t.Errorf("buffer = %q, want %q", got, tt.want)
			}
			if c.Violations() != 0 {
				t.Errorf("Violations() = %d, want 0", c.Violations())
			}
		})
	}
}

func TestCanvas_Fill(t *testing.T) {
	buf := NewFrameBuffer(4, 3)
	c := newCanvas(buf, buf.Rect(), buf.Rect(), nil)
	c.Fill(NewRect(1, 1, 2, 2), '#', NewStyle())

	if got, want := buf.String(), "    \n ## \n ## "; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestCanvas_FillOutsideBounds(t *testing.T) {
	buf := NewFrameBuffer(4, 3)
	c := newCanvas(buf, buf.Rect(), buf.Rect(), nil)
	c.Fill(NewRect(-5, -5, 1000, 1000), '#', NewStyle())

	if got, want := buf.String(), "####\n####\n####"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if got, want := c.Violations(), 1000*1000-12; got != want {
		t.Errorf("Violations() = %d, want %d", got, want)
	}
}

func TestCanvas_FillWidePhase(t *testing.T) {
	buf := NewFrameBuffer(6, 1)
	c := newCanvas(buf, NewRect(0, 0, 6, 1), NewRect(1, 0, 5, 1), nil)
	c.Fill(NewRect(0, 0, 6, 1), '世', NewStyle())

	// The glyph starting at column 0 is clipped; the next ones stay on
	// even columns.
	if got, want := buf.StringTrimmed(), "  世世"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestCanvas_BoxLargerThanClip(t *testing.T) {
	buf := NewFrameBuffer(4, 3)
	big := NewRect(0, 0, 50000, 50000)
	c := newCanvas(buf, big, buf.Rect(), nil)
	c.Box(big, BorderSingle, NewStyle())

	if got, want := buf.StringTrimmed(), "┌───\n│\n│"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if c.Violations() != 0 {
		t.Errorf("Violations() = %d, want 0", c.Violations())
	}
}

func TestCanvas_Box(t *testing.T) {
	type tc struct {
		rect   Rect
		border BorderStyle
		want   string
	}

	tests := map[string]tc{
		"thick": {
			rect: NewRect(0, 0, 4, 3), border: BorderThick,
			want: "┏━━┓\n┃  ┃\n┗━━┛",
		},
		"rounded": {
			rect: NewRect(0, 0, 3, 2), border: BorderRounded,
			want: "╭─╮\n╰─╯\n",
		},
		"too small": {
			rect: NewRect(0, 0, 1, 3), border: BorderSingle,
			want: "\n\n",
		},
		"none": {
			rect: NewRect(0, 0, 4, 3), border: BorderNone,
			want: "\n\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewFrameBuffer(4, 3)
			c := newCanvas(buf, buf.Rect(), buf.Rect(), nil)
			c.Box(tt.rect, tt.border, NewStyle())
			if got := buf.StringTrimmed(); got != tt.want {
				t.Errorf("buffer =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestCanvas_Title(t *testing.T) {
	type tc struct {
		width int
		title string
		want  string
	}

	tests := map[string]tc{
		"centered":  {width: 10, title: "ab", want: "┌── ab ──┐"},
		"truncated": {width: 8, title: "abcdef", want: "┌ abcd…┐"},
		"no room":   {width: 4, title: "ab", want: "┌──┐"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewFrameBuffer(tt.width, 2)
			c := newCanvas(buf, buf.Rect(), buf.Rect(), nil)
			r := buf.Rect()
			c.Box(r, BorderSingle, NewStyle())
			c.Title(r, tt.title, NewStyle())

			top := strings.SplitN(buf.String(), "\n", 2)[0]
			if top != tt.want {
				t.Errorf("top border = %q, want %q", top, tt.want)
			}
		})
	}
}
