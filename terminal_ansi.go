package tuix

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Size when the output is not a terminal and
// no fixed size was configured.
var ErrNotTerminal = errors.New("output is not a terminal")

// ANSITerminal is a Transport that writes ANSI escape sequences. It works
// with any terminal emulator and, given a fixed size, with plain writers.
type ANSITerminal struct {
	out  io.Writer
	in   *os.File
	caps Capabilities

	outFd   int
	isTTY   bool
	fixedW  int
	fixedH  int
	syncOut bool

	buf       bytes.Buffer
	lastStyle Style
	styleSet  bool

	rawState  *term.State
	altScreen bool
}

// ANSIOption configures an ANSITerminal.
type ANSIOption func(*ANSITerminal)

// WithFixedSize makes Size report w x h instead of querying the terminal.
func WithFixedSize(w, h int) ANSIOption {
	return func(t *ANSITerminal) {
		t.fixedW, t.fixedH = w, h
	}
}

// WithCapabilities overrides detected capabilities.
func WithCapabilities(c Capabilities) ANSIOption {
	return func(t *ANSITerminal) {
		t.caps = c
	}
}

// WithInput sets the file put into raw mode by EnterRawMode.
func WithInput(f *os.File) ANSIOption {
	return func(t *ANSITerminal) {
		t.in = f
	}
}

// WithSynchronizedOutput wraps every flush in a synchronized update so the
// terminal shows the frame at once.
func WithSynchronizedOutput(on bool) ANSIOption {
	return func(t *ANSITerminal) {
		t.syncOut = on
	}
}

// NewANSITerminal creates a terminal writing to out with capabilities
// detected from the environment.
func NewANSITerminal(out io.Writer, opts ...ANSIOption) *ANSITerminal {
	t := &ANSITerminal{
		out:     out,
		caps:    DetectCapabilities(out),
		outFd:   -1,
		syncOut: true,
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
		t.isTTY = term.IsTerminal(t.outFd)
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Caps returns the terminal's capabilities.
func (t *ANSITerminal) Caps() Capabilities {
	return t.caps
}

// Size returns the fixed size if one was configured, the terminal size
// otherwise.
func (t *ANSITerminal) Size() (int, int, error) {
	if t.fixedW > 0 && t.fixedH > 0 {
		return t.fixedW, t.fixedH, nil
	}
	if !t.isTTY {
		return 0, 0, ErrNotTerminal
	}
	w, h, err := term.GetSize(t.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return w, h, nil
}

// Flush writes the changes in one write. Cursor moves are skipped for
// cells that follow each other on a row and style sequences are only
// emitted when the style changes.
func (t *ANSITerminal) Flush(changes []CellChange) error {
	if len(changes) == 0 {
		return nil
	}

	t.buf.Reset()
	if t.syncOut {
		t.buf.WriteString(ansi.SetModeSynchronizedOutput)
	}

	lastX, lastY := -1, -1
	for _, ch := range changes {
		// The primary cell already advanced the cursor over its
		// continuation.
		if ch.Cell.IsContinuation() {
			continue
		}
		if ch.Y != lastY || ch.X != lastX+1 {
			t.buf.WriteString(ansi.CursorPosition(ch.X+1, ch.Y+1))
		}

		if !t.styleSet || !ch.Cell.Style.Equal(t.lastStyle) {
			t.buf.WriteString(t.sgr(ch.Cell.Style))
			t.lastStyle = ch.Cell.Style
			t.styleSet = true
		}

		if ch.Cell.Rune > 0 {
			t.buf.WriteRune(ch.Cell.Rune)
		} else {
			t.buf.WriteByte(' ')
		}

		lastX, lastY = ch.X+max(int(ch.Cell.Width), 1)-1, ch.Y
	}

	if t.syncOut {
		t.buf.WriteString(ansi.ResetModeSynchronizedOutput)
	}
	return t.write(t.buf.Bytes())
}

// sgr returns the full select-graphic-rendition sequence for s, starting
// from a reset so no attribute leaks from the previous cell.
func (t *ANSITerminal) sgr(s Style) string {
	st := ansi.Style{}.Reset()
	if s.HasAttr(AttrBold) {
		st = st.Bold()
	}
	if s.HasAttr(AttrDim) {
		st = st.Faint()
	}
	if s.HasAttr(AttrItalic) {
		st = st.Italic(true)
	}
	if s.HasAttr(AttrUnderline) {
		st = st.Underline(true)
	}
	if s.HasAttr(AttrBlink) {
		st = st.Blink(true)
	}
	if s.HasAttr(AttrReverse) {
		st = st.Reverse(true)
	}
	if s.HasAttr(AttrStrikethrough) {
		st = st.Strikethrough(true)
	}
	if c := ansiColor(t.caps.EffectiveColor(s.Fg)); c != nil {
		st = st.ForegroundColor(c)
	}
	if c := ansiColor(t.caps.EffectiveColor(s.Bg)); c != nil {
		st = st.BackgroundColor(c)
	}
	return st.String()
}

func ansiColor(c Color) ansi.Color {
	if idx, ok := c.Index(); ok {
		if idx < 16 {
			return ansi.BasicColor(idx)
		}
		return ansi.IndexedColor(idx)
	}
	if r, g, b, ok := c.RGB(); ok {
		return ansi.RGBColor{R: r, G: g, B: b}
	}
	return nil
}

// Clear blanks the screen and homes the cursor.
func (t *ANSITerminal) Clear() error {
	t.styleSet = false
	return t.write([]byte(ansi.ResetStyle + ansi.EraseEntireScreen + ansi.CursorHomePosition))
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() error {
	return t.write([]byte(ansi.HideCursor))
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() error {
	return t.write([]byte(ansi.ShowCursor))
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() error {
	if t.altScreen {
		return nil
	}
	t.altScreen = true
	return t.write([]byte(ansi.SetModeAltScreenSaveCursor))
}

// ExitAltScreen switches back to the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() error {
	if !t.altScreen {
		return nil
	}
	t.altScreen = false
	return t.write([]byte(ansi.ResetStyle + ansi.ResetModeAltScreenSaveCursor))
}

// EnterRawMode puts the input terminal into raw mode.
func (t *ANSITerminal) EnterRawMode() error {
	if t.in == nil {
		return fmt.Errorf("raw mode: %w", ErrNotTerminal)
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the input terminal to its previous mode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.rawState)
	t.rawState = nil
	return err
}

// Close leaves the alternate screen and raw mode and shows the cursor.
func (t *ANSITerminal) Close() error {
	return errors.Join(t.ShowCursor(), t.ExitAltScreen(), t.ExitRawMode())
}

func (t *ANSITerminal) write(p []byte) error {
	if _, err := t.out.Write(p); err != nil {
		return fmt.Errorf("write terminal: %w", err)
	}
	return nil
}
