package tuix

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TcellTerminal is a Transport backed by a tcell screen. tcell keeps its
// own copy of the screen and sends only what changed on Show, so flushing
// the engine's update set costs little more than the diff itself.
type TcellTerminal struct {
	screen tcell.Screen
}

// NewTcellTerminal opens the controlling terminal through tcell.
func NewTcellTerminal() (*TcellTerminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return NewTcellTerminalWithScreen(s)
}

// NewTcellTerminalWithScreen wraps an existing screen, initializing it.
// Tests pass a tcell.SimulationScreen.
func NewTcellTerminalWithScreen(s tcell.Screen) (*TcellTerminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	s.HideCursor()
	return &TcellTerminal{screen: s}, nil
}

// Screen returns the underlying screen, for event polling.
func (t *TcellTerminal) Screen() tcell.Screen { return t.screen }

// Size returns the screen dimensions.
func (t *TcellTerminal) Size() (int, int, error) {
	w, h := t.screen.Size()
	return w, h, nil
}

// Flush copies the changes onto the screen and shows them.
func (t *TcellTerminal) Flush(changes []CellChange) error {
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		r := ch.Cell.Rune
		if r <= 0 {
			r = ' '
		}
		t.screen.SetContent(ch.X, ch.Y, r, nil, tcellStyle(ch.Cell.Style))
	}
	t.screen.Show()
	return nil
}

// Clear blanks the screen.
func (t *TcellTerminal) Clear() error {
	t.screen.Clear()
	return nil
}

// PollEvent waits for the next input or resize event.
func (t *TcellTerminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Close restores the terminal.
func (t *TcellTerminal) Close() error {
	t.screen.Fini()
	return nil
}

func tcellStyle(s Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(s.Fg)).
		Background(tcellColor(s.Bg)).
		Bold(s.HasAttr(AttrBold)).
		Dim(s.HasAttr(AttrDim)).
		Italic(s.HasAttr(AttrItalic)).
		Underline(s.HasAttr(AttrUnderline)).
		Blink(s.HasAttr(AttrBlink)).
		Reverse(s.HasAttr(AttrReverse)).
		StrikeThrough(s.HasAttr(AttrStrikethrough))
}

func tcellColor(c Color) tcell.Color {
	if idx, ok := c.Index(); ok {
		return tcell.PaletteColor(int(idx))
	}
	if r, g, b, ok := c.RGB(); ok {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}
