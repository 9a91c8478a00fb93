package main

import (
	"context"
	"log/slog"

	"github.com/grindlemire/tuix"
	"github.com/grindlemire/tuix/internal/document"
	"github.com/grindlemire/tuix/internal/input"
)

// event is what a backend delivers to the session loop.
type event struct {
	key    input.Event
	resize bool
}

// session is the interactive state of tuix run: the document being drawn
// and the choice node that receives arrow keys.
type session struct {
	doc     *document.Document
	engine  *tuix.Engine
	logger  *slog.Logger
	choices []string
	focus   int
	result  string
}

func newSession(doc *document.Document, engine *tuix.Engine, logger *slog.Logger) *session {
	s := &session{doc: doc, engine: engine, logger: logger}
	for _, n := range doc.Snapshot.Nodes {
		if n.Kind == tuix.KindChoice {
			s.choices = append(s.choices, n.ID)
		}
	}
	return s
}

// run draws the document and redraws it after every key press and resize
// until a quit key, enter on a choice, or the end of ctx.
func (s *session) run(ctx context.Context, events <-chan event) error {
	if _, err := s.engine.Draw(ctx, s.doc.Snapshot); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !ev.resize && s.handle(ev.key) {
				return nil
			}
			if _, err := s.engine.Draw(ctx, s.doc.Snapshot); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

// handle applies one key press and reports whether the session is over.
func (s *session) handle(ev input.Event) bool {
	if ev.IsQuit() {
		return true
	}
	switch ev.Key {
	case input.KeyTab:
		if n := len(s.choices); n > 0 {
			step := 1
			if ev.Mod.Has(input.ModShift) {
				step = n - 1
			}
			s.focus = (s.focus + step) % n
		}
	case input.KeyUp:
		s.move(-1, 0)
	case input.KeyDown:
		s.move(1, 0)
	case input.KeyLeft:
		s.move(0, -1)
	case input.KeyRight:
		s.move(0, 1)
	case input.KeyCtrlL:
		s.engine.Invalidate()
	case input.KeyEnter:
		if c, ok := s.selected(); ok {
			s.result = c.Action
			s.logger.Info("choice confirmed", "name", c.Name, "action", c.Action)
			return true
		}
	}
	return false
}

func (s *session) focused() *tuix.NodeSpec {
	if len(s.choices) == 0 {
		return nil
	}
	n, _ := s.doc.Node(s.choices[s.focus])
	return n
}

// selection reads the rows and current selection of the focused choice.
func (s *session) selection() (n *tuix.NodeSpec, rows [][]tuix.Choice, row, index int) {
	n = s.focused()
	if n == nil {
		return nil, nil, 0, 0
	}
	props, _ := tuix.NewProps(n.Props)
	return n, props.Choices("choices"), props.Int("selected_row", 0), props.Int("selected_index", 0)
}

func (s *session) move(dRow, dIndex int) {
	n, rows, row, index := s.selection()
	if n == nil {
		return
	}
	row, index = tuix.MoveSelection(rows, row, index, dRow, dIndex)
	if n.Props == nil {
		n.Props = make(map[string]any)
	}
	n.Props["selected_row"] = row
	n.Props["selected_index"] = index
	s.logger.Debug("selection moved", "node", n.ID, "row", row, "index", index)
}

func (s *session) selected() (tuix.Choice, bool) {
	_, rows, row, index := s.selection()
	return tuix.Selected(rows, row, index)
}
