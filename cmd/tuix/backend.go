package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/tuix"
	"github.com/grindlemire/tuix/internal/input"
)

// backend is a transport that also owns the terminal's input side.
type backend interface {
	tuix.Transport
	// events delivers key presses and resizes until ctx ends.
	events(ctx context.Context) <-chan event
	Close() error
}

const pollInterval = 50 * time.Millisecond

func openBackend(name string, logger *slog.Logger) (backend, error) {
	switch name {
	case "ansi", "":
		return openANSIBackend(logger)
	case "tcell":
		t, err := tuix.NewTcellTerminal()
		if err != nil {
			return nil, err
		}
		return &tcellBackend{TcellTerminal: t}, nil
	}
	return nil, fmt.Errorf("unknown backend %q (want ansi or tcell)", name)
}

type ansiBackend struct {
	*tuix.ANSITerminal
	reader *input.Reader
	logger *slog.Logger
}

func openANSIBackend(logger *slog.Logger) (*ansiBackend, error) {
	t := tuix.NewANSITerminal(os.Stdout, tuix.WithInput(os.Stdin))
	if _, _, err := t.Size(); err != nil {
		return nil, err
	}
	if err := t.EnterRawMode(); err != nil {
		return nil, err
	}
	if t.Caps().AltScreen {
		if err := t.EnterAltScreen(); err != nil {
			t.Close()
			return nil, err
		}
	}
	if err := t.HideCursor(); err != nil {
		t.Close()
		return nil, err
	}
	logger.Debug("ansi backend ready", "caps", t.Caps().String())
	return &ansiBackend{ANSITerminal: t, reader: input.NewReader(os.Stdin), logger: logger}, nil
}

func (b *ansiBackend) events(ctx context.Context) <-chan event {
	ch := make(chan event, 16)
	winch := make(chan os.Signal, 1)
	notifyResize(winch)

	go func() {
		defer close(ch)
		defer signal.Stop(winch)
		for ctx.Err() == nil {
			select {
			case <-winch:
				if !send(ctx, ch, event{resize: true}) {
					return
				}
			default:
			}

			keys, err := b.reader.Poll(pollInterval)
			if err != nil {
				b.logger.Error("read input", "err", err)
				return
			}
			for _, k := range keys {
				if !send(ctx, ch, event{key: k}) {
					return
				}
			}
		}
	}()
	return ch
}

type tcellBackend struct {
	*tuix.TcellTerminal
}

func (b *tcellBackend) events(ctx context.Context) <-chan event {
	ch := make(chan event, 16)
	go func() {
		<-ctx.Done()
		// Wakes PollEvent so the reader goroutine sees the context end.
		b.Screen().PostEvent(tcell.NewEventInterrupt(nil))
	}()
	go func() {
		defer close(ch)
		for ctx.Err() == nil {
			var ev event
			switch e := b.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				b.Screen().Sync()
				ev.resize = true
			case *tcell.EventKey:
				k, ok := keyFromTcell(e)
				if !ok {
					continue
				}
				ev.key = k
			default:
				continue
			}
			if !send(ctx, ch, ev) {
				return
			}
		}
	}()
	return ch
}

func send(ctx context.Context, ch chan<- event, ev event) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func keyFromTcell(e *tcell.EventKey) (input.Event, bool) {
	var mod input.Modifier
	if e.Modifiers()&tcell.ModShift != 0 {
		mod |= input.ModShift
	}
	if e.Modifiers()&tcell.ModAlt != 0 {
		mod |= input.ModAlt
	}
	if e.Modifiers()&tcell.ModCtrl != 0 {
		mod |= input.ModCtrl
	}

	var key input.Key
	switch e.Key() {
	case tcell.KeyRune:
		return input.Event{Key: input.KeyRune, Rune: e.Rune(), Mod: mod &^ input.ModShift}, true
	case tcell.KeyUp:
		key = input.KeyUp
	case tcell.KeyDown:
		key = input.KeyDown
	case tcell.KeyLeft:
		key = input.KeyLeft
	case tcell.KeyRight:
		key = input.KeyRight
	case tcell.KeyHome:
		key = input.KeyHome
	case tcell.KeyEnd:
		key = input.KeyEnd
	case tcell.KeyEnter:
		key = input.KeyEnter
	case tcell.KeyEscape:
		key = input.KeyEscape
	case tcell.KeyTab:
		key = input.KeyTab
	case tcell.KeyBacktab:
		return input.Event{Key: input.KeyTab, Mod: input.ModShift}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		key = input.KeyBackspace
	case tcell.KeyDelete:
		key = input.KeyDelete
	case tcell.KeyCtrlC:
		return input.Event{Key: input.KeyCtrlC}, true
	case tcell.KeyCtrlD:
		return input.Event{Key: input.KeyCtrlD}, true
	case tcell.KeyCtrlL:
		return input.Event{Key: input.KeyCtrlL}, true
	default:
		return input.Event{}, false
	}
	return input.Event{Key: key, Mod: mod}, true
}
