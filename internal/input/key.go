// Package input decodes terminal keyboard input for interactive tuix
// sessions.
package input

import "strings"

// Key identifies a keyboard key.
type Key uint8

const (
	KeyNone Key = iota
	// KeyRune is a printable character, see Event.Rune.
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyCtrlC
	KeyCtrlD
	KeyCtrlL
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlD:     "Ctrl+D",
	KeyCtrlL:     "Ctrl+L",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModAlt
	ModCtrl
)

// Has reports whether mod is set.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// Event is one decoded key press.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// IsQuit reports whether the event ends an interactive session: Ctrl+C,
// Ctrl+D, Escape or q.
func (e Event) IsQuit() bool {
	switch e.Key {
	case KeyCtrlC, KeyCtrlD, KeyEscape:
		return true
	case KeyRune:
		return e.Rune == 'q' && e.Mod == ModNone
	}
	return false
}

func (e Event) String() string {
	if e.Key == KeyRune {
		if e.Mod != ModNone {
			return e.Mod.String() + "+" + string(e.Rune)
		}
		return string(e.Rune)
	}
	if e.Mod != ModNone {
		return e.Mod.String() + "+" + e.Key.String()
	}
	return e.Key.String()
}
