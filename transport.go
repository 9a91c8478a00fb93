package tuix

// Transport is the terminal side of the engine: it reports the viewport and
// displays cell updates. Changes arrive in row-major order and may include
// continuation cells of wide characters, which implementations skip or
// store as they see fit.
type Transport interface {
	// Size returns the viewport dimensions in cells.
	Size() (width, height int, err error)

	// Flush displays the given cell changes.
	Flush(changes []CellChange) error
}

// Clearer is implemented by transports that can blank the whole screen.
// The engine clears before a full repaint so nothing from an earlier frame
// survives outside the new viewport.
type Clearer interface {
	Clear() error
}

// ColorCapability describes the level of color support in a terminal.
type ColorCapability int

const (
	// ColorNone indicates a monochrome terminal with no color support.
	ColorNone ColorCapability = iota
	// Color16 indicates basic 16-color support (ANSI standard colors).
	Color16
	// Color256 indicates ANSI 256 palette support.
	Color256
	// ColorTrue indicates 24-bit true color (RGB) support.
	ColorTrue
)

// Capabilities describes what features the terminal supports.
type Capabilities struct {
	// Colors indicates the level of color support.
	Colors ColorCapability
	// Unicode indicates whether the terminal can render Unicode characters.
	Unicode bool
	// AltScreen indicates whether the terminal supports alternate screen buffer.
	AltScreen bool
}
