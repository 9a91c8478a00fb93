package tuix

import (
	"errors"
	"sync"
)

// ErrMockFlush is returned by a MockTerminal told to fail.
var ErrMockFlush = errors.New("mock flush failure")

// MockTerminal is an in-memory Transport for tests. It applies flushed
// changes to its own cell grid and records every flush.
type MockTerminal struct {
	mu      sync.Mutex
	screen  *FrameBuffer
	flushes [][]CellChange
	clears  int
	failing bool
	sizeErr error
}

var (
	_ Transport = (*MockTerminal)(nil)
	_ Clearer   = (*MockTerminal)(nil)
)

// NewMockTerminal creates a new mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	return &MockTerminal{screen: NewFrameBuffer(width, height)}
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sizeErr != nil {
		return 0, 0, m.sizeErr
	}
	return m.screen.width, m.screen.height, nil
}

// Flush applies the changes to the screen grid. Changes outside the grid
// are kept in the flush log but not applied.
func (m *MockTerminal) Flush(changes []CellChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return ErrMockFlush
	}
	m.flushes = append(m.flushes, append([]CellChange(nil), changes...))
	m.screen.Apply(changes)
	return nil
}

// Clear resets the screen grid to blank cells.
func (m *MockTerminal) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.Clear()
	m.clears++
	return nil
}

// Resize changes the reported size. The screen content is discarded, as a
// real terminal would reflow it.
func (m *MockTerminal) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen = NewFrameBuffer(width, height)
}

// SetFailing makes subsequent flushes fail.
func (m *MockTerminal) SetFailing(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = fail
}

// SetSizeError makes Size fail with err; nil restores it.
func (m *MockTerminal) SetSizeError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sizeErr = err
}

// Cell returns the cell at (x, y).
func (m *MockTerminal) Cell(x, y int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.screen.Cell(x, y)
}

// Flushes returns a copy of every flushed update set in order.
func (m *MockTerminal) Flushes() [][]CellChange {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]CellChange(nil), m.flushes...)
}

// LastFlush returns the most recent update set.
func (m *MockTerminal) LastFlush() []CellChange {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.flushes) == 0 {
		return nil
	}
	return m.flushes[len(m.flushes)-1]
}

// Clears returns how many times Clear was called.
func (m *MockTerminal) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}

// String returns the screen as text.
func (m *MockTerminal) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.screen.String()
}

// StringTrimmed returns the screen as text without trailing spaces.
func (m *MockTerminal) StringTrimmed() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.screen.StringTrimmed()
}
