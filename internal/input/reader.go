package input

import (
	"os"
	"time"
)

// Reader reads key events from a terminal in raw mode.
type Reader struct {
	f   *os.File
	buf []byte
}

// NewReader reads from f, usually os.Stdin.
func NewReader(f *os.File) *Reader {
	return &Reader{f: f, buf: make([]byte, 256)}
}

// Poll waits up to timeout for input and decodes it. It returns no events
// and no error on timeout. A negative timeout blocks.
func (r *Reader) Poll(timeout time.Duration) ([]Event, error) {
	ready, err := waitReadable(int(r.f.Fd()), timeout)
	if err != nil || !ready {
		return nil, err
	}
	n, err := r.f.Read(r.buf)
	if n > 0 {
		return Parse(r.buf[:n]), nil
	}
	return nil, err
}
