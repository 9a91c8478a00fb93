//go:build unix

package input

import (
	"time"

	"golang.org/x/sys/unix"
)

// waitReadable blocks in select(2) until fd is readable or the timeout
// passes. EINTR counts as a timeout so signals such as SIGWINCH wake the
// caller.
func waitReadable(fd int, timeout time.Duration) (bool, error) {
	var fds unix.FdSet
	fds.Zero()
	fds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		t := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &t
	}

	n, err := unix.Select(fd+1, &fds, nil, nil, tv)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0 && fds.IsSet(fd), nil
}
