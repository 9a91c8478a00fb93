//go:build !unix

package input

import "time"

// waitReadable cannot poll here; reads block until input arrives.
func waitReadable(fd int, timeout time.Duration) (bool, error) {
	return true, nil
}
