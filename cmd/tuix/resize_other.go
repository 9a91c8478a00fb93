//go:build !unix

package main

import "os"

// notifyResize is a no-op without SIGWINCH; the next key press picks up
// the new size.
func notifyResize(ch chan<- os.Signal) {}
