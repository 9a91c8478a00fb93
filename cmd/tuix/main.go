// Command tuix renders and runs component trees described in YAML files.
//
// Usage:
//
//	tuix render FILE [--width W --height H] [--ansi]
//	tuix run FILE [--backend ansi|tcell] [--metrics-addr :2112]
//	tuix check FILE
//	tuix version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
