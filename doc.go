// Package tuix is a terminal UI engine. An application describes a tree of
// typed components (label, panel, choice, ...) with resolved property maps;
// the engine lays the tree out on the terminal grid, paints every component
// into a cell buffer and sends only the cells that changed to the terminal.
//
// A draw is a pure function of (tree, viewport) up to the final diff:
//
//	Snapshot -> Build -> Tree -> layout.Calculate -> Renderer.Paint -> FrameBuffer -> Diff -> Transport.Flush
//
// Users import this single package for the public API: snapshots, the
// engine, components, layout types, and the transports.
package tuix
