// Package layout resolves a tree of nodes and their layout directives into
// absolute cell rectangles on a bounded terminal grid.
//
// Layout runs in two passes. The size pass resolves every node's width and
// height from its size hints (fixed, percentage, auto), measuring content and
// children where the size is intrinsic. The position pass then places each
// node inside its parent's content box according to its margins and
// alignment, and clips it against its ancestors.
//
// The main entry point is [Calculate], which takes a [Tree] and a viewport
// and returns a fresh [Result] for every call. Types are re-exported through
// the root tuix package for public consumption.
package layout
