// Package buffer implements an in-memory text buffer that hosts breakpoint
// markers.
//
// Text is addressed by rune offsets. Keyed regions and selections added to a
// buffer are re-anchored on every edit, so a region registered on a line keeps
// following that line as text is inserted or erased around it.
package buffer
