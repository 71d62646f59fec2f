// Package core provides the coordinate types shared across the editor.
// Three coordinate spaces are in play: byte offsets within a line's raw
// string, grapheme (user-perceived character) indices, and terminal
// display columns. Location addresses text in grapheme space, Position
// addresses the screen in column space.
package core

// Location identifies a caret position in the buffer: a line index plus a
// grapheme index within that line. GraphemeIdx may equal the line's
// grapheme count (caret after the last character) but never exceed it.
type Location struct {
	LineIdx     int
	GraphemeIdx int
}

// Position is a screen coordinate in rows and display columns.
type Position struct {
	Row int
	Col int
}

// SaturatingSub subtracts other from p, clamping each axis at zero.
func (p Position) SaturatingSub(other Position) Position {
	return Position{
		Row: max(p.Row-other.Row, 0),
		Col: max(p.Col-other.Col, 0),
	}
}

// Size is the height and width of the terminal or a region of it.
type Size struct {
	Height int
	Width  int
}
