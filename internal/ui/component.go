// Package ui provides the editor's screen panels: the text View plus the
// status, message and command bars. Panels share the Component contract
// and draw through a Renderer so the package never touches the terminal
// directly.
package ui

import "github.com/ecrosby/tern/internal/core"

// Renderer is the drawing capability a panel needs: whole-row text
// output. The terminal package implements it.
type Renderer interface {
	PrintRow(row int, text string) error
	PrintInvertedRow(row int, text string) error
}

// Component is the shared redraw/resize contract across panels.
type Component interface {
	// NeedsRedraw reports whether the panel must be drawn this cycle.
	NeedsRedraw() bool
	// MarkRedraw sets or clears the redraw request.
	MarkRedraw(value bool)
	// SetSize updates the panel's size.
	SetSize(size core.Size)
	// Draw renders the panel starting at originRow and clears the
	// redraw request on success.
	Draw(r Renderer, originRow int) error
}

// Render draws a component if it needs drawing, clearing the request on
// success and keeping it on failure so the next cycle retries.
func Render(c Component, r Renderer, originRow int) {
	if !c.NeedsRedraw() {
		return
	}
	if err := c.Draw(r, originRow); err == nil {
		c.MarkRedraw(false)
	}
}
