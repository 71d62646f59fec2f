package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ecrosby/tern/internal/core"
)

// StatusBar is the one-row panel showing file name, line count, modified
// state and caret position. It draws in reverse video.
type StatusBar struct {
	status      DocumentStatus
	needsRedraw bool
	size        core.Size
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{needsRedraw: true}
}

// UpdateStatus replaces the displayed snapshot, requesting a redraw only
// when it actually changed.
func (s *StatusBar) UpdateStatus(status DocumentStatus) {
	if status != s.status {
		s.status = status
		s.MarkRedraw(true)
	}
}

// NeedsRedraw implements Component.
func (s *StatusBar) NeedsRedraw() bool {
	return s.needsRedraw
}

// MarkRedraw implements Component.
func (s *StatusBar) MarkRedraw(value bool) {
	s.needsRedraw = value
}

// SetSize implements Component.
func (s *StatusBar) SetSize(size core.Size) {
	s.size = size
	s.MarkRedraw(true)
}

// Draw implements Component. The left segment holds the file name, line
// count and modified indicator; the position indicator is right-aligned
// into the remaining width. A bar that does not fit draws blank so the
// row is still cleared.
func (s *StatusBar) Draw(r Renderer, originRow int) error {
	beginning := fmt.Sprintf("%s - %s %s",
		s.status.FileName,
		s.status.LineCountIndicator(),
		s.status.ModifiedIndicator(),
	)
	position := s.status.PositionIndicator()

	pad := s.size.Width - runewidth.StringWidth(beginning) - runewidth.StringWidth(position)
	line := ""
	if pad >= 0 {
		line = beginning + strings.Repeat(" ", pad) + position
	}
	return r.PrintInvertedRow(originRow, line)
}
