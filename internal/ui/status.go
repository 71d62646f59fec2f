package ui

import "fmt"

// DocumentStatus is a snapshot of the document for display by the status
// bar and the terminal title.
type DocumentStatus struct {
	TotalLines     int
	CurrentLineIdx int
	IsModified     bool
	FileName       string
}

// ModifiedIndicator returns "(modified)" when the document has unsaved
// changes, or "" otherwise.
func (s DocumentStatus) ModifiedIndicator() string {
	if s.IsModified {
		return "(modified)"
	}
	return ""
}

// LineCountIndicator returns the total line count as "N lines".
func (s DocumentStatus) LineCountIndicator() string {
	return fmt.Sprintf("%d lines", s.TotalLines)
}

// PositionIndicator returns the caret position as "current/total", with
// the current line shown 1-based.
func (s DocumentStatus) PositionIndicator() string {
	return fmt.Sprintf("%d/%d", s.CurrentLineIdx+1, s.TotalLines)
}
