// Package buffer provides the multi-line text buffer: an ordered sequence
// of lines plus file identity and dirty tracking. Edit operations are
// addressed by (line, grapheme) Locations; query accessors return neutral
// defaults for out-of-range indices because callers routinely probe
// one-past-the-end positions during cursor arithmetic.
package buffer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ecrosby/tern/internal/core"
	"github.com/ecrosby/tern/internal/text"
)

// ErrNoFilePath is returned by Save when the buffer has no backing path.
var ErrNoFilePath = errors.New("buffer has no file path")

// Buffer holds the document: an ordered sequence of lines, the backing
// file identity, and a dirty flag. The dirty flag is set by any mutation
// and cleared only by a successful save.
type Buffer struct {
	lines    []*text.Line
	fileInfo FileInfo
	dirty    bool
}

// New returns an empty buffer with no backing path.
func New() *Buffer {
	return &Buffer{}
}

// Load reads a UTF-8 text file into a new buffer, one Line per physical
// line. Both "\n" and "\r\n" terminators are accepted.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &Buffer{
		lines:    splitLines(string(data)),
		fileInfo: NewFileInfo(path),
	}, nil
}

// splitLines splits file contents into lines, dropping the terminators.
// A trailing terminator does not produce an extra empty line.
func splitLines(contents string) []*text.Line {
	if contents == "" {
		return nil
	}
	raw := strings.Split(contents, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]*text.Line, 0, len(raw))
	for _, s := range raw {
		lines = append(lines, text.NewLine(strings.TrimSuffix(s, "\r")))
	}
	return lines
}

// IsDirty reports whether the buffer has unsaved modifications.
func (b *Buffer) IsDirty() bool {
	return b.dirty
}

// FileInfo returns the buffer's backing file identity.
func (b *Buffer) FileInfo() FileInfo {
	return b.fileInfo
}

// IsFileLoaded reports whether the buffer has a backing path.
func (b *Buffer) IsFileLoaded() bool {
	return b.fileInfo.HasPath()
}

// IsEmpty reports whether the buffer holds no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Height returns the number of lines.
func (b *Buffer) Height() int {
	return len(b.lines)
}

// Line returns the line at idx, or nil if idx is out of range.
func (b *Buffer) Line(idx int) *text.Line {
	if idx < 0 || idx >= len(b.lines) {
		return nil
	}
	return b.lines[idx]
}

// GraphemeCount returns the grapheme count of the line at idx, or 0 if
// idx is out of range.
func (b *Buffer) GraphemeCount(idx int) int {
	if line := b.Line(idx); line != nil {
		return line.GraphemeCount()
	}
	return 0
}

// WidthUntil returns the display width of the first n graphemes of the
// line at idx, or 0 if idx is out of range.
func (b *Buffer) WidthUntil(idx, n int) int {
	if line := b.Line(idx); line != nil {
		return line.WidthUntil(n)
	}
	return 0
}

// InsertRune inserts a character at the given location. A location one
// past the last line appends a new one-character line.
func (b *Buffer) InsertRune(r rune, at core.Location) {
	if at.LineIdx == len(b.lines) {
		b.lines = append(b.lines, text.NewLine(string(r)))
		b.dirty = true
		return
	}
	if line := b.Line(at.LineIdx); line != nil {
		line.InsertRune(r, at.GraphemeIdx)
		b.dirty = true
	}
}

// Delete removes the grapheme at the given location. A location at or
// past the end of a line merges the following line into it, which is how
// forward-delete at end of line behaves. A location at the very end of
// the buffer is a no-op.
func (b *Buffer) Delete(at core.Location) {
	line := b.Line(at.LineIdx)
	if line == nil {
		return
	}
	switch {
	case at.GraphemeIdx >= line.GraphemeCount() && at.LineIdx+1 < len(b.lines):
		next := b.lines[at.LineIdx+1]
		b.lines = append(b.lines[:at.LineIdx+1], b.lines[at.LineIdx+2:]...)
		line.Append(next)
		b.dirty = true
	case at.GraphemeIdx < line.GraphemeCount():
		line.Delete(at.GraphemeIdx)
		b.dirty = true
	}
}

// InsertNewline splits the line at the given location, inserting the tail
// as a new line immediately after it. A location one past the last line
// appends an empty line.
func (b *Buffer) InsertNewline(at core.Location) {
	if at.LineIdx == len(b.lines) {
		b.lines = append(b.lines, text.NewLine(""))
		b.dirty = true
		return
	}
	line := b.Line(at.LineIdx)
	if line == nil {
		return
	}
	tail := line.Split(at.GraphemeIdx)
	b.lines = append(b.lines, nil)
	copy(b.lines[at.LineIdx+2:], b.lines[at.LineIdx+1:])
	b.lines[at.LineIdx+1] = tail
	b.dirty = true
}

// saveTo writes every line followed by a "\n" terminator. The in-memory
// buffer and its dirty flag are untouched on failure.
func (b *Buffer) saveTo(fi FileInfo) error {
	if !fi.HasPath() {
		return ErrNoFilePath
	}
	f, err := os.Create(fi.Path())
	if err != nil {
		return fmt.Errorf("save %s: %w", fi.Path(), err)
	}
	for _, line := range b.lines {
		if _, err := fmt.Fprintln(f, line.String()); err != nil {
			f.Close()
			return fmt.Errorf("save %s: %w", fi.Path(), err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", fi.Path(), err)
	}
	return nil
}

// Save writes the buffer to its backing path and clears the dirty flag.
// Returns ErrNoFilePath if no backing path is set.
func (b *Buffer) Save() error {
	if err := b.saveTo(b.fileInfo); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

// SaveAs writes the buffer to path, adopts it as the backing path, and
// clears the dirty flag. On failure the old identity is kept.
func (b *Buffer) SaveAs(path string) error {
	fi := NewFileInfo(path)
	if err := b.saveTo(fi); err != nil {
		return err
	}
	b.fileInfo = fi
	b.dirty = false
	return nil
}
