package text

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Fragment describes one grapheme cluster within a Line.
type Fragment struct {
	// Text is the cluster's original substring; it may span several
	// code points.
	Text string
	// Width is the rendered width of the cluster.
	Width GraphemeWidth
	// Start is the byte offset of the cluster in the line's raw string.
	Start int
	// Replacement, when nonzero, is the glyph rendered in place of the
	// cluster.
	Replacement rune
}

// Line is a single line of text. The raw string is authoritative; the
// fragment slice is a derived cache and is rebuilt in full after every
// mutation, so the two can never diverge. All mutators are O(line length)
// because of the rebuild, which is fine at interactive-editing scale.
//
// The zero value is an empty line and ready to use.
type Line struct {
	raw       string
	fragments []Fragment
}

// NewLine builds a Line from a string. The string must not contain a
// line terminator; splitting text into physical lines is the Buffer's
// job.
func NewLine(s string) *Line {
	return &Line{raw: s, fragments: segment(s)}
}

// segment splits a string into its grapheme cluster fragments, in
// ascending byte-offset order.
func segment(s string) []Fragment {
	if s == "" {
		return nil
	}
	fragments := make([]Fragment, 0, len(s))
	state := -1
	offset := 0
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		replacement, width := classifyGrapheme(cluster)
		fragments = append(fragments, Fragment{
			Text:        cluster,
			Width:       width,
			Start:       offset,
			Replacement: replacement,
		})
		offset += len(cluster)
	}
	return fragments
}

// rebuild regenerates the fragment cache from the raw string. Every
// mutator calls this before returning; there is no incremental patching.
func (l *Line) rebuild() {
	l.fragments = segment(l.raw)
}

// String returns the line's raw text.
func (l *Line) String() string {
	return l.raw
}

// GraphemeCount returns the number of grapheme clusters in the line.
func (l *Line) GraphemeCount() int {
	return len(l.fragments)
}

// WidthUntil returns the total display width of the first n grapheme
// clusters. It is monotonic non-decreasing in n.
func (l *Line) WidthUntil(n int) int {
	if n > len(l.fragments) {
		n = len(l.fragments)
	}
	width := 0
	for _, frag := range l.fragments[:n] {
		width += frag.Width.Columns()
	}
	return width
}

// Width returns the display width of the whole line.
func (l *Line) Width() int {
	return l.WidthUntil(l.GraphemeCount())
}

// VisibleGraphemes returns the rendered text for grapheme indices in the
// half-open range [start, end), clamped to the line. Clusters with a
// replacement glyph render as that glyph. The bounds are grapheme
// indices, not columns: a Full-width cluster at a viewport edge is
// included whole rather than sub-split.
func (l *Line) VisibleGraphemes(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(l.fragments) {
		end = len(l.fragments)
	}
	if start >= end {
		return ""
	}
	var b strings.Builder
	for _, frag := range l.fragments[start:end] {
		if frag.Replacement != 0 {
			b.WriteRune(frag.Replacement)
		} else {
			b.WriteString(frag.Text)
		}
	}
	return b.String()
}

// InsertRune inserts a character before the grapheme at index at; an
// index at or past the grapheme count appends.
func (l *Line) InsertRune(r rune, at int) {
	if at >= 0 && at < len(l.fragments) {
		start := l.fragments[at].Start
		l.raw = l.raw[:start] + string(r) + l.raw[start:]
	} else {
		l.raw += string(r)
	}
	l.rebuild()
}

// AppendRune appends a character to the end of the line.
func (l *Line) AppendRune(r rune) {
	l.InsertRune(r, l.GraphemeCount())
}

// Delete removes the grapheme at index at. Out-of-range indices are a
// no-op, not an error; callers probe one-past-the-end during cursor
// arithmetic.
func (l *Line) Delete(at int) {
	if at < 0 || at >= len(l.fragments) {
		return
	}
	frag := l.fragments[at]
	l.raw = l.raw[:frag.Start] + l.raw[frag.Start+len(frag.Text):]
	l.rebuild()
}

// DeleteLast removes the last grapheme of the line, if any.
func (l *Line) DeleteLast() {
	l.Delete(l.GraphemeCount() - 1)
}

// Append concatenates another line's text onto this one.
func (l *Line) Append(other *Line) {
	l.raw += other.raw
	l.rebuild()
}

// Split truncates the line at the grapheme index at and returns the
// removed tail as a new Line. An index at or past the grapheme count
// returns an empty Line and leaves the receiver unchanged.
func (l *Line) Split(at int) *Line {
	if at < 0 || at >= len(l.fragments) {
		return NewLine("")
	}
	start := l.fragments[at].Start
	tail := l.raw[start:]
	l.raw = l.raw[:start]
	l.rebuild()
	return NewLine(tail)
}
