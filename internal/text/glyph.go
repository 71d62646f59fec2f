package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// GraphemeWidth is the rendered width of a grapheme cluster in terminal
// cells.
type GraphemeWidth uint8

const (
	// Half occupies one column.
	Half GraphemeWidth = iota
	// Full occupies two columns.
	Full
)

// Columns returns the width in display columns.
func (w GraphemeWidth) Columns() int {
	if w == Full {
		return 2
	}
	return 1
}

// Replacement glyphs for clusters that have no sensible rendering of
// their own.
const (
	replacementWhitespace = '␣' // visible whitespace other than space/tab
	replacementControl    = '▯' // single control character
	replacementUnknown    = '·' // zero-width or otherwise unprintable
)

// measureWidth returns the display width of a grapheme cluster using
// East-Asian-width rules. runewidth reports 0 for some clusters uniseg
// can still measure (emoji ZWJ sequences), so fall back to uniseg.
func measureWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	if w < 0 {
		w = 0
	}
	return w
}

// classifyGrapheme decides how a single grapheme cluster renders: an
// optional replacement glyph (0 means render the cluster as-is) and its
// width. The classification is total; every input yields a result.
func classifyGrapheme(cluster string) (rune, GraphemeWidth) {
	width := measureWidth(cluster)
	switch {
	case cluster == " ":
		return 0, Half
	case cluster == "\t":
		return ' ', Half
	case width > 0 && strings.TrimSpace(cluster) == "":
		return replacementWhitespace, Half
	case width == 0:
		r, size := utf8.DecodeRuneInString(cluster)
		if size == len(cluster) && unicode.IsControl(r) {
			return replacementControl, Half
		}
		return replacementUnknown, Half
	case width <= 1:
		return 0, Half
	default:
		return 0, Full
	}
}
