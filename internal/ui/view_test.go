package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecrosby/tern/internal/core"
	"github.com/ecrosby/tern/internal/input"
)

type fakeRenderer struct {
	rows     map[int]string
	inverted map[int]string
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{rows: make(map[int]string), inverted: make(map[int]string)}
}

func (f *fakeRenderer) PrintRow(row int, text string) error {
	f.rows[row] = text
	return nil
}

func (f *fakeRenderer) PrintInvertedRow(row int, text string) error {
	f.inverted[row] = text
	return nil
}

// viewWith builds a view holding the given lines, caret back at origin.
func viewWith(t *testing.T, lines ...string) *View {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	v := NewView()
	v.SetSize(core.Size{Height: 5, Width: 10})
	if err := v.Load(path); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestMoveRightWrapsToNextLine(t *testing.T) {
	v := viewWith(t, "ab", "cd")

	v.HandleMove(input.MoveEndOfLine)
	v.HandleMove(input.MoveRight)
	if v.textLocation != (core.Location{LineIdx: 1, GraphemeIdx: 0}) {
		t.Errorf("expected wrap to start of line 1, got %+v", v.textLocation)
	}
}

func TestMoveRightAtEndOfBufferStays(t *testing.T) {
	v := viewWith(t, "ab")

	v.HandleMove(input.MoveDown) // clamps to line 1 (appending position)
	v.HandleMove(input.MoveRight)
	v.HandleMove(input.MoveRight)
	if v.textLocation.LineIdx > v.buf.Height() {
		t.Errorf("line index %d exceeds buffer height %d", v.textLocation.LineIdx, v.buf.Height())
	}
	if v.textLocation.GraphemeIdx != 0 {
		t.Errorf("expected grapheme index 0 past end of buffer, got %d", v.textLocation.GraphemeIdx)
	}
}

func TestMoveLeftWrapsToPreviousLineEnd(t *testing.T) {
	v := viewWith(t, "ab", "cd")

	v.HandleMove(input.MoveDown)
	v.HandleMove(input.MoveLeft)
	if v.textLocation != (core.Location{LineIdx: 0, GraphemeIdx: 2}) {
		t.Errorf("expected wrap to end of line 0, got %+v", v.textLocation)
	}

	// At the very start, left is a no-op.
	v.HandleMove(input.MoveStartOfLine)
	v.HandleMove(input.MoveUp)
	v.HandleMove(input.MoveLeft)
	if v.textLocation != (core.Location{}) {
		t.Errorf("expected caret pinned at origin, got %+v", v.textLocation)
	}
}

func TestMoveDownClampsGrapheme(t *testing.T) {
	v := viewWith(t, "abcdef", "ab")

	v.HandleMove(input.MoveEndOfLine)
	v.HandleMove(input.MoveDown)
	if v.textLocation != (core.Location{LineIdx: 1, GraphemeIdx: 2}) {
		t.Errorf("expected caret snapped to line end, got %+v", v.textLocation)
	}
}

func TestPageMovesUseViewportHeight(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "x"
	}
	v := viewWith(t, lines...) // height 5

	v.HandleMove(input.MovePageDown)
	if v.textLocation.LineIdx != 4 {
		t.Errorf("expected line 4 after page down, got %d", v.textLocation.LineIdx)
	}
	v.HandleMove(input.MovePageUp)
	if v.textLocation.LineIdx != 0 {
		t.Errorf("expected line 0 after page up, got %d", v.textLocation.LineIdx)
	}
}

func TestCaretPositionUsesDisplayWidth(t *testing.T) {
	v := viewWith(t, "a😀b")

	v.HandleMove(input.MoveRight)
	v.HandleMove(input.MoveRight)
	// Caret is after the Full-width glyph: column 1 + 2.
	if got := v.CaretPosition(); got != (core.Position{Row: 0, Col: 3}) {
		t.Errorf("expected caret at col 3, got %+v", got)
	}
}

func TestScrollContainment(t *testing.T) {
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = strings.Repeat("abcde ", 10)
	}
	v := viewWith(t, lines...)

	moves := []input.Move{
		input.MovePageDown, input.MovePageDown, input.MoveEndOfLine,
		input.MoveDown, input.MoveDown, input.MoveLeft, input.MovePageUp,
		input.MoveRight, input.MoveRight, input.MoveStartOfLine,
		input.MovePageDown, input.MoveEndOfLine, input.MoveUp,
	}
	for _, m := range moves {
		v.HandleMove(m)
		pos := v.locationToPosition()
		if pos.Row < v.scrollOffset.Row || pos.Row >= v.scrollOffset.Row+v.size.Height {
			t.Fatalf("after %v: row %d outside [%d, %d)", m, pos.Row, v.scrollOffset.Row, v.scrollOffset.Row+v.size.Height)
		}
		if pos.Col < v.scrollOffset.Col || pos.Col >= v.scrollOffset.Col+v.size.Width {
			t.Fatalf("after %v: col %d outside [%d, %d)", m, pos.Col, v.scrollOffset.Col, v.scrollOffset.Col+v.size.Width)
		}
		caret := v.CaretPosition()
		if caret.Row < 0 || caret.Row >= v.size.Height || caret.Col < 0 || caret.Col >= v.size.Width {
			t.Fatalf("after %v: caret %+v outside viewport %+v", m, caret, v.size)
		}
	}
}

func TestScrollIsMinimalShift(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "x"
	}
	v := viewWith(t, lines...) // height 5

	for i := 0; i < 6; i++ {
		v.HandleMove(input.MoveDown)
	}
	// Caret on row 6; the minimal shift puts it on the last viewport row.
	if v.scrollOffset.Row != 2 {
		t.Errorf("expected scroll offset 2, got %d", v.scrollOffset.Row)
	}

	v.HandleMove(input.MoveUp)
	// Moving back inside the viewport must not scroll.
	if v.scrollOffset.Row != 2 {
		t.Errorf("expected scroll offset unchanged, got %d", v.scrollOffset.Row)
	}
}

func TestCenterOnCaret(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "x"
	}
	v := viewWith(t, lines...) // height 5

	for i := 0; i < 10; i++ {
		v.HandleMove(input.MoveDown)
	}
	v.CenterOnCaret()
	if v.scrollOffset.Row != 7 {
		t.Errorf("expected scroll offset 7 after centering on row 10, got %d", v.scrollOffset.Row)
	}
}

func TestDrawVisibleSlice(t *testing.T) {
	v := viewWith(t, "0123456789ABCDEF", "short")
	r := newFakeRenderer()

	if err := v.Draw(r, 0); err != nil {
		t.Fatal(err)
	}
	if r.rows[0] != "0123456789" {
		t.Errorf("expected clipped first row, got %q", r.rows[0])
	}
	if r.rows[1] != "short" {
		t.Errorf("expected %q, got %q", "short", r.rows[1])
	}
	if r.rows[2] != "_" || r.rows[4] != "_" {
		t.Errorf("expected empty-row markers, got %q / %q", r.rows[2], r.rows[4])
	}

	// Scroll right: the slice follows the offset.
	v.HandleMove(input.MoveEndOfLine)
	if err := v.Draw(r, 0); err != nil {
		t.Fatal(err)
	}
	if r.rows[0] != "789ABCDEF" {
		t.Errorf("expected scrolled slice, got %q", r.rows[0])
	}
}

func TestEditsThroughView(t *testing.T) {
	v := NewView()
	v.SetSize(core.Size{Height: 5, Width: 10})

	for _, r := range "hey" {
		v.HandleEdit(input.Edit{Kind: input.EditInsert, Rune: r})
	}
	v.HandleEdit(input.Edit{Kind: input.EditDeleteBackward, Rune: 0})
	v.HandleEdit(input.Edit{Kind: input.EditInsertNewline})
	v.HandleEdit(input.Edit{Kind: input.EditInsert, Rune: '!'})

	status := v.Status()
	if status.TotalLines != 2 {
		t.Errorf("expected 2 lines, got %d", status.TotalLines)
	}
	if !status.IsModified {
		t.Error("expected modified status")
	}
	if got := v.buf.Line(0).String(); got != "he" {
		t.Errorf("expected %q, got %q", "he", got)
	}
	if got := v.buf.Line(1).String(); got != "!" {
		t.Errorf("expected %q, got %q", "!", got)
	}
}

func TestDeleteBackwardAtLineStartMerges(t *testing.T) {
	v := viewWith(t, "ab", "cd")

	v.HandleMove(input.MoveDown)
	v.HandleEdit(input.Edit{Kind: input.EditDeleteBackward})
	if v.buf.Height() != 1 {
		t.Fatalf("expected merged buffer, got height %d", v.buf.Height())
	}
	if got := v.buf.Line(0).String(); got != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", got)
	}
	if v.textLocation != (core.Location{LineIdx: 0, GraphemeIdx: 2}) {
		t.Errorf("expected caret at merge point, got %+v", v.textLocation)
	}
}

func TestStatusSnapshot(t *testing.T) {
	v := viewWith(t, "one", "two", "three")

	v.HandleMove(input.MoveDown)
	status := v.Status()
	if status.TotalLines != 3 {
		t.Errorf("expected 3 lines, got %d", status.TotalLines)
	}
	if status.CurrentLineIdx != 1 {
		t.Errorf("expected current line 1, got %d", status.CurrentLineIdx)
	}
	if status.IsModified {
		t.Error("expected unmodified after load")
	}
	if status.FileName != "content.txt" {
		t.Errorf("expected file name content.txt, got %q", status.FileName)
	}
	if status.PositionIndicator() != "2/3" {
		t.Errorf("expected position 2/3, got %q", status.PositionIndicator())
	}
}
