package ui

import (
	"github.com/ecrosby/tern/internal/buffer"
	"github.com/ecrosby/tern/internal/core"
	"github.com/ecrosby/tern/internal/input"
)

// emptyRowMarker is drawn on rows past the end of the buffer.
const emptyRowMarker = "_"

// View is the text panel. It owns the buffer, the caret's text Location,
// and the scroll offset, and translates between the logical (line,
// grapheme) space and the screen (row, column) space. After every caret
// move the scroll offset is corrected by the smallest shift that brings
// the caret back inside the panel; only CenterOnCaret recenters.
type View struct {
	buf          *buffer.Buffer
	needsRedraw  bool
	size         core.Size
	textLocation core.Location
	scrollOffset core.Position
}

// NewView creates a view over an empty, unnamed buffer.
func NewView() *View {
	return &View{buf: buffer.New(), needsRedraw: true}
}

// Status returns the document snapshot for the status bar.
func (v *View) Status() DocumentStatus {
	return DocumentStatus{
		TotalLines:     v.buf.Height(),
		CurrentLineIdx: v.textLocation.LineIdx,
		IsModified:     v.buf.IsDirty(),
		FileName:       v.buf.FileInfo().Name(),
	}
}

// IsFileLoaded reports whether the buffer has a backing path.
func (v *View) IsFileLoaded() bool {
	return v.buf.IsFileLoaded()
}

// Load replaces the buffer with the contents of path. On failure the
// current buffer is kept.
func (v *View) Load(path string) error {
	buf, err := buffer.Load(path)
	if err != nil {
		return err
	}
	v.buf = buf
	v.textLocation = core.Location{}
	v.scrollOffset = core.Position{}
	v.MarkRedraw(true)
	return nil
}

// Save writes the buffer to its backing path.
func (v *View) Save() error {
	if err := v.buf.Save(); err != nil {
		return err
	}
	v.MarkRedraw(true)
	return nil
}

// SaveAs writes the buffer to path and adopts it.
func (v *View) SaveAs(path string) error {
	if err := v.buf.SaveAs(path); err != nil {
		return err
	}
	v.MarkRedraw(true)
	return nil
}

// HandleEdit applies a text-mutating command at the caret.
func (v *View) HandleEdit(cmd input.Edit) {
	switch cmd.Kind {
	case input.EditInsert:
		v.insertRune(cmd.Rune)
	case input.EditDelete:
		v.delete()
	case input.EditDeleteBackward:
		v.deleteBackward()
	case input.EditInsertNewline:
		v.insertNewline()
	}
}

// HandleMove applies a caret-movement command. Bounds are not checked
// per direction; the final clamp happens in the move helpers, and the
// scroll offset is corrected afterwards.
func (v *View) HandleMove(cmd input.Move) {
	height := v.size.Height
	switch cmd {
	case input.MoveUp:
		v.moveUp(1)
	case input.MoveDown:
		v.moveDown(1)
	case input.MoveLeft:
		v.moveLeft()
	case input.MoveRight:
		v.moveRight()
	case input.MovePageUp:
		v.moveUp(max(height-1, 0))
	case input.MovePageDown:
		v.moveDown(max(height-1, 0))
	case input.MoveStartOfLine:
		v.moveToStartOfLine()
	case input.MoveEndOfLine:
		v.moveToEndOfLine()
	}
	v.scrollIntoView()
}

func (v *View) insertNewline() {
	v.buf.InsertNewline(v.textLocation)
	v.HandleMove(input.MoveRight)
	v.MarkRedraw(true)
}

func (v *View) deleteBackward() {
	if v.textLocation.LineIdx == 0 && v.textLocation.GraphemeIdx == 0 {
		return
	}
	v.HandleMove(input.MoveLeft)
	v.delete()
}

func (v *View) delete() {
	v.buf.Delete(v.textLocation)
	v.MarkRedraw(true)
}

func (v *View) insertRune(r rune) {
	oldCount := v.buf.GraphemeCount(v.textLocation.LineIdx)
	v.buf.InsertRune(r, v.textLocation)
	newCount := v.buf.GraphemeCount(v.textLocation.LineIdx)
	if newCount > oldCount {
		v.HandleMove(input.MoveRight)
	}
	v.MarkRedraw(true)
}

// CaretPosition returns the caret's screen position relative to the
// panel origin. Scroll maintenance guarantees the result lies within
// [0, size) on both axes.
func (v *View) CaretPosition() core.Position {
	return v.locationToPosition().SaturatingSub(v.scrollOffset)
}

// locationToPosition maps the caret's Location to an absolute screen
// Position: the row is the line index, the column is the display width
// of everything left of the caret.
func (v *View) locationToPosition() core.Position {
	return core.Position{
		Row: v.textLocation.LineIdx,
		Col: v.buf.WidthUntil(v.textLocation.LineIdx, v.textLocation.GraphemeIdx),
	}
}

// scrollIntoView corrects the scroll offset by the minimal shift that
// puts the caret back inside the panel, independently on each axis.
func (v *View) scrollIntoView() {
	pos := v.locationToPosition()
	v.scrollVertically(pos.Row)
	v.scrollHorizontally(pos.Col)
}

func (v *View) scrollVertically(to int) {
	switch {
	case to < v.scrollOffset.Row:
		v.scrollOffset.Row = to
		v.MarkRedraw(true)
	case to >= v.scrollOffset.Row+v.size.Height:
		v.scrollOffset.Row = to - v.size.Height + 1
		v.MarkRedraw(true)
	}
}

func (v *View) scrollHorizontally(to int) {
	switch {
	case to < v.scrollOffset.Col:
		v.scrollOffset.Col = to
		v.MarkRedraw(true)
	case to >= v.scrollOffset.Col+v.size.Width:
		v.scrollOffset.Col = to - v.size.Width + 1
		v.MarkRedraw(true)
	}
}

// CenterOnCaret recenters the viewport on the caret. This is the one
// scroll operation that is not minimal-shift.
func (v *View) CenterOnCaret() {
	pos := v.locationToPosition()
	v.scrollOffset.Row = max(pos.Row-(v.size.Height+1)/2, 0)
	v.scrollOffset.Col = max(pos.Col-(v.size.Width+1)/2, 0)
	v.MarkRedraw(true)
}

func (v *View) moveUp(step int) {
	v.textLocation.LineIdx = max(v.textLocation.LineIdx-step, 0)
	v.snapToValidGrapheme()
}

func (v *View) moveDown(step int) {
	v.textLocation.LineIdx += step
	v.snapToValidLine()
	v.snapToValidGrapheme()
}

func (v *View) moveRight() {
	count := v.buf.GraphemeCount(v.textLocation.LineIdx)
	if v.textLocation.GraphemeIdx < count {
		v.textLocation.GraphemeIdx++
		return
	}
	// Past the last grapheme: wrap to the start of the next line.
	v.moveToStartOfLine()
	v.moveDown(1)
}

func (v *View) moveLeft() {
	if v.textLocation.GraphemeIdx > 0 {
		v.textLocation.GraphemeIdx--
		return
	}
	// Before the first grapheme: wrap to the end of the previous line.
	if v.textLocation.LineIdx > 0 {
		v.moveUp(1)
		v.moveToEndOfLine()
	}
}

func (v *View) moveToStartOfLine() {
	v.textLocation.GraphemeIdx = 0
}

func (v *View) moveToEndOfLine() {
	v.textLocation.GraphemeIdx = v.buf.GraphemeCount(v.textLocation.LineIdx)
}

// snapToValidGrapheme clamps the caret so it never sits past the end of
// its line.
func (v *View) snapToValidGrapheme() {
	v.textLocation.GraphemeIdx = min(
		v.textLocation.GraphemeIdx,
		v.buf.GraphemeCount(v.textLocation.LineIdx),
	)
}

// snapToValidLine clamps the line index to [0, height]; one past the
// last line is legal (appending position).
func (v *View) snapToValidLine() {
	v.textLocation.LineIdx = min(v.textLocation.LineIdx, v.buf.Height())
}

// NeedsRedraw implements Component.
func (v *View) NeedsRedraw() bool {
	return v.needsRedraw
}

// MarkRedraw implements Component.
func (v *View) MarkRedraw(value bool) {
	v.needsRedraw = value
}

// SetSize implements Component. Resizing re-runs scroll maintenance so
// the caret stays visible in the new geometry.
func (v *View) SetSize(size core.Size) {
	v.size = size
	v.scrollIntoView()
	v.MarkRedraw(true)
}

// Draw renders the visible slice of every row in the panel. The
// horizontal slice bounds are scroll columns applied as grapheme
// indices; a Full-width glyph at the edge is shown whole rather than
// sub-split.
func (v *View) Draw(r Renderer, originRow int) error {
	left := v.scrollOffset.Col
	right := v.scrollOffset.Col + v.size.Width
	for row := originRow; row < originRow+v.size.Height; row++ {
		lineIdx := row - originRow + v.scrollOffset.Row
		line := v.buf.Line(lineIdx)
		if line == nil {
			if err := r.PrintRow(row, emptyRowMarker); err != nil {
				return err
			}
			continue
		}
		if err := r.PrintRow(row, line.VisibleGraphemes(left, right)); err != nil {
			return err
		}
	}
	return nil
}
