package ui

import (
	"github.com/mattn/go-runewidth"

	"github.com/ecrosby/tern/internal/core"
	"github.com/ecrosby/tern/internal/input"
	"github.com/ecrosby/tern/internal/text"
)

// CommandBar is the one-row prompt used for save-as input. The typed
// value is a Line so editing shares the grapheme model.
type CommandBar struct {
	prompt      string
	value       *text.Line
	needsRedraw bool
	size        core.Size
}

// NewCommandBar creates an empty command bar.
func NewCommandBar() *CommandBar {
	return &CommandBar{value: text.NewLine("")}
}

// HandleEdit applies an edit command to the typed value. Newline and
// forward delete do not apply to a one-line prompt.
func (c *CommandBar) HandleEdit(cmd input.Edit) {
	switch cmd.Kind {
	case input.EditInsert:
		c.value.AppendRune(cmd.Rune)
	case input.EditDeleteBackward:
		c.value.DeleteLast()
	case input.EditDelete, input.EditInsertNewline:
	}
	c.MarkRedraw(true)
}

// CaretCol returns the caret's column within the bar: after the prompt
// and the typed value, clamped to the bar width.
func (c *CommandBar) CaretCol() int {
	return min(runewidth.StringWidth(c.prompt)+c.value.Width(), c.size.Width)
}

// Value returns the typed text.
func (c *CommandBar) Value() string {
	return c.value.String()
}

// SetPrompt replaces the prompt text.
func (c *CommandBar) SetPrompt(prompt string) {
	c.prompt = prompt
	c.MarkRedraw(true)
}

// ClearValue discards the typed text.
func (c *CommandBar) ClearValue() {
	c.value = text.NewLine("")
	c.MarkRedraw(true)
}

// NeedsRedraw implements Component.
func (c *CommandBar) NeedsRedraw() bool {
	return c.needsRedraw
}

// MarkRedraw implements Component.
func (c *CommandBar) MarkRedraw(value bool) {
	c.needsRedraw = value
}

// SetSize implements Component.
func (c *CommandBar) SetSize(size core.Size) {
	c.size = size
	c.MarkRedraw(true)
}

// Draw implements Component. When the value is wider than the space
// after the prompt, only its tail is shown so the caret stays visible.
func (c *CommandBar) Draw(r Renderer, originRow int) error {
	areaForValue := max(c.size.Width-runewidth.StringWidth(c.prompt), 0)
	valueEnd := c.value.GraphemeCount()
	valueStart := max(valueEnd-areaForValue, 0)
	return r.PrintRow(originRow, c.prompt+c.value.VisibleGraphemes(valueStart, valueEnd))
}
