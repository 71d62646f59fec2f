// Package input decodes terminal events into the abstract commands the
// editor understands: text edits, caret moves, and system actions.
package input

import "github.com/ecrosby/tern/internal/core"

// Command is an abstract editor command. The concrete types are Edit,
// Move and System.
type Command interface {
	isCommand()
}

// EditKind enumerates the text-mutating commands.
type EditKind uint8

const (
	// EditInsert inserts the command's rune at the caret.
	EditInsert EditKind = iota
	// EditDelete removes the grapheme at the caret (forward delete).
	EditDelete
	// EditDeleteBackward removes the grapheme before the caret.
	EditDeleteBackward
	// EditInsertNewline splits the current line at the caret.
	EditInsertNewline
)

// Edit is a text-mutating command. Rune is meaningful only for
// EditInsert.
type Edit struct {
	Kind EditKind
	Rune rune
}

func (Edit) isCommand() {}

// Move is a caret-movement command.
type Move uint8

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveStartOfLine
	MoveEndOfLine
)

func (Move) isCommand() {}

// SystemKind enumerates the session-level commands.
type SystemKind uint8

const (
	// SystemSave saves the document, prompting for a name if needed.
	SystemSave SystemKind = iota
	// SystemQuit requests session shutdown.
	SystemQuit
	// SystemDismiss cancels the active prompt.
	SystemDismiss
	// SystemResize carries a new terminal size.
	SystemResize
)

// System is a session-level command. Size is meaningful only for
// SystemResize.
type System struct {
	Kind SystemKind
	Size core.Size
}

func (System) isCommand() {}
