package input

import (
	"unicode"

	"github.com/ecrosby/tern/internal/terminal"
)

// Decode converts a terminal event into an editor command. The second
// return value is false for events the editor ignores.
func Decode(ev terminal.Event) (Command, bool) {
	switch ev.Type {
	case terminal.EventResize:
		return System{Kind: SystemResize, Size: ev.Size}, true
	case terminal.EventKey:
		return decodeKey(ev)
	default:
		return nil, false
	}
}

func decodeKey(ev terminal.Event) (Command, bool) {
	switch ev.Key {
	case terminal.KeyCtrlQ:
		return System{Kind: SystemQuit}, true
	case terminal.KeyCtrlS:
		return System{Kind: SystemSave}, true
	case terminal.KeyEscape:
		return System{Kind: SystemDismiss}, true
	case terminal.KeyEnter:
		return Edit{Kind: EditInsertNewline}, true
	case terminal.KeyBackspace:
		return Edit{Kind: EditDeleteBackward}, true
	case terminal.KeyDelete:
		return Edit{Kind: EditDelete}, true
	case terminal.KeyTab:
		return Edit{Kind: EditInsert, Rune: '\t'}, true
	case terminal.KeyUp:
		return MoveUp, true
	case terminal.KeyDown:
		return MoveDown, true
	case terminal.KeyLeft:
		return MoveLeft, true
	case terminal.KeyRight:
		return MoveRight, true
	case terminal.KeyPageUp:
		return MovePageUp, true
	case terminal.KeyPageDown:
		return MovePageDown, true
	case terminal.KeyHome:
		return MoveStartOfLine, true
	case terminal.KeyEnd:
		return MoveEndOfLine, true
	case terminal.KeyRune:
		if ev.Rune != 0 && unicode.IsPrint(ev.Rune) {
			return Edit{Kind: EditInsert, Rune: ev.Rune}, true
		}
		return nil, false
	default:
		return nil, false
	}
}
