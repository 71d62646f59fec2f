package terminal

import "github.com/ecrosby/tern/internal/core"

// EventType discriminates terminal events.
type EventType uint8

const (
	// EventNone is an event the editor does not care about.
	EventNone EventType = iota
	// EventKey is a key press.
	EventKey
	// EventResize is a terminal size change.
	EventResize
)

// Key identifies a non-rune key press.
type Key uint8

const (
	// KeyRune means the press produced a printable rune.
	KeyRune Key = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEscape
	KeyCtrlQ
	KeyCtrlS
	// KeyNone is any key the editor has no use for.
	KeyNone
)

// Event is a decoded terminal event. Key and Rune are meaningful for
// EventKey; Size for EventResize.
type Event struct {
	Type EventType
	Key  Key
	Rune rune
	Size core.Size
}
