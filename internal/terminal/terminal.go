// Package terminal owns the process-wide terminal resource. It wraps a
// tcell screen behind a small row-oriented API so no other package
// imports tcell: Init acquires raw mode and the alternate screen, Fini
// releases them, and rendering happens through whole-row prints plus
// caret placement. Events come back as the package's own Event type.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/ecrosby/tern/internal/core"
)

// Terminal is the tcell-backed terminal. Acquire it once per session
// with New+Init and release it with Fini on every exit path.
type Terminal struct {
	screen tcell.Screen
}

// New creates a terminal over a fresh tcell screen.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init puts the terminal into raw mode on the alternate screen.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Fini restores the terminal to its previous state.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Size returns the terminal size.
func (t *Terminal) Size() core.Size {
	width, height := t.screen.Size()
	return core.Size{Height: height, Width: width}
}

// PrintRow writes text at the start of a row and clears the remainder.
func (t *Terminal) PrintRow(row int, text string) error {
	t.printRow(row, text, tcell.StyleDefault)
	return nil
}

// PrintInvertedRow writes text at the start of a row in reverse video
// and clears the remainder.
func (t *Terminal) PrintInvertedRow(row int, text string) error {
	t.printRow(row, text, tcell.StyleDefault.Reverse(true))
	return nil
}

// printRow walks the text's grapheme clusters, advancing by display
// width, then blanks out the rest of the row.
func (t *Terminal) printRow(row int, text string, style tcell.Style) {
	width, _ := t.screen.Size()
	col := 0
	state := -1
	for len(text) > 0 && col < width {
		var cluster string
		var clusterWidth int
		cluster, text, clusterWidth, state = uniseg.FirstGraphemeClusterInString(text, state)
		runes := []rune(cluster)
		if len(runes) == 0 {
			continue
		}
		t.screen.SetContent(col, row, runes[0], runes[1:], style)
		if clusterWidth < 1 {
			clusterWidth = 1
		}
		col += clusterWidth
	}
	for ; col < width; col++ {
		t.screen.SetContent(col, row, ' ', nil, style)
	}
}

// MoveCaret places and shows the caret at a screen position.
func (t *Terminal) MoveCaret(pos core.Position) {
	t.screen.ShowCursor(pos.Col, pos.Row)
}

// HideCaret hides the caret, used while redrawing.
func (t *Terminal) HideCaret() {
	t.screen.HideCursor()
}

// SetTitle sets the terminal window title.
func (t *Terminal) SetTitle(title string) {
	t.screen.SetTitle(title)
}

// Clear erases the whole screen.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Show flushes pending drawing to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// PollEvent blocks for the next event and converts it. It returns an
// EventNone event when the screen has been finalized.
func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

// convertEvent converts tcell events to our Event type. Mouse, paste and
// focus events come back as EventNone.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type: EventResize,
			Size: core.Size{Height: h, Width: w},
		}
	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts a tcell key to our Key type.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyCtrlQ:
		return KeyCtrlQ
	case tcell.KeyCtrlS:
		return KeyCtrlS
	default:
		return KeyNone
	}
}
