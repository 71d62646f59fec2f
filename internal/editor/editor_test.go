package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecrosby/tern/internal/config"
	"github.com/ecrosby/tern/internal/core"
	"github.com/ecrosby/tern/internal/input"
	"github.com/ecrosby/tern/internal/terminal"
)

// fakeScreen plays back a scripted event sequence and records drawing.
type fakeScreen struct {
	size   core.Size
	events []terminal.Event
	next   int

	rows     map[int]string
	inverted map[int]string
	caret    core.Position
	title    string
}

func newFakeScreen(height, width int, events ...terminal.Event) *fakeScreen {
	return &fakeScreen{
		size:     core.Size{Height: height, Width: width},
		events:   events,
		rows:     make(map[int]string),
		inverted: make(map[int]string),
	}
}

func (f *fakeScreen) Size() core.Size { return f.size }

func (f *fakeScreen) PrintRow(row int, text string) error {
	f.rows[row] = text
	return nil
}

func (f *fakeScreen) PrintInvertedRow(row int, text string) error {
	f.inverted[row] = text
	return nil
}

func (f *fakeScreen) MoveCaret(pos core.Position) { f.caret = pos }
func (f *fakeScreen) HideCaret()                  {}
func (f *fakeScreen) SetTitle(title string)       { f.title = title }
func (f *fakeScreen) Show()                       {}

// PollEvent returns the next scripted event, then Ctrl-Q presses so a
// bad script can never hang the loop.
func (f *fakeScreen) PollEvent() terminal.Event {
	if f.next < len(f.events) {
		ev := f.events[f.next]
		f.next++
		return ev
	}
	return keyEvent(terminal.KeyCtrlQ)
}

func keyEvent(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func runeEvents(s string) []terminal.Event {
	events := make([]terminal.Event, 0, len(s))
	for _, r := range s {
		events = append(events, terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r})
	}
	return events
}

func TestQuitConfirmationOnDirtyBuffer(t *testing.T) {
	events := runeEvents("a")
	events = append(events, keyEvent(terminal.KeyCtrlQ), keyEvent(terminal.KeyCtrlQ), keyEvent(terminal.KeyCtrlQ))
	screen := newFakeScreen(10, 40, events...)

	e := New(screen, config.Default(), nil)
	e.Run()

	if screen.next != len(events) {
		t.Errorf("expected all %d events consumed, got %d", len(events), screen.next)
	}
	// The second Ctrl-Q shows the unsaved-changes warning.
	msg := screen.rows[9]
	if !strings.Contains(msg, "unsaved changes") {
		t.Errorf("expected unsaved-changes warning on the message row, got %q", msg)
	}
}

func TestQuitImmediatelyWhenClean(t *testing.T) {
	screen := newFakeScreen(10, 40, keyEvent(terminal.KeyCtrlQ))

	e := New(screen, config.Default(), nil)
	e.Run()

	if screen.next != 1 {
		t.Errorf("expected a single event, got %d", screen.next)
	}
}

func TestEditingRedrawsAndMovesCaret(t *testing.T) {
	events := runeEvents("hi")
	events = append(events, keyEvent(terminal.KeyEnter))
	events = append(events, runeEvents("yo")...)
	screen := newFakeScreen(10, 40, events...)

	e := New(screen, config.Default(), nil)
	e.Run() // safety Ctrl-Q quits: buffer dirty, so 3 presses consumed

	if got := screen.rows[0]; got != "hi" {
		t.Errorf("expected first row %q, got %q", "hi", got)
	}
	if got := screen.rows[1]; got != "yo" {
		t.Errorf("expected second row %q, got %q", "yo", got)
	}
	// Rows past the buffer show the empty marker.
	if got := screen.rows[2]; got != "_" {
		t.Errorf("expected empty-row marker, got %q", got)
	}
	if screen.caret != (core.Position{Row: 1, Col: 2}) {
		t.Errorf("expected caret at row 1 col 2, got %+v", screen.caret)
	}
}

func TestSavePromptFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")

	events := runeEvents("hello")
	events = append(events, keyEvent(terminal.KeyCtrlS))
	events = append(events, runeEvents(path)...)
	events = append(events, keyEvent(terminal.KeyEnter))
	events = append(events, keyEvent(terminal.KeyCtrlQ))
	screen := newFakeScreen(10, 200, events...)

	e := New(screen, config.Default(), nil)
	e.Run()

	// Clean after save, so the single Ctrl-Q was enough.
	if screen.next != len(events) {
		t.Errorf("expected all %d events consumed, got %d", len(events), screen.next)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file to be saved: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("expected %q, got %q", "hello\n", string(data))
	}
	if !strings.Contains(screen.rows[9], "saved successfully") {
		t.Errorf("expected save confirmation, got %q", screen.rows[9])
	}
}

func TestSavePromptDismiss(t *testing.T) {
	screen := newFakeScreen(10, 40)
	e := New(screen, config.Default(), nil)

	e.processCommand(input.Edit{Kind: input.EditInsert, Rune: 'x'})
	e.processCommand(input.System{Kind: input.SystemSave})
	if !e.inPrompt() {
		t.Fatal("expected save prompt to be active")
	}
	e.processCommand(input.Edit{Kind: input.EditInsert, Rune: 'n'})
	e.processCommand(input.System{Kind: input.SystemDismiss})
	if e.inPrompt() {
		t.Fatal("expected prompt dismissed")
	}

	e.refreshScreen()
	if !strings.Contains(screen.rows[9], "Save aborted") {
		t.Errorf("expected abort message, got %q", screen.rows[9])
	}
	if e.commandBar.Value() != "" {
		t.Errorf("expected cleared prompt value, got %q", e.commandBar.Value())
	}
}

func TestPromptShowsInCommandBar(t *testing.T) {
	screen := newFakeScreen(10, 40)
	e := New(screen, config.Default(), nil)

	e.processCommand(input.System{Kind: input.SystemSave})
	e.processCommand(input.Edit{Kind: input.EditInsert, Rune: 'a'})
	e.processCommand(input.Edit{Kind: input.EditInsert, Rune: 'b'})
	e.refreshScreen()

	want := "Save as (Esc to cancel): ab"
	if screen.rows[9] != want {
		t.Errorf("expected prompt row %q, got %q", want, screen.rows[9])
	}
	wantCaret := core.Position{Row: 9, Col: len(want)}
	if screen.caret != wantCaret {
		t.Errorf("expected caret %+v, got %+v", wantCaret, screen.caret)
	}

	// Moves do not apply while the prompt is open.
	e.processCommand(input.MoveDown)
	if e.commandBar.Value() != "ab" {
		t.Errorf("expected value unchanged, got %q", e.commandBar.Value())
	}
}

func TestResizeRelayout(t *testing.T) {
	events := []terminal.Event{
		{Type: terminal.EventResize, Size: core.Size{Height: 6, Width: 20}},
		keyEvent(terminal.KeyCtrlQ),
	}
	screen := newFakeScreen(10, 40, events...)

	e := New(screen, config.Default(), nil)
	e.Run()

	if e.terminalSize != (core.Size{Height: 6, Width: 20}) {
		t.Errorf("expected terminal size 6x20, got %+v", e.terminalSize)
	}
	if _, ok := screen.inverted[4]; !ok {
		t.Error("expected status bar on row 4 after resize")
	}
}

func TestStatusBarContents(t *testing.T) {
	screen := newFakeScreen(10, 60, keyEvent(terminal.KeyCtrlQ))

	e := New(screen, config.Default(), nil)
	e.Run()

	status := screen.inverted[8]
	if !strings.Contains(status, "[default]") {
		t.Errorf("expected placeholder file name in status bar, got %q", status)
	}
	if e.title != "[default] - tern" {
		t.Errorf("expected title %q, got %q", "[default] - tern", e.title)
	}
}

func TestLoadFileMissingShowsError(t *testing.T) {
	screen := newFakeScreen(10, 80, keyEvent(terminal.KeyCtrlQ))

	e := New(screen, config.Default(), nil)
	e.LoadFile(filepath.Join(t.TempDir(), "absent.txt"))
	e.Run()

	if !strings.Contains(screen.rows[9], "could not open file") {
		t.Errorf("expected load error message, got %q", screen.rows[9])
	}
}
