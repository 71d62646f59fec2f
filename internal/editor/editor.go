// Package editor runs the interactive session: one synchronous event
// loop that polls the terminal, decodes commands, applies them to the
// view or the active prompt, and repaints. There is no background work;
// every command runs to completion before the next is read.
package editor

import (
	"fmt"

	"github.com/ecrosby/tern/internal/config"
	"github.com/ecrosby/tern/internal/core"
	"github.com/ecrosby/tern/internal/input"
	"github.com/ecrosby/tern/internal/terminal"
	"github.com/ecrosby/tern/internal/ui"
)

// Name is the editor's name, used in the terminal title.
const Name = "tern"

// Screen is the terminal capability the editor needs. terminal.Terminal
// implements it; tests use a fake.
type Screen interface {
	Size() core.Size
	PrintRow(row int, text string) error
	PrintInvertedRow(row int, text string) error
	MoveCaret(pos core.Position)
	HideCaret()
	SetTitle(title string)
	Show()
	PollEvent() terminal.Event
}

// promptType is the active bottom-bar prompt, if any.
type promptType uint8

const (
	promptNone promptType = iota
	promptSave
)

// Editor owns the session state: the screen, the panels, the active
// prompt and the quit-confirmation counter.
type Editor struct {
	screen     Screen
	view       *ui.View
	statusBar  *ui.StatusBar
	messageBar *ui.MessageBar
	commandBar *ui.CommandBar
	prompt     promptType

	terminalSize core.Size
	title        string
	shouldQuit   bool
	quitTimes    int

	cfg config.Config
	log *Logger
}

// New creates an editor on the given screen. The screen must already be
// initialized; the caller owns its lifecycle.
func New(screen Screen, cfg config.Config, logger *Logger) *Editor {
	if logger == nil {
		logger = NullLogger
	}
	e := &Editor{
		screen:     screen,
		view:       ui.NewView(),
		statusBar:  ui.NewStatusBar(),
		messageBar: ui.NewMessageBar(cfg.MessageDuration),
		commandBar: ui.NewCommandBar(),
		cfg:        cfg,
		log:        logger,
	}
	e.handleResize(screen.Size())
	e.updateMessage("HELP: Ctrl-S = save | Ctrl-Q = quit")
	e.refreshStatus()
	return e
}

// LoadFile loads path into the view. Failure becomes a message, never a
// crash; the empty buffer stays in place.
func (e *Editor) LoadFile(path string) {
	if err := e.view.Load(path); err != nil {
		e.log.Error("load failed: %v", err)
		e.updateMessage(fmt.Sprintf("ERROR: could not open file: %s", path))
		return
	}
	e.log.Info("loaded %s", path)
	e.refreshStatus()
}

// Run drives the event loop until the session quits.
func (e *Editor) Run() {
	for {
		e.refreshScreen()
		if e.shouldQuit {
			return
		}
		ev := e.screen.PollEvent()
		if cmd, ok := input.Decode(ev); ok {
			e.processCommand(cmd)
		}
		e.refreshStatus()
	}
}

// refreshScreen repaints the dirty panels and places the caret. The
// command bar replaces the message bar while a prompt is active.
func (e *Editor) refreshScreen() {
	if e.terminalSize.Height == 0 || e.terminalSize.Width == 0 {
		return
	}
	bottomBarRow := e.terminalSize.Height - 1
	e.screen.HideCaret()
	if e.inPrompt() {
		ui.Render(e.commandBar, e.screen, bottomBarRow)
	} else {
		ui.Render(e.messageBar, e.screen, bottomBarRow)
	}
	if e.terminalSize.Height > 1 {
		ui.Render(e.statusBar, e.screen, e.terminalSize.Height-2)
	}
	if e.terminalSize.Height > 2 {
		ui.Render(e.view, e.screen, 0)
	}

	var caret core.Position
	if e.inPrompt() {
		caret = core.Position{Row: bottomBarRow, Col: e.commandBar.CaretCol()}
	} else {
		caret = e.view.CaretPosition()
	}
	e.screen.MoveCaret(caret)
	e.screen.Show()
}

// refreshStatus pushes the document snapshot to the status bar and the
// terminal title.
func (e *Editor) refreshStatus() {
	status := e.view.Status()
	title := fmt.Sprintf("%s - %s", status.FileName, Name)
	e.statusBar.UpdateStatus(status)
	if title != e.title {
		e.screen.SetTitle(title)
		e.title = title
	}
}

func (e *Editor) processCommand(cmd input.Command) {
	if sys, ok := cmd.(input.System); ok && sys.Kind == input.SystemResize {
		e.handleResize(sys.Size)
		return
	}
	if e.inPrompt() {
		e.processCommandDuringSave(cmd)
		return
	}
	e.processCommandNoPrompt(cmd)
}

func (e *Editor) processCommandNoPrompt(cmd input.Command) {
	if sys, ok := cmd.(input.System); ok && sys.Kind == input.SystemQuit {
		e.handleQuit()
		return
	}
	e.resetQuitTimes()

	switch c := cmd.(type) {
	case input.System:
		if c.Kind == input.SystemSave {
			e.handleSave()
		}
	case input.Edit:
		e.view.HandleEdit(c)
	case input.Move:
		e.view.HandleMove(c)
	}
}

// processCommandDuringSave feeds commands to the save-as prompt: Esc
// cancels, Enter saves under the typed name, edits modify the name, and
// everything else is ignored.
func (e *Editor) processCommandDuringSave(cmd input.Command) {
	switch c := cmd.(type) {
	case input.System:
		if c.Kind == input.SystemDismiss {
			e.setPrompt(promptNone)
			e.updateMessage("Save aborted.")
		}
	case input.Edit:
		if c.Kind == input.EditInsertNewline {
			name := e.commandBar.Value()
			e.saveAs(name)
			e.setPrompt(promptNone)
			return
		}
		e.commandBar.HandleEdit(c)
	case input.Move:
	}
}

// handleResize re-layouts the panels: the view gets all rows above the
// two one-row bottom bars.
func (e *Editor) handleResize(size core.Size) {
	e.terminalSize = size
	e.view.SetSize(core.Size{
		Height: max(size.Height-2, 0),
		Width:  size.Width,
	})
	barSize := core.Size{Height: 1, Width: size.Width}
	e.messageBar.SetSize(barSize)
	e.statusBar.SetSize(barSize)
	e.commandBar.SetSize(barSize)
}

// handleQuit implements quit confirmation: a dirty buffer takes
// cfg.QuitTimes consecutive Ctrl-Q presses to discard.
func (e *Editor) handleQuit() {
	modified := e.view.Status().IsModified
	if !modified || e.quitTimes+1 == e.cfg.QuitTimes {
		e.shouldQuit = true
		e.log.Info("session quit")
		return
	}
	e.updateMessage(fmt.Sprintf(
		"WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
		e.cfg.QuitTimes-e.quitTimes-1,
	))
	e.quitTimes++
}

func (e *Editor) resetQuitTimes() {
	if e.quitTimes > 0 {
		e.quitTimes = 0
		e.updateMessage("")
	}
}

// handleSave saves directly when the buffer has a path, otherwise opens
// the save-as prompt.
func (e *Editor) handleSave() {
	if e.view.IsFileLoaded() {
		e.save()
		return
	}
	e.setPrompt(promptSave)
}

func (e *Editor) save() {
	if err := e.view.Save(); err != nil {
		e.log.Error("save failed: %v", err)
		e.updateMessage("Error writing file!")
		return
	}
	e.log.Info("saved")
	e.updateMessage("File saved successfully.")
}

func (e *Editor) saveAs(name string) {
	if name == "" {
		e.updateMessage("Save aborted.")
		return
	}
	if err := e.view.SaveAs(name); err != nil {
		e.log.Error("save as %s failed: %v", name, err)
		e.updateMessage("Error writing file!")
		return
	}
	e.log.Info("saved as %s", name)
	e.updateMessage("File saved successfully.")
}

func (e *Editor) updateMessage(text string) {
	e.messageBar.UpdateMessage(text)
}

func (e *Editor) inPrompt() bool {
	return e.prompt == promptSave
}

func (e *Editor) setPrompt(p promptType) {
	switch p {
	case promptNone:
		// Make sure the message bar repaints over the prompt row.
		e.messageBar.MarkRedraw(true)
	case promptSave:
		e.commandBar.SetPrompt("Save as (Esc to cancel): ")
	}
	e.commandBar.ClearValue()
	e.prompt = p
}
