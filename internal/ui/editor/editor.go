// Package editor implements in-place renaming of a chart section heading.
//
// An Editor is either in Display or Editing state. Opening it snapshots the
// header's children and swaps them for a rename form; committing or cancelling
// puts the snapshot back.
package editor

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bjhara/temp-hum-logger/internal/ui/alias"
	"github.com/bjhara/temp-hum-logger/internal/ui/sanitize"
	"github.com/bjhara/temp-hum-logger/internal/ui/surface"
)

type State int

const (
	Display State = iota
	Editing
)

func (s State) String() string {
	switch s {
	case Display:
		return "display"
	case Editing:
		return "editing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// HeadingTag marks the captured child whose text is rewritten on commit.
const HeadingTag = "h2"

type Editor struct {
	doc      surface.Document
	aliases  *alias.Store
	clientID string
	header   surface.Element
	logger   *slog.Logger

	state    State
	captured []surface.Element
	form     surface.Element
	input    surface.Element
}

// New binds an editor to the header element of the section showing clientID.
func New(doc surface.Document, aliases *alias.Store, clientID string, header surface.Element, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		doc:      doc,
		aliases:  aliases,
		clientID: clientID,
		header:   header,
		logger:   logger.With("client_id", clientID),
	}
}

func (e *Editor) State() State {
	return e.state
}

// Input returns the text input while editing, nil otherwise.
func (e *Editor) Input() surface.Element {
	return e.input
}

// Open replaces the header content with the rename form. Opening an editor
// that is already editing does nothing.
func (e *Editor) Open() {
	if e.state == Editing {
		return
	}

	e.captured = e.header.Children()
	for _, c := range e.captured {
		c.Remove()
	}

	form := e.doc.CreateElement("form")
	form.SetAttr("class", "rename")

	input := e.doc.CreateElement("input")
	input.SetAttr("type", "text")
	input.SetAttr("name", "name")
	input.SetValue(e.aliases.DisplayName(e.clientID))

	save := e.doc.CreateElement("button")
	save.SetAttr("type", "submit")
	save.SetText("Save")

	cancel := e.doc.CreateElement("button")
	cancel.SetAttr("type", "button")
	cancel.SetAttr("class", "cancel")
	cancel.SetText("Cancel")

	form.Append(input, save, cancel)
	form.OnSubmit(e.submit)
	cancel.OnClick(e.Cancel)

	e.header.Append(form)
	e.form = form
	e.input = input
	e.state = Editing

	input.Focus()
	input.SelectAll()
	e.logger.Debug("editor opened")
}

// Commit stores value as the alias and restores the header. It reports false,
// leaving the form open, when value is blank or the alias could not be stored.
func (e *Editor) Commit(value string) (bool, error) {
	if e.state != Editing {
		return false, nil
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return false, nil
	}
	if err := e.aliases.Set(e.clientID, value); err != nil {
		return false, err
	}

	name := sanitize.Sanitize(e.aliases.DisplayName(e.clientID))
	for _, c := range e.captured {
		if c.Tag() == HeadingTag {
			c.SetText(name)
		}
	}
	e.restore()
	e.logger.Info("alias updated", "alias", name)
	return true, nil
}

// Cancel drops the form and restores the header untouched.
func (e *Editor) Cancel() {
	if e.state != Editing {
		return
	}
	e.restore()
	e.logger.Debug("editor cancelled")
}

func (e *Editor) submit() {
	if e.input == nil {
		return
	}
	if _, err := e.Commit(e.input.Value()); err != nil {
		e.logger.Error("alias update failed", "error", err)
	}
}

func (e *Editor) restore() {
	e.form.Remove()
	e.header.Append(e.captured...)
	e.captured = nil
	e.form = nil
	e.input = nil
	e.state = Display
}
