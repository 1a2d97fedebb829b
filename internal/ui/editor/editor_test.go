package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjhara/temp-hum-logger/internal/ui/alias"
	"github.com/bjhara/temp-hum-logger/internal/ui/headless"
	"github.com/bjhara/temp-hum-logger/internal/ui/surface"
)

type fixture struct {
	doc     *headless.Document
	kv      *alias.MemoryKV
	aliases *alias.Store
	header  *headless.Element
	heading surface.Element
	button  surface.Element
	editor  *Editor
}

func newFixture(t *testing.T, id string) *fixture {
	t.Helper()

	doc := headless.NewDocument()
	kv := alias.NewMemoryKV()
	aliases := alias.NewStore(kv, nil)

	header := doc.NewRoot("header", "")
	heading := doc.CreateElement("h2")
	heading.SetText(aliases.DisplayName(id))
	button := doc.CreateElement("button")
	button.SetAttr("class", "edit")
	button.SetAttr("type", "button")
	header.Append(heading, button)

	return &fixture{
		doc:     doc,
		kv:      kv,
		aliases: aliases,
		header:  header,
		heading: heading,
		button:  button,
		editor:  New(doc, aliases, id, header, nil),
	}
}

func TestOpen_ShowsPrefilledForm(t *testing.T) {
	f := newFixture(t, "s1")
	require.NoError(t, f.aliases.Set("s1", "Attic"))

	f.editor.Open()

	assert.Equal(t, Editing, f.editor.State())
	children := f.header.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "form", children[0].Tag())

	input := f.header.Find("input", "")
	require.NotNil(t, input)
	assert.Equal(t, "Attic", input.Value())
	assert.True(t, input.Selected())
	assert.Same(t, input, f.doc.Focused())
	assert.NotNil(t, f.header.Find("button", "cancel"))
}

func TestOpen_Twice(t *testing.T) {
	f := newFixture(t, "s1")

	f.editor.Open()
	f.editor.Open()

	require.Len(t, f.header.Children(), 1)
	assert.Len(t, f.header.FindAll("form", ""), 1)
}

func TestCommit_RoundTrip(t *testing.T) {
	f := newFixture(t, "s1")

	f.editor.Open()
	input := f.header.Find("input", "")
	input.SetValue("My Room")
	f.header.Find("button", "").Click() // Save is the first button

	assert.Equal(t, Display, f.editor.State())
	children := f.header.Children()
	require.Len(t, children, 2)
	assert.Same(t, f.heading, children[0])
	assert.Same(t, f.button, children[1])
	assert.Equal(t, "My Room", f.heading.Text())
	assert.Equal(t, "My Room", f.aliases.DisplayName("s1"))
	assert.Nil(t, f.header.Find("form", ""))
}

func TestCommit_BlankStaysEditing(t *testing.T) {
	f := newFixture(t, "s1")

	f.editor.Open()
	ok, err := f.editor.Commit("   ")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Editing, f.editor.State())
	assert.NotNil(t, f.header.Find("form", ""))
	assert.Equal(t, 0, f.kv.Len())
}

func TestCommit_SanitizedToEmptyFallsBackToID(t *testing.T) {
	f := newFixture(t, "s1")
	require.NoError(t, f.aliases.Set("s1", "Attic"))

	f.editor.Open()
	ok, err := f.editor.Commit(`<">`)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "s1", f.heading.Text())
	assert.Equal(t, 0, f.kv.Len())
}

func TestCommit_StripsUnsafeCharacters(t *testing.T) {
	f := newFixture(t, "s1")

	f.editor.Open()
	ok, err := f.editor.Commit(` Room<1>" `)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Room1", f.heading.Text())
}

func TestCancel_RestoresAndKeepsStore(t *testing.T) {
	f := newFixture(t, "s1")
	require.NoError(t, f.aliases.Set("s1", "Attic"))
	f.heading.SetText("Attic")

	f.editor.Open()
	f.header.Find("input", "").SetValue("Basement")
	f.header.Find("button", "cancel").Click()

	assert.Equal(t, Display, f.editor.State())
	children := f.header.Children()
	require.Len(t, children, 2)
	assert.Same(t, f.heading, children[0])
	assert.Same(t, f.button, children[1])
	assert.Equal(t, "Attic", f.heading.Text())
	assert.Equal(t, "Attic", f.aliases.DisplayName("s1"))
}

func TestCommit_NotEditing(t *testing.T) {
	f := newFixture(t, "s1")

	ok, err := f.editor.Commit("Kitchen")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, f.kv.Len())
}

type brokenKV struct{ *alias.MemoryKV }

func (b *brokenKV) Set(string, string) error { return errors.New("storage disabled") }

func TestCommit_StorageFailureKeepsForm(t *testing.T) {
	doc := headless.NewDocument()
	aliases := alias.NewStore(&brokenKV{MemoryKV: alias.NewMemoryKV()}, nil)
	header := doc.NewRoot("header", "")
	heading := doc.CreateElement("h2")
	heading.SetText("s1")
	header.Append(heading)
	ed := New(doc, aliases, "s1", header, nil)

	ed.Open()
	ok, err := ed.Commit("Kitchen")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, Editing, ed.State())
	assert.Equal(t, "s1", heading.Text())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "display", Display.String())
	assert.Equal(t, "editing", Editing.String())
	assert.Equal(t, "State(7)", State(7).String())
}
