package headless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement_TreeOperations(t *testing.T) {
	doc := NewDocument()
	root := doc.NewRoot("div", "charts")
	a := doc.CreateElement("section")
	b := doc.CreateElement("section")

	root.Append(a, b)
	require.Len(t, root.Children(), 2)
	assert.Same(t, a, root.Children()[0])
	assert.Same(t, b, root.Children()[1])

	// append moves
	root.Append(a)
	assert.Same(t, b, root.Children()[0])
	assert.Same(t, a, root.Children()[1])

	a.Remove()
	require.Len(t, root.Children(), 1)
	assert.Nil(t, a.(*Element).Parent())
}

func TestElement_TextAndAttributes(t *testing.T) {
	doc := NewDocument()
	h := doc.CreateElement("H2")
	assert.Equal(t, "h2", h.Tag())

	h.SetText("first")
	h.SetText("second")
	assert.Equal(t, "second", h.Text())

	h.SetAttr("class", "title")
	h.SetAttr("class", "title big")
	assert.Equal(t, "title big", h.Attr("class"))
	assert.Equal(t, "", h.Attr("missing"))
}

func TestElement_SubmitButtonSubmitsForm(t *testing.T) {
	doc := NewDocument()
	form := doc.CreateElement("form")
	save := doc.CreateElement("button")
	save.SetAttr("type", "submit")
	cancel := doc.CreateElement("button")
	cancel.SetAttr("type", "button")
	form.Append(save, cancel)

	submits, cancels := 0, 0
	form.OnSubmit(func() { submits++ })
	cancel.OnClick(func() { cancels++ })

	save.(*Element).Click()
	cancel.(*Element).Click()

	assert.Equal(t, 1, submits)
	assert.Equal(t, 1, cancels)
}

func TestElement_FocusAndSelection(t *testing.T) {
	doc := NewDocument()
	input := doc.CreateElement("input")
	input.SetValue("abc")
	input.Focus()
	input.SelectAll()

	assert.Same(t, input, doc.Focused())
	assert.True(t, input.(*Element).Selected())

	input.SetValue("abcd")
	assert.False(t, input.(*Element).Selected())
	assert.Equal(t, "abcd", input.Value())
}

func TestElement_HTMLEscapes(t *testing.T) {
	doc := NewDocument()
	root := doc.NewRoot("div", "")
	h := doc.CreateElement("h2")
	h.SetText(`a<b>&"c"`)
	root.Append(h)

	out, err := root.HTML()
	require.NoError(t, err)
	assert.Equal(t, `<div><h2>a&lt;b&gt;&amp;&#34;c&#34;</h2></div>`, out)
}

func TestElement_Find(t *testing.T) {
	doc := NewDocument()
	root := doc.NewRoot("div", "")
	btn := doc.CreateElement("button")
	btn.SetAttr("class", "edit primary")
	root.Append(doc.CreateElement("button"), btn)

	assert.Same(t, btn, root.Find("button", "edit"))
	assert.Len(t, root.FindAll("button", ""), 2)
	assert.Nil(t, root.Find("canvas", ""))
}
