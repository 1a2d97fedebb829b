// Package headless is an in-memory surface.Document backed by
// golang.org/x/net/html nodes. It dispatches click and submit events and can
// serialize the tree to HTML.
package headless

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bjhara/temp-hum-logger/internal/ui/surface"
)

type Document struct {
	elements map[*html.Node]*Element
	focused  *Element
}

func NewDocument() *Document {
	return &Document{elements: make(map[*html.Node]*Element)}
}

// CreateElement implements surface.Document.
func (d *Document) CreateElement(tag string) surface.Element {
	return d.create(tag)
}

// NewRoot returns a detached element to mount sections into.
func (d *Document) NewRoot(tag, id string) *Element {
	el := d.create(tag)
	if id != "" {
		el.SetAttr("id", id)
	}
	return el
}

// Focused returns the element that last received focus, or nil.
func (d *Document) Focused() *Element {
	return d.focused
}

func (d *Document) create(tag string) *Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

type Element struct {
	doc      *Document
	node     *html.Node
	clicks   []func()
	submits  []func()
	selected bool
}

func (e *Element) Tag() string {
	return e.node.Data
}

func (e *Element) SetAttr(name, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) Attr(name string) string {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

func (e *Element) Append(children ...surface.Element) {
	for _, child := range children {
		c := child.(*Element)
		if c.node.Parent != nil {
			c.node.Parent.RemoveChild(c.node)
		}
		e.node.AppendChild(c.node)
	}
}

func (e *Element) Remove() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

func (e *Element) Children() []surface.Element {
	var out []surface.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		out = append(out, e.doc.elements[c])
	}
	return out
}

func (e *Element) OnClick(fn func()) {
	e.clicks = append(e.clicks, fn)
}

func (e *Element) OnSubmit(fn func()) {
	e.submits = append(e.submits, fn)
}

func (e *Element) Value() string {
	return e.Attr("value")
}

func (e *Element) SetValue(value string) {
	e.SetAttr("value", value)
	e.selected = false
}

func (e *Element) Focus() {
	e.doc.focused = e
}

func (e *Element) SelectAll() {
	e.selected = true
}

// Selected reports whether the whole value is selected.
func (e *Element) Selected() bool {
	return e.selected
}

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element {
	if e.node.Parent == nil {
		return nil
	}
	return e.doc.elements[e.node.Parent]
}

// Click runs the click handlers. A submit button then submits its form.
func (e *Element) Click() {
	for _, fn := range e.clicks {
		fn()
	}
	if e.Tag() != "button" {
		return
	}
	if t := e.Attr("type"); t != "" && t != "submit" {
		return
	}
	for p := e.Parent(); p != nil; p = p.Parent() {
		if p.Tag() == "form" {
			p.Submit()
			return
		}
	}
}

// Submit runs the submit handlers.
func (e *Element) Submit() {
	for _, fn := range e.submits {
		fn()
	}
}

// Find returns the first descendant (or e itself) matching tag and, when class
// is non-empty, carrying that class.
func (e *Element) Find(tag, class string) *Element {
	all := e.FindAll(tag, class)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// FindAll returns every descendant (including e) matching tag and class in
// document order.
func (e *Element) FindAll(tag, class string) []*Element {
	var out []*Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			el := e.doc.elements[n]
			if class == "" || hasClass(el.Attr("class"), class) {
				out = append(out, el)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return out
}

// HTML serializes the element and its subtree.
func (e *Element) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func hasClass(attr, class string) bool {
	for _, c := range strings.Fields(attr) {
		if c == class {
			return true
		}
	}
	return false
}
