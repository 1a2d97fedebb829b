//go:build js && wasm

// Package jsdom implements surface.Document over the browser DOM, the alias KV
// over window.localStorage, and chart.Plotter over Chart.js.
package jsdom

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/bjhara/temp-hum-logger/internal/ui/surface"
)

type Document struct {
	doc js.Value
}

func NewDocument() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// CreateElement implements surface.Document.
func (d *Document) CreateElement(tag string) surface.Element {
	return &Element{v: d.doc.Call("createElement", tag)}
}

// ElementByID looks up an existing element.
func (d *Document) ElementByID(id string) (*Element, error) {
	v := d.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, fmt.Errorf("element #%s not found", id)
	}
	return &Element{v: v}, nil
}

// Origin returns window.location.origin.
func Origin() string {
	return js.Global().Get("location").Get("origin").String()
}

type Element struct {
	v js.Value
}

func (e *Element) Tag() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

func (e *Element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *Element) Attr(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *Element) Text() string {
	return e.v.Get("textContent").String()
}

func (e *Element) Append(children ...surface.Element) {
	for _, c := range children {
		e.v.Call("append", c.(*Element).v)
	}
}

func (e *Element) Remove() {
	e.v.Call("remove")
}

func (e *Element) Children() []surface.Element {
	list := e.v.Get("children")
	n := list.Length()
	out := make([]surface.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{v: list.Index(i)})
	}
	return out
}

func (e *Element) OnClick(fn func()) {
	e.v.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	}))
}

func (e *Element) OnSubmit(fn func()) {
	e.v.Call("addEventListener", "submit", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		fn()
		return nil
	}))
}

func (e *Element) Value() string {
	return e.v.Get("value").String()
}

func (e *Element) SetValue(value string) {
	e.v.Set("value", value)
}

func (e *Element) Focus() {
	e.v.Call("focus")
}

func (e *Element) SelectAll() {
	e.v.Call("select")
}

// catch converts a thrown JS exception into an error.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = jsErr
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}
