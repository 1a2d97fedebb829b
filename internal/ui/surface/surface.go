// Package surface is the DOM capability the page code is written against. The
// browser build implements it over syscall/js; tests use an in-memory tree.
package surface

// Document creates elements.
type Document interface {
	CreateElement(tag string) Element
}

// Element is a node of the rendered page.
type Element interface {
	// Tag returns the lower-case tag name.
	Tag() string
	SetAttr(name, value string)
	Attr(name string) string

	// SetText replaces all children with a single text node.
	SetText(text string)
	// Text returns the concatenated text content.
	Text() string

	// Append moves children to the end of this element, detaching them from
	// any previous parent.
	Append(children ...Element)
	// Remove detaches the element from its parent.
	Remove()
	// Children returns the element children in document order.
	Children() []Element

	OnClick(fn func())
	// OnSubmit registers fn for form submission. The host's default submit
	// action (navigation) is suppressed.
	OnSubmit(fn func())

	Value() string
	SetValue(value string)
	Focus()
	SelectAll()
}
