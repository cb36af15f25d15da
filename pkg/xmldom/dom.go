// Package xmldom provides a minimal in-memory element tree for read-only
// queries: a tag, an ordered attribute list, ordered children, and optional
// direct text. Trees are built once, by Parse or by the mutators, and then
// treated as immutable by consumers.
package xmldom

// Attr is a single element attribute.
type Attr struct {
	name  string
	value string
}

func (a Attr) Name() string {
	return a.name
}

func (a Attr) Value() string {
	return a.value
}

// Element is one node of a document tree. Child order is document order
// and is load-bearing for lookups; attribute names are unique per element.
type Element struct {
	name     string
	attrs    []Attr
	children []*Element
	text     string
	hasText  bool
}

// New returns an element with the given tag and no attributes or children.
func New(name string) *Element {
	return &Element{name: name}
}

// Name returns the element tag.
func (e *Element) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// Attributes returns a read-only view of the element attributes, in the
// order they were set. Do not modify the returned slice.
func (e *Element) Attributes() []Attr {
	if e == nil {
		return nil
	}
	return e.attrs
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// Children returns a read-only view of the element children, in document
// order. Do not modify the returned slice.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	return e.children
}

// Text returns the element's direct text content, if any.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	return e.text
}

// HasText reports whether the element carries direct text content.
func (e *Element) HasText() bool {
	return e != nil && e.hasText
}

// SetAttr sets an attribute value. An existing attribute keeps its position
// in the attribute order; a new one is appended.
func (e *Element) SetAttr(name, value string) *Element {
	for i, a := range e.attrs {
		if a.name == name {
			e.attrs[i].value = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{name: name, value: value})
	return e
}

// SetText sets the element's direct text content.
func (e *Element) SetText(text string) *Element {
	e.text = text
	e.hasText = true
	return e
}

// Append adds children at the end of the element's child list.
func (e *Element) Append(children ...*Element) *Element {
	e.children = append(e.children, children...)
	return e
}
