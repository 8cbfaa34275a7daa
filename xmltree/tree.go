// Package xmltree is the in-memory XML document abstraction consumed
// and produced by the transcoder: elements with ordered attributes and
// ordered child elements, plus text content. An element holds either
// text or child elements, never both.
package xmltree

type Attr struct {
	Name  string
	Value string
}

type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	children []*Element
	parent   *Element
}

// New returns a new document root element.
func New(name string) *Element {
	return &Element{Name: name}
}

// AddElement appends a new empty child element and returns it.
func (e *Element) AddElement(name string) *Element {
	child := &Element{Name: name, parent: e}
	e.children = append(e.children, child)
	return child
}

// AddText sets the element's text content.
func (e *Element) AddText(text string) {
	e.Text = text
}

// SetAttr appends or replaces an attribute, preserving order.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

func (e *Element) Children() []*Element {
	return e.children
}

func (e *Element) Parent() *Element {
	return e.parent
}

// RemoveChild removes child from e. Unknown children are ignored.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Detach removes e from its parent and returns e as a standalone
// root.
func (e *Element) Detach() *Element {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
	return e
}
