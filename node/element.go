package node

// Attr is a single (name, value) attribute pair. Attribute order is
// preserved. Name uniqueness is not enforced at this layer; duplicates
// are the caller's responsibility.
type Attr struct {
	Name  string
	Value string
}

// Element is a general (non-text) node: a tag name plus an optional
// ordered attribute list.
type Element struct {
	treeNode
	name  string
	attrs []Attr
}

var _ Node = (*Element)(nil)

// NewElement creates a new Element with the given name. The element is an
// orphan: no parent, no siblings, and no child container allocated.
func NewElement(name string) *Element {
	return &Element{name: name}
}

func (Element) Type() NodeType {
	return ElementNodeType
}

func (e *Element) LocalName() string {
	return e.name
}

func (e *Element) AddChild(child Node) error {
	return addChild(e, child)
}

func (e *Element) InsertChild(child Node, idx int) error {
	return insertChild(e, child, idx)
}

func (e *Element) RemoveChild(child Node) (Node, error) {
	return removeChild(e, child)
}

func (e *Element) RemoveChildAt(idx int) (Node, error) {
	return removeChildAt(e, idx)
}

// SetAttribute appends the attribute to the element's attribute list.
// Setting the same name twice yields a duplicate entry.
func (e *Element) SetAttribute(name, value string) {
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// Attributes populates dst with the attributes of the element in order.
// If dst is nil a new slice is created. An element without attributes
// yields an empty slice.
func (e *Element) Attributes(dst []Attr) []Attr {
	if dst == nil {
		dst = make([]Attr, 0, len(e.attrs))
	} else {
		dst = dst[:0]
	}
	return append(dst, e.attrs...)
}

func (e *Element) AttributeCount() int {
	return len(e.attrs)
}
