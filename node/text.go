package node

import (
	"fmt"
)

// Text represents a text node. Text nodes are leaves; every child
// mutation on them fails with ErrChildrenForbidden.
type Text struct {
	treeNode
	content []byte
}

var _ Node = (*Text)(nil)

func NewText(content []byte) *Text {
	return &Text{
		content: content,
	}
}

func (Text) Type() NodeType {
	return TextNodeType
}

func (n *Text) LocalName() string {
	return TextNodeName
}

func (n *Text) Content(dst []byte) ([]byte, error) {
	return append(dst, n.content...), nil
}

// SetContent replaces the node's text payload.
func (n *Text) SetContent(b []byte) {
	n.content = b
}

func (n *Text) AddChild(Node) error {
	return ErrChildrenForbidden
}

func (n *Text) InsertChild(Node, int) error {
	return ErrChildrenForbidden
}

func (n *Text) RemoveChild(Node) (Node, error) {
	return nil, ErrChildrenForbidden
}

func (n *Text) RemoveChildAt(int) (Node, error) {
	return nil, ErrChildrenForbidden
}

// IsText reports whether n is a text node, and validates the type/name
// pairing while doing so: a text-typed node must be named TextNodeName
// and vice versa. A mismatch is data corruption and returns
// ErrCorruptNode rather than a guess.
func IsText(n Node) (bool, error) {
	if n == nil {
		return false, ErrNilNode
	}
	isText := n.Type() == TextNodeType
	if isText != (n.LocalName() == TextNodeName) {
		return false, fmt.Errorf("%q (type %d): %w", n.LocalName(), n.Type(), ErrCorruptNode)
	}
	return isText, nil
}

// LastTextChild returns a guaranteed, mutable text insertion point under
// n: n itself when it is a text node, otherwise the last text node among
// n's direct children. When no text child exists, an empty one is
// created, appended, and returned. Visited text nodes with no content
// allocated are normalized to empty content.
func LastTextChild(n Node) (*Text, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if t, ok := n.(*Text); ok {
		if t.content == nil {
			t.content = []byte{}
		}
		return t, nil
	}

	var last *Text
	for _, c := range n.getTreeNode().children {
		if t, ok := c.(*Text); ok {
			if t.content == nil {
				t.content = []byte{}
			}
			last = t
		}
	}
	if last != nil {
		return last, nil
	}

	t := NewText([]byte{})
	if err := n.AddChild(t); err != nil {
		return nil, err
	}
	return t, nil
}
