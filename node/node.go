// Package node implements the in-memory XML tree that the rest of this
// module (and the templating layers above it) operate on. The tree is not
// a full DOM: there are exactly two node kinds, text and element, and the
// operations are the ones a template engine needs to build, mutate, clone,
// and split markup around insertion points.
//
// Trees are single-writer. Nothing in this package locks; callers that
// share a tree across goroutines must serialize access themselves.
package node

import (
	"errors"
)

// NodeType represents the kind of a node in the tree
type NodeType int

const (
	ElementNodeType NodeType = iota + 1
	TextNodeType
)

// TextNodeName is the name reserved for text nodes. An element carrying
// this name violates the type/name pairing invariant; IsText reports the
// violation instead of guessing.
const TextNodeName = "#text"

var (
	ErrNilNode           = errors.New("nil node")
	ErrChildrenForbidden = errors.New("children forbidden on text nodes")
	ErrIndexOutOfRange   = errors.New("child index out of range")
	ErrNotChild          = errors.New("node is not a child of this parent")
	ErrNotDescendant     = errors.New("node is not a descendant of root")
	ErrCorruptNode       = errors.New("node type and node name do not agree")
	ErrNoParent          = errors.New("node has no parent")
	ErrNotSiblings       = errors.New("nodes do not share a parent")
)

// Node is the common interface for all node kinds. The only
// implementations are *Element and *Text; a type switch over those two is
// exhaustive.
type Node interface {
	// returns the treeNode (the part of the Node that handles the tree structure)
	getTreeNode() *treeNode

	AddChild(Node) error
	InsertChild(Node, int) error
	RemoveChild(Node) (Node, error)
	RemoveChildAt(int) (Node, error)

	Type() NodeType

	// LocalName returns the name of the node. Text nodes always report
	// TextNodeName.
	LocalName() string

	// Content appends the concatenated text content of the node and its
	// descendants to dst and returns the result. If dst is nil, a new
	// slice is allocated.
	Content(dst []byte) ([]byte, error)

	FirstChild() Node
	LastChild() Node
	ChildCount() int

	NextSibling() Node
	Parent() Node
}
