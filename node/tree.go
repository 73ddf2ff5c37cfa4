package node

import (
	"fmt"

	"github.com/lestrrat-go/pdebug/v3"
)

// treeNode is the part of a Node that handles the tree structure.
// children is lazily allocated: nil means no child container exists yet,
// which is distinct from an allocated but empty container. parent and
// next are back references; ownership runs strictly parent to children.
type treeNode struct {
	parent   Node
	children []Node
	next     Node
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

func (n *treeNode) Parent() Node {
	return n.parent
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) FirstChild() Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *treeNode) LastChild() Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

func (n *treeNode) ChildCount() int {
	return len(n.children)
}

func (n *treeNode) Content(dst []byte) ([]byte, error) {
	result := dst
	for _, c := range n.children {
		var err error
		result, err = c.Content(result)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// addChild appends child at the end of parent's child order. The old last
// child's next pointer is re-aimed at the new child, and the new child's
// parent and next links are set so that the sibling chain keeps mirroring
// the slice order.
func addChild(parent, child Node) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	if parent.Type() == TextNodeType {
		return ErrChildrenForbidden
	}

	if pdebug.Enabled {
		pdebug.Printf("addChild %q -> %q", child.LocalName(), parent.LocalName())
	}

	pt := parent.getTreeNode()
	ct := child.getTreeNode()
	if pt.children == nil {
		pt.children = make([]Node, 0, 4)
	}
	if l := len(pt.children); l > 0 {
		pt.children[l-1].getTreeNode().next = child
	}
	ct.parent = parent
	ct.next = nil
	pt.children = append(pt.children, child)
	return nil
}

// insertChild splices child into parent's child order at idx. Inserting
// at the current child count is the same as addChild; anything beyond
// that is out of range.
func insertChild(parent, child Node, idx int) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	if parent.Type() == TextNodeType {
		return ErrChildrenForbidden
	}

	pt := parent.getTreeNode()
	if idx == len(pt.children) {
		return addChild(parent, child)
	}
	if idx < 0 || idx > len(pt.children) {
		return fmt.Errorf("insert at %d with %d children: %w", idx, len(pt.children), ErrIndexOutOfRange)
	}

	if pdebug.Enabled {
		pdebug.Printf("insertChild %q -> %q at %d", child.LocalName(), parent.LocalName(), idx)
	}

	ct := child.getTreeNode()
	ct.parent = parent
	ct.next = pt.children[idx]
	if idx > 0 {
		pt.children[idx-1].getTreeNode().next = child
	}
	pt.children = append(pt.children, nil)
	copy(pt.children[idx+1:], pt.children[idx:])
	pt.children[idx] = child
	return nil
}

// removeChildAt detaches the child at idx and returns it. The
// predecessor's next pointer skips over the gap, and the detached node's
// parent and next links are cleared so it becomes a valid root.
func removeChildAt(parent Node, idx int) (Node, error) {
	if parent == nil {
		return nil, ErrNilNode
	}
	pt := parent.getTreeNode()
	if idx < 0 || idx >= len(pt.children) {
		return nil, fmt.Errorf("remove at %d with %d children: %w", idx, len(pt.children), ErrIndexOutOfRange)
	}

	removed := pt.children[idx]
	rt := removed.getTreeNode()
	if idx > 0 {
		pt.children[idx-1].getTreeNode().next = rt.next
	}
	pt.children = append(pt.children[:idx], pt.children[idx+1:]...)
	rt.parent = nil
	rt.next = nil
	return removed, nil
}

func removeChild(parent, child Node) (Node, error) {
	if parent == nil || child == nil {
		return nil, ErrNilNode
	}
	idx := indexOf(parent, child)
	if idx < 0 {
		return nil, fmt.Errorf("%q under %q: %w", child.LocalName(), parent.LocalName(), ErrNotChild)
	}
	return removeChildAt(parent, idx)
}

func indexOf(parent, child Node) int {
	for i, c := range parent.getTreeNode().children {
		if c == child {
			return i
		}
	}
	return -1
}

// InsertBefore inserts newNode as a sibling immediately before ref. This
// computes ref's index first; when the index is already known, calling
// InsertChild on the parent directly is cheaper.
func InsertBefore(newNode, ref Node) error {
	if newNode == nil || ref == nil {
		return ErrNilNode
	}
	parent := ref.Parent()
	if parent == nil {
		return fmt.Errorf("%q: %w", ref.LocalName(), ErrNoParent)
	}
	idx := indexOf(parent, ref)
	if idx < 0 {
		return fmt.Errorf("%q under %q: %w", ref.LocalName(), parent.LocalName(), ErrNotChild)
	}
	return parent.InsertChild(newNode, idx)
}

// Remove detaches n from its parent. Fails when n has no parent.
func Remove(n Node) error {
	if n == nil {
		return ErrNilNode
	}
	parent := n.Parent()
	if parent == nil {
		return fmt.Errorf("%q: %w", n.LocalName(), ErrNoParent)
	}
	_, err := parent.RemoveChild(n)
	return err
}
