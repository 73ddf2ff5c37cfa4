package node

import (
	"github.com/opendocset/xmltree/internal/stack"
)

// cloneShallow copies the scalar fields of n (kind, name, content,
// attributes) and detaches everything structural: the copy has no
// parent, no siblings, and no child container.
func cloneShallow(n Node) Node {
	switch n := n.(type) {
	case *Text:
		c := &Text{}
		if n.content != nil {
			c.content = append([]byte(nil), n.content...)
		}
		return c
	case *Element:
		c := &Element{name: n.name}
		if n.attrs != nil {
			c.attrs = append([]Attr(nil), n.attrs...)
		}
		return c
	}
	return nil
}

type cloneFrame struct {
	src Node
	dst Node
}

// Clone copies n. A shallow clone copies only the scalar fields and
// yields an orphan without children. A deep clone copies the whole
// subtree, rebuilding parent and sibling links inside the copy so that
// only the top-level clone is detached from the original tree's context.
// The deep walk uses an explicit stack, so clone depth is not bounded by
// the goroutine call stack.
func Clone(n Node, deep bool) (Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	top := cloneShallow(n)
	if top == nil {
		return nil, ErrCorruptNode
	}
	if !deep {
		return top, nil
	}

	var work stack.Stack[cloneFrame]
	work.Push(cloneFrame{src: n, dst: top})
	for work.Len() > 0 {
		f := work.Pop()
		st := f.src.getTreeNode()
		if st.children == nil {
			continue
		}
		// preallocate so the copy also distinguishes "empty" from
		// "no container"
		f.dst.getTreeNode().children = make([]Node, 0, len(st.children))
		for _, c := range st.children {
			cc := cloneShallow(c)
			if cc == nil {
				return nil, ErrCorruptNode
			}
			if err := f.dst.AddChild(cc); err != nil {
				return nil, err
			}
			work.Push(cloneFrame{src: c, dst: cc})
		}
	}
	return top, nil
}
