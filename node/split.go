package node

import (
	"fmt"

	"github.com/lestrrat-go/pdebug/v3"
)

// childPath computes the sequence of child indices leading from root down
// to n by walking n's parent links upward. Fails with ErrNotDescendant
// when the chain never reaches root; n == root yields an empty chain and
// is not a proper descendant either.
func childPath(root, n Node) ([]int, error) {
	var path []int
	for cur := n; cur != root; {
		parent := cur.Parent()
		if parent == nil {
			return nil, fmt.Errorf("no parent chain from %q to %q: %w", n.LocalName(), root.LocalName(), ErrNotDescendant)
		}
		idx := indexOf(parent, cur)
		if idx < 0 {
			return nil, fmt.Errorf("%q under %q: %w", cur.LocalName(), parent.LocalName(), ErrNotChild)
		}
		path = append(path, idx)
		cur = parent
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%q is the root itself: %w", n.LocalName(), ErrNotDescendant)
	}
	// collected bottom-up, flip to root-down order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// RemoveSiblings removes and returns, in order, every sibling strictly
// between from and to. Both endpoints stay in place; from == to returns
// an empty sequence without mutation. Siblinghood is validated before
// anything is detached. The walk captures each node's next pointer
// before removing it, since removal clears that pointer.
func RemoveSiblings(from, to Node) ([]Node, error) {
	if from == nil || to == nil {
		return nil, ErrNilNode
	}
	if from == to {
		return nil, nil
	}
	parent := from.Parent()
	if parent == nil || parent != to.Parent() {
		return nil, fmt.Errorf("%q and %q: %w", from.LocalName(), to.LocalName(), ErrNotSiblings)
	}
	reachable := false
	for cur := from.NextSibling(); cur != nil; cur = cur.NextSibling() {
		if cur == to {
			reachable = true
			break
		}
	}
	if !reachable {
		return nil, fmt.Errorf("%q does not follow %q: %w", to.LocalName(), from.LocalName(), ErrNotSiblings)
	}

	var removed []Node
	for cur := from.NextSibling(); cur != to; {
		next := cur.NextSibling()
		if _, err := parent.RemoveChild(cur); err != nil {
			return removed, err
		}
		removed = append(removed, cur)
		cur = next
	}
	return removed, nil
}

// SplitByChild splits root in two around marker, a descendant of root at
// any depth. The returned node is a shallow clone of root (same name and
// attributes, so tag context survives on both halves) that receives one
// half of root's top-level children; root is mutated in place to keep
// the other half. With afterMarker set, the clone receives every child
// from the marker's top-level ancestor onward; otherwise it receives
// every child before that ancestor. With removeMarker set, the marker's
// top-level ancestor is additionally dropped from the half that starts
// with it.
func SplitByChild(root, marker Node, afterMarker, removeMarker bool) (Node, error) {
	if root == nil || marker == nil {
		return nil, ErrNilNode
	}
	path, err := childPath(root, marker)
	if err != nil {
		return nil, err
	}
	topIdx := path[0]

	if pdebug.Enabled {
		pdebug.Printf("SplitByChild %q at child %d (afterMarker=%t removeMarker=%t)", root.LocalName(), topIdx, afterMarker, removeMarker)
	}

	clone, err := Clone(root, false)
	if err != nil {
		return nil, err
	}

	if afterMarker {
		for root.ChildCount() > topIdx {
			c, err := root.RemoveChildAt(topIdx)
			if err != nil {
				return nil, err
			}
			if err := clone.AddChild(c); err != nil {
				return nil, err
			}
		}
		if removeMarker {
			if _, err := clone.RemoveChildAt(0); err != nil {
				return nil, err
			}
		}
	} else {
		for i := 0; i < topIdx; i++ {
			c, err := root.RemoveChildAt(0)
			if err != nil {
				return nil, err
			}
			if err := clone.AddChild(c); err != nil {
				return nil, err
			}
		}
		if removeMarker {
			if _, err := root.RemoveChildAt(0); err != nil {
				return nil, err
			}
		}
	}
	return clone, nil
}
