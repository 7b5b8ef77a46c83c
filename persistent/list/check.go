package list

import (
	"github.com/npillmayer/ternary"
)

// CheckStructure verifies the internal invariants of l's tree. It returns an
// error wrapping ternary.ErrCorruptTree for the first violation found, or nil.
//
// Invariants checked are:
//
//   - every branch caches the sum of its children's sizes and one more than
//     their maximal depth
//   - children are packed left, without gaps
//   - branches other than the root of an empty list have at least two children,
//     none of them empty
//
func (l List[T]) CheckStructure() error {
	if l.root == nil {
		return nil
	}
	if l.root.kind == branchNode && l.root.size == 0 {
		if l.root.left != nil || l.root.middle != nil || l.root.right != nil || l.root.depth != 1 {
			return corrupt("empty root branch has children or depth %d", l.root.depth)
		}
		return nil
	}
	return check(l.root)
}

func check[T any](n *node[T]) error {
	switch n.kind {
	case leafNode:
		if n.size != 1 || n.depth != 1 {
			return corrupt("leaf %v has size %d and depth %d", n.value, n.size, n.depth)
		}
		if n.left != nil || n.middle != nil || n.right != nil {
			return corrupt("leaf %v has children", n.value)
		}
		return nil
	case branchNode:
	default:
		return corrupt("unknown node kind %d", n.kind)
	}
	if (n.left == nil && n.middle != nil) || (n.middle == nil && n.right != nil) {
		return corrupt("branch %s is not compact", n)
	}
	ch, c := n.children()
	if c < 2 {
		return corrupt("branch %s has %d children", n, c)
	}
	size, depth := 0, 0
	for _, child := range ch[:c] {
		if child.size == 0 {
			return corrupt("branch %s has empty child", n)
		}
		if err := check(child); err != nil {
			return err
		}
		size += child.size
		depth = max(depth, child.depth)
	}
	if n.size != size {
		return corrupt("branch %s caches size %d, children sum up to %d", n, n.size, size)
	}
	if n.depth != depth+1 {
		return corrupt("branch %s caches depth %d, should be %d", n, n.depth, depth+1)
	}
	return nil
}

func corrupt(msg string, args ...interface{}) error {
	return ternary.Failure(ternary.ErrCorruptTree, "list: "+msg, args...)
}
