package hashmap

import (
	"github.com/npillmayer/ternary"
)

// CheckStructure verifies the internal invariants of m's tree and returns an error
// wrapping ternary.ErrCorruptTree for the first violation found. Besides the
// structural invariants shared with lists (cached sizes and depths, compact
// layout, no single-child branches), it checks that
//
//   - every key hashes to the hash of its leaf, and is unique within it
//   - branches cache the hash range of their leafs
//   - children of a branch cover ascending, disjoint hash ranges
//
func (m Map[K, V]) CheckStructure() error {
	if m.root == nil {
		return nil
	}
	if !m.root.isLeaf() && m.root.size == 0 {
		if m.root.left != nil || m.root.middle != nil || m.root.right != nil || m.root.depth != 1 {
			return corrupt("empty root branch has children or depth %d", m.root.depth)
		}
		return nil
	}
	return m.check(m.root)
}

func (m Map[K, V]) check(n *node[K, V]) error {
	switch n.kind {
	case leafNode:
		return m.checkLeaf(n)
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
	for i, child := range ch[:c] {
		if child.size == 0 {
			return corrupt("branch %s has empty child", n)
		}
		if err := m.check(child); err != nil {
			return err
		}
		if i > 0 && ch[i-1].maxHash >= child.minHash {
			return corrupt("children of %s are not ordered by hash: %s, %s", n, ch[i-1], child)
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
	if n.minHash != ch[0].minHash || n.maxHash != ch[c-1].maxHash {
		return corrupt("branch %s caches wrong hash range", n)
	}
	return nil
}

func (m Map[K, V]) checkLeaf(n *node[K, V]) error {
	if n.left != nil || n.middle != nil || n.right != nil {
		return corrupt("leaf %s has children", n)
	}
	if len(n.pairs) == 0 || n.size != len(n.pairs) || n.depth != 1 {
		return corrupt("leaf %s has size %d and depth %d", n, n.size, n.depth)
	}
	if n.minHash != n.hash || n.maxHash != n.hash {
		return corrupt("leaf %s caches wrong hash range", n)
	}
	eq := m.keyEq()
	for i, p := range n.pairs {
		if h := m.hash(p.Key); h != n.hash {
			return corrupt("key %v hashes to %d, stored at %d", p.Key, h, n.hash)
		}
		for _, q := range n.pairs[:i] {
			if eq(p.Key, q.Key) {
				return corrupt("duplicate key %v in leaf %s", p.Key, n)
			}
		}
	}
	return nil
}

func corrupt(msg string, args ...interface{}) error {
	return ternary.Failure(ternary.ErrCorruptTree, "hashmap: "+msg, args...)
}
