package list

import (
	"github.com/npillmayer/ternary"
)

// insert returns a copy of subtree n with a new leaf carrying item placed before
// or after index idx. idx must be in range of n.
//
// Insertion prefers to keep the tree shallow: a leaf becomes a pair, a branch
// with a free slot receives the new leaf directly if possible. A full branch
// whose outer child is at least as large as its siblings gets wrapped as a
// whole when inserting at its outer edge; this keeps long runs of appends from
// cascading into the outermost leaf.
func (n *node[T]) insert(idx int, item T, after bool) *node[T] {
	if n.isLeaf() {
		if after {
			return pack(n, leaf(item), nil)
		}
		return pack(leaf(item), n, nil)
	}
	ch, c := n.children()
	pos, offset := n.route(idx)
	if c < 3 {
		switch {
		case !after && idx == 0:
			return n.spliced(0, leaf(item))
		case after && idx == n.size-1:
			return n.spliced(c, leaf(item))
		case ch[pos].isLeaf():
			if after {
				return n.spliced(pos+1, leaf(item))
			}
			return n.spliced(pos, leaf(item))
		}
	} else {
		ls, ms, rs := ch[0].size, ch[1].size, ch[2].size
		switch {
		case !after && idx == 0 && ls >= ms && ls >= rs:
			tracer().Debugf("insert: wrapping %s at front", n)
			return pack(leaf(item), n, nil)
		case after && idx == n.size-1 && rs >= ls && rs >= ms:
			tracer().Debugf("insert: wrapping %s at back", n)
			return pack(n, leaf(item), nil)
		}
	}
	return n.withChild(pos, ch[pos].insert(offset, item, after))
}

// dissoc returns a copy of subtree n without the leaf at index idx. A subtree
// emptied by the removal vanishes from its parent, and a branch left with a
// single child is replaced by that child.
func (n *node[T]) dissoc(idx int) *node[T] {
	if n.isLeaf() {
		return emptyBranch[T]()
	}
	ch, _ := n.children()
	pos, offset := n.route(idx)
	ch[pos] = ch[pos].dissoc(offset)
	return pack(ch[0], ch[1], ch[2])
}

// slice returns the items [start…end) of subtree n as a tree, re-using complete
// subtrees of n.
func (n *node[T]) slice(start, end int) *node[T] {
	if start == end {
		return emptyBranch[T]()
	}
	if start == 0 && end == n.size {
		return n
	}
	assertThat(!n.isLeaf(), ternary.ErrInvalidSlice, "cannot slice [%d…%d) from leaf", start, end)
	l, m, r := n.left, n.middle, n.right
	ls, ms := l.len(), m.len()
	switch {
	case start >= ls+ms:
		return r.slice(start-ls-ms, end-ls-ms)
	case start >= ls:
		if end <= ls+ms {
			return m.slice(start-ls, end-ls)
		}
		return concat(m.slice(start-ls, ms), r.slice(0, end-ls-ms))
	case end <= ls:
		return l.slice(start, end)
	case end <= ls+ms:
		return concat(l.slice(start, ls), m.slice(0, end-ls))
	}
	return concat(l.slice(start, ls), m, r.slice(0, end-ls-ms))
}

// concat joins trees in order. Empty trees are skipped, two or three trees are
// wrapped by a new branch, larger numbers of trees are partitioned with
// ternary.Divide.
func concat[T any](trees ...*node[T]) *node[T] {
	operands := make([]*node[T], 0, len(trees))
	for _, t := range trees {
		if t != nil && t.size > 0 {
			operands = append(operands, t)
		}
	}
	return concatNonEmpty(operands)
}

func concatNonEmpty[T any](trees []*node[T]) *node[T] {
	switch len(trees) {
	case 0:
		return emptyBranch[T]()
	case 1:
		return trees[0]
	case 2:
		return pack(trees[0], trees[1], nil)
	case 3:
		return pack(trees[0], trees[1], trees[2])
	}
	l, m, _ := ternary.Divide(len(trees))
	return pack(
		concatNonEmpty(trees[:l]),
		concatNonEmpty(trees[l:l+m]),
		concatNonEmpty(trees[l+m:]),
	)
}

// reverse mirrors subtree n. Only populated slots are mirrored, so compactness
// is preserved.
func (n *node[T]) reverse() *node[T] {
	if n.isLeaf() {
		return n
	}
	ch, c := n.children()
	switch c {
	case 0:
		return n
	case 2:
		return pack(ch[1].reverse(), ch[0].reverse(), nil)
	}
	return pack(ch[2].reverse(), ch[1].reverse(), ch[0].reverse())
}

// mapNode applies f to every value of subtree n, preserving the shape.
func mapNode[T, U any](n *node[T], f func(T) U) *node[U] {
	if n == nil {
		return nil
	}
	if n.isLeaf() {
		return leaf(f(n.value))
	}
	return &node[U]{
		kind:   branchNode,
		size:   n.size,
		depth:  n.depth,
		left:   mapNode(n.left, f),
		middle: mapNode(n.middle, f),
		right:  mapNode(n.right, f),
	}
}

// find returns the index of the first value in subtree n matching pred, or -1.
func (n *node[T]) find(pred func(T) bool) int {
	i, found := 0, false
	n.walk(func(v T) bool {
		if pred(v) {
			found = true
			return false
		}
		i++
		return true
	})
	if !found {
		return -1
	}
	return i
}

func sameShape[T any](a, b *node[T], eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.kind != b.kind || a.size != b.size {
		return false
	}
	if a.isLeaf() {
		return eq(a.value, b.value)
	}
	return sameShape(a.left, b.left, eq) &&
		sameShape(a.middle, b.middle, eq) &&
		sameShape(a.right, b.right, eq)
}

// --- Balancing -------------------------------------------------------------

// unbalanced reports if a tree of the given depth and size should be rebuilt.
// This is the case if depth exceeds threshold and 3^(depth−threshold) > size.
// A negative threshold switches balancing off.
func unbalanced(depth, size, threshold int) bool {
	if threshold < 0 || depth <= threshold {
		return false
	}
	p := 1
	for i := 0; i < depth-threshold; i++ {
		if p > size/3 { // 3p > size
			return true
		}
		p *= 3
	}
	return false
}

// rebalanced builds a balanced tree from the leafs of n. Leafs are shared with n.
func (n *node[T]) rebalanced() *node[T] {
	leafs := n.collectLeafs(make([]*node[T], 0, n.size))
	return build(leafs)
}
