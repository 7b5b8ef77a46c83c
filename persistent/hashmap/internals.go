package hashmap

import (
	"github.com/npillmayer/ternary"
	"github.com/npillmayer/ternary/hashing"
)

// assocNew returns a copy of subtree n with leaf x, whose hash is not yet
// present in n, placed at its position in hash order.
//
// The placement follows the one for lists: a branch with a free slot takes the
// new leaf directly if it falls on an outer edge or into a gap between two
// children. A full branch whose outer child is at least as large as its
// siblings gets wrapped as a whole when x is beyond that edge.
func (n *node[K, V]) assocNew(x *node[K, V]) *node[K, V] {
	h := x.hash
	if n.isLeaf() {
		assertThat(n.hash != h, ternary.ErrCorruptTree, "new leaf collides with hash %d", h)
		if h < n.hash {
			return pack(x, n, nil)
		}
		return pack(n, x, nil)
	}
	ch, c := n.children()
	switch {
	case h < n.minHash:
		if c < 3 {
			return n.spliced(0, x)
		}
		if ch[0].size >= ch[1].size && ch[0].size >= ch[2].size {
			tracer().Debugf("assoc: wrapping %s at front", n)
			return pack(x, n, nil)
		}
		return n.withChild(0, ch[0].assocNew(x))
	case h > n.maxHash:
		if c < 3 {
			return n.spliced(c, x)
		}
		if ch[2].size >= ch[0].size && ch[2].size >= ch[1].size {
			tracer().Debugf("assoc: wrapping %s at back", n)
			return pack(n, x, nil)
		}
		return n.withChild(2, ch[2].assocNew(x))
	}
	for i := 0; i < c; i++ {
		if ch[i].covers(h) {
			return n.withChild(i, ch[i].assocNew(x))
		}
		if i+1 < c && h > ch[i].maxHash && h < ch[i+1].minHash {
			if c < 3 {
				return n.spliced(i+1, x)
			}
			if ch[i].size <= ch[i+1].size {
				return n.withChild(i, ch[i].assocNew(x))
			}
			return n.withChild(i+1, ch[i+1].assocNew(x))
		}
	}
	panic(ternary.Failure(ternary.ErrCorruptTree, "hashmap: no position for hash %d in %s", h, n))
}

// dissoc returns a copy of subtree n without key, which has to be present in the
// leaf for hash h. Emptied leafs vanish, branches left with a single child are
// replaced by that child.
func (n *node[K, V]) dissoc(h int32, key K, eq hashing.Equality[K]) *node[K, V] {
	if n.isLeaf() {
		i := n.find(key, eq)
		assertThat(i >= 0, ternary.ErrMissingKey, "key %v not present in leaf %s", key, n)
		if len(n.pairs) == 1 {
			return emptyBranch[K, V]()
		}
		pairs := make([]Pair[K, V], 0, len(n.pairs)-1)
		pairs = append(pairs, n.pairs[:i]...)
		pairs = append(pairs, n.pairs[i+1:]...)
		return leaf(n.hash, pairs)
	}
	ch, c := n.children()
	for i := 0; i < c; i++ {
		if ch[i].covers(h) {
			ch[i] = ch[i].dissoc(h, key, eq)
			return pack(ch[0], ch[1], ch[2])
		}
	}
	panic(ternary.Failure(ternary.ErrMissingKey, "hashmap: no leaf for hash %d", h))
}

// withPair returns a copy of leaf n with p stored at position i, or appended
// if i < 0.
func (n *node[K, V]) withPair(i int, p Pair[K, V]) *node[K, V] {
	var pairs []Pair[K, V]
	if i < 0 {
		pairs = make([]Pair[K, V], len(n.pairs), len(n.pairs)+1)
		copy(pairs, n.pairs)
		pairs = append(pairs, p)
	} else {
		pairs = make([]Pair[K, V], len(n.pairs))
		copy(pairs, n.pairs)
		pairs[i] = p
	}
	return leaf(n.hash, pairs)
}

func mapNode[K, V, U any](n *node[K, V], f func(V) U) *node[K, U] {
	if n == nil {
		return nil
	}
	if n.isLeaf() {
		pairs := make([]Pair[K, U], len(n.pairs))
		for i, p := range n.pairs {
			pairs[i] = Pair[K, U]{Key: p.Key, Value: f(p.Value)}
		}
		return leaf(n.hash, pairs)
	}
	return &node[K, U]{
		kind:    branchNode,
		minHash: n.minHash,
		maxHash: n.maxHash,
		size:    n.size,
		depth:   n.depth,
		left:    mapNode(n.left, f),
		middle:  mapNode(n.middle, f),
		right:   mapNode(n.right, f),
	}
}

func sameShape[K, V any](a, b *node[K, V], keq hashing.Equality[K], veq hashing.Equality[V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.kind != b.kind || a.size != b.size {
		return false
	}
	if a.isLeaf() {
		if a.hash != b.hash || len(a.pairs) != len(b.pairs) {
			return false
		}
		for i := range a.pairs {
			if !keq(a.pairs[i].Key, b.pairs[i].Key) || !veq(a.pairs[i].Value, b.pairs[i].Value) {
				return false
			}
		}
		return true
	}
	return sameShape(a.left, b.left, keq, veq) &&
		sameShape(a.middle, b.middle, keq, veq) &&
		sameShape(a.right, b.right, keq, veq)
}

// --- Balancing -------------------------------------------------------------

// unbalanced reports if depth exceeds threshold and 3^(depth−threshold) > size.
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

func (n *node[K, V]) rebalanced() *node[K, V] {
	return build(n.collectLeafs(nil))
}
