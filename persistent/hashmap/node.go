package hashmap

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ternary"
	"github.com/npillmayer/ternary/hashing"
)

// Pair is a key/value pair.
type Pair[K, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v:%v", p.Key, p.Value)
}

type nodeKind uint8

const (
	leafNode nodeKind = iota
	branchNode
)

// node is either a leaf, carrying the pairs for a single hash value, or a branch
// with up to three children. Children of a branch are ordered by hash, their hash
// ranges do not overlap.
type node[K, V any] struct {
	kind    nodeKind
	hash    int32        // leafs only
	pairs   []Pair[K, V] // leafs only; never empty, never modified
	minHash int32
	maxHash int32
	size    int // number of pairs in this subtree
	depth   int
	left    *node[K, V]
	middle  *node[K, V]
	right   *node[K, V]
}

func leaf[K, V any](hash int32, pairs []Pair[K, V]) *node[K, V] {
	return &node[K, V]{
		kind:    leafNode,
		hash:    hash,
		pairs:   pairs,
		minHash: hash,
		maxHash: hash,
		size:    len(pairs),
		depth:   1,
	}
}

func emptyBranch[K, V any]() *node[K, V] {
	return &node[K, V]{kind: branchNode, depth: 1}
}

// pack creates a branch from children l, m, r, which have to be ordered by hash.
// Empty children are skipped, a single remaining child is returned unwrapped.
func pack[K, V any](l, m, r *node[K, V]) *node[K, V] {
	var ch [3]*node[K, V]
	c := 0
	for _, n := range [3]*node[K, V]{l, m, r} {
		if n != nil && n.size > 0 {
			ch[c] = n
			c++
		}
	}
	switch c {
	case 0:
		return emptyBranch[K, V]()
	case 1:
		return ch[0]
	}
	return &node[K, V]{
		kind:    branchNode,
		minHash: ch[0].minHash,
		maxHash: ch[c-1].maxHash,
		size:    ch[0].len() + ch[1].len() + ch[2].len(),
		depth:   max(ch[0].getDepth(), ch[1].getDepth(), ch[2].getDepth()) + 1,
		left:    ch[0],
		middle:  ch[1],
		right:   ch[2],
	}
}

func (n *node[K, V]) len() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[K, V]) getDepth() int {
	if n == nil {
		return 0
	}
	return n.depth
}

func (n *node[K, V]) isLeaf() bool {
	return n.kind == leafNode
}

func (n *node[K, V]) children() ([3]*node[K, V], int) {
	ch := [3]*node[K, V]{n.left, n.middle, n.right}
	c := 0
	for c < 3 && ch[c] != nil {
		c++
	}
	return ch, c
}

func (n *node[K, V]) covers(h int32) bool {
	return n.size > 0 && h >= n.minHash && h <= n.maxHash
}

// withChild returns a copy of branch n where the child at pos is replaced by ch.
// ch must not be empty.
func (n *node[K, V]) withChild(pos int, ch *node[K, V]) *node[K, V] {
	children, _ := n.children()
	assertThat(pos >= 0 && pos < 3, ternary.ErrCorruptTree, "no child position %d", pos)
	children[pos] = ch
	return pack(children[0], children[1], children[2])
}

// spliced returns a copy of a branch with fewer than three children, where ch is
// inserted as a new child at position pos.
func (n *node[K, V]) spliced(pos int, ch *node[K, V]) *node[K, V] {
	old, c := n.children()
	assertThat(c < 3 && pos <= c, ternary.ErrCorruptTree, "cannot splice child at %d into branch of %d", pos, c)
	var children [3]*node[K, V]
	copy(children[:pos], old[:pos])
	children[pos] = ch
	copy(children[pos+1:], old[pos:c])
	return pack(children[0], children[1], children[2])
}

// lookup finds the leaf for hash h, if any.
func (n *node[K, V]) lookup(h int32) *node[K, V] {
	for n != nil && n.covers(h) {
		if n.isLeaf() {
			return n
		}
		ch, c := n.children()
		var next *node[K, V]
		for _, child := range ch[:c] {
			if child.covers(h) {
				next = child
				break
			}
		}
		n = next
	}
	return nil
}

// find returns the position of key within the pairs of a leaf, or -1.
func (n *node[K, V]) find(key K, eq hashing.Equality[K]) int {
	for i, p := range n.pairs {
		if eq(p.Key, key) {
			return i
		}
	}
	return -1
}

// build creates a balanced tree from a sequence of leafs, ordered by hash.
func build[K, V any](leafs []*node[K, V]) *node[K, V] {
	switch len(leafs) {
	case 0:
		return emptyBranch[K, V]()
	case 1:
		return leafs[0]
	case 2:
		return pack(leafs[0], leafs[1], nil)
	case 3:
		return pack(leafs[0], leafs[1], leafs[2])
	}
	l, m, _ := ternary.Divide(len(leafs))
	return pack(
		build(leafs[:l]),
		build(leafs[l:l+m]),
		build(leafs[l+m:]),
	)
}

func (n *node[K, V]) collectLeafs(acc []*node[K, V]) []*node[K, V] {
	if n == nil {
		return acc
	}
	if n.isLeaf() {
		return append(acc, n)
	}
	acc = n.left.collectLeafs(acc)
	acc = n.middle.collectLeafs(acc)
	return n.right.collectLeafs(acc)
}

// walk calls yield for every pair of a subtree, in hash order. It stops early if
// yield returns false.
func (n *node[K, V]) walk(yield func(Pair[K, V]) bool) bool {
	if n == nil {
		return true
	}
	if n.isLeaf() {
		for _, p := range n.pairs {
			if !yield(p) {
				return false
			}
		}
		return true
	}
	return n.left.walk(yield) && n.middle.walk(yield) && n.right.walk(yield)
}

func (n *node[K, V]) String() string {
	if n == nil {
		return "_"
	}
	if n.isLeaf() {
		return fmt.Sprintf("%d->%v", n.hash, n.pairs)
	}
	return fmt.Sprintf("[%d…%d, size=%d, depth=%d]", n.minHash, n.maxHash, n.size, n.depth)
}

func (n *node[K, V]) formatInline(sb *strings.Builder, withHash bool) {
	if n == nil {
		sb.WriteByte('_')
		return
	}
	if n.isLeaf() {
		if withHash {
			fmt.Fprintf(sb, "%d->", n.hash)
		}
		if len(n.pairs) == 1 {
			sb.WriteString(n.pairs[0].String())
			return
		}
		sb.WriteByte('{')
		for i, p := range n.pairs {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(p.String())
		}
		sb.WriteByte('}')
		return
	}
	sb.WriteByte('(')
	n.left.formatInline(sb, withHash)
	sb.WriteByte(' ')
	n.middle.formatInline(sb, withHash)
	sb.WriteByte(' ')
	n.right.formatInline(sb, withHash)
	sb.WriteByte(')')
}
