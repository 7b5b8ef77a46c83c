package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ternary"
)

type nodeKind uint8

const (
	leafNode nodeKind = iota
	branchNode
)

// node is either a leaf, carrying a single value, or a branch with up to three children.
// Nodes are never modified once they are linked into a tree.
type node[T any] struct {
	kind   nodeKind
	size   int // number of leafs in this subtree
	depth  int // 1 for leafs and for the empty branch
	value  T   // leafs only
	left   *node[T]
	middle *node[T]
	right  *node[T]
}

func leaf[T any](value T) *node[T] {
	return &node[T]{kind: leafNode, size: 1, depth: 1, value: value}
}

// emptyBranch is the root of an empty list.
func emptyBranch[T any]() *node[T] {
	return &node[T]{kind: branchNode, depth: 1}
}

// pack creates a branch from children l, m, r. Children which are nil or empty are
// skipped and the remaining ones packed to the left. No children result in an empty
// branch, a single child is returned as-is instead of being wrapped.
func pack[T any](l, m, r *node[T]) *node[T] {
	var ch [3]*node[T]
	c := 0
	for _, n := range [3]*node[T]{l, m, r} {
		if n != nil && n.size > 0 {
			ch[c] = n
			c++
		}
	}
	switch c {
	case 0:
		return emptyBranch[T]()
	case 1:
		return ch[0]
	}
	return &node[T]{
		kind:   branchNode,
		size:   ch[0].len() + ch[1].len() + ch[2].len(),
		depth:  parentDepth(ch[0], ch[1], ch[2]),
		left:   ch[0],
		middle: ch[1],
		right:  ch[2],
	}
}

func (n *node[T]) len() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[T]) getDepth() int {
	if n == nil {
		return 0
	}
	return n.depth
}

func parentDepth[T any](l, m, r *node[T]) int {
	return max(l.getDepth(), m.getDepth(), r.getDepth()) + 1
}

func (n *node[T]) isLeaf() bool {
	return n.kind == leafNode
}

// children returns the children of a branch and their count.
func (n *node[T]) children() ([3]*node[T], int) {
	ch := [3]*node[T]{n.left, n.middle, n.right}
	c := 0
	for c < 3 && ch[c] != nil {
		c++
	}
	return ch, c
}

// route finds the child of a branch holding index idx. It returns the position of
// the child within the branch, and the index relative to that child.
func (n *node[T]) route(idx int) (pos, offset int) {
	ls, ms, rs := n.left.len(), n.middle.len(), n.right.len()
	assertThat(ls+ms+rs == n.size, ternary.ErrCorruptTree,
		"size %d does not match sum of branch sizes %d+%d+%d", n.size, ls, ms, rs)
	switch {
	case idx < ls:
		return 0, idx
	case idx < ls+ms:
		return 1, idx - ls
	}
	return 2, idx - ls - ms
}

// withChild returns a copy of branch n where the child at pos is replaced by ch.
func (n *node[T]) withChild(pos int, ch *node[T]) *node[T] {
	cow := *n
	switch pos {
	case 0:
		cow.left = ch
	case 1:
		cow.middle = ch
	case 2:
		cow.right = ch
	default:
		panic(ternary.Failure(ternary.ErrCorruptTree, "list: no child position %d", pos))
	}
	cow.size = cow.left.len() + cow.middle.len() + cow.right.len()
	cow.depth = parentDepth(cow.left, cow.middle, cow.right)
	return &cow
}

// spliced returns a copy of a branch with fewer than three children, where ch is
// inserted as a new child at position pos.
func (n *node[T]) spliced(pos int, ch *node[T]) *node[T] {
	old, c := n.children()
	assertThat(c < 3 && pos <= c, ternary.ErrCorruptTree, "cannot splice child at %d into branch of %d", pos, c)
	var children [3]*node[T]
	copy(children[:pos], old[:pos])
	children[pos] = ch
	copy(children[pos+1:], old[pos:c])
	return pack(children[0], children[1], children[2])
}

// --- Construction ----------------------------------------------------------

// build creates a balanced tree from a sequence of leafs. Sequences of more than
// three leafs are partitioned with ternary.Divide.
func build[T any](leafs []*node[T]) *node[T] {
	switch len(leafs) {
	case 0:
		return emptyBranch[T]()
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

// collectLeafs appends the leafs of a subtree to acc, in order.
func (n *node[T]) collectLeafs(acc []*node[T]) []*node[T] {
	if n == nil {
		return acc
	}
	switch n.kind {
	case leafNode:
		return append(acc, n)
	case branchNode:
		acc = n.left.collectLeafs(acc)
		acc = n.middle.collectLeafs(acc)
		return n.right.collectLeafs(acc)
	}
	panic(ternary.Failure(ternary.ErrCorruptTree, "list: unknown node kind %d", n.kind))
}

// --- Traversal -------------------------------------------------------------

// walk calls yield for every value of a subtree, in order. It stops early if yield
// returns false, and reports if the walk ran to completion.
func (n *node[T]) walk(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	switch n.kind {
	case leafNode:
		return yield(n.value)
	case branchNode:
		return n.left.walk(yield) && n.middle.walk(yield) && n.right.walk(yield)
	}
	panic(ternary.Failure(ternary.ErrCorruptTree, "list: unknown node kind %d", n.kind))
}

func (n *node[T]) String() string {
	if n == nil {
		return "_"
	}
	if n.isLeaf() {
		return fmt.Sprintf("%v", n.value)
	}
	return fmt.Sprintf("[size=%d, depth=%d]", n.size, n.depth)
}

func (n *node[T]) formatInline(sb *strings.Builder) {
	if n == nil {
		sb.WriteByte('_')
		return
	}
	switch n.kind {
	case leafNode:
		fmt.Fprintf(sb, "%v", n.value)
	case branchNode:
		sb.WriteByte('(')
		n.left.formatInline(sb)
		sb.WriteByte(' ')
		n.middle.formatInline(sb)
		sb.WriteByte(' ')
		n.right.formatInline(sb)
		sb.WriteByte(')')
	}
}
