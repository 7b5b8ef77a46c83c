package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ternary"
	"github.com/xlab/treeprint"
)

// List is an immutable persistent list. The zero value is an empty list with
// default options.
type List[T any] struct {
	props[T]
	root *node[T]
}

// Immutable creates an empty list.
//
//     l := list.Immutable[int](list.WithoutBalancing[int]())
//
func Immutable[T any](opts ...Option[T]) List[T] {
	return List[T]{props: configure(opts)}
}

// From creates a balanced list from a slice of items. The slice is not retained.
func From[T any](items []T, opts ...Option[T]) List[T] {
	leafs := make([]*node[T], len(items))
	for i, item := range items {
		leafs[i] = leaf(item)
	}
	return List[T]{props: configure(opts), root: build(leafs)}
}

// Of creates a balanced list from its arguments, with default options.
func Of[T any](items ...T) List[T] {
	return From(items)
}

// FromSeq creates a balanced list from the values of a sequence.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) List[T] {
	b := NewBuilder(opts...)
	for v := range seq {
		b.Append(v)
	}
	return b.List()
}

// with returns a list with the options of l and a new tree.
func (l List[T]) with(root *node[T]) List[T] {
	return List[T]{props: l.props, root: root}
}

// balanced is like with, but rebuilds the tree first if it has grown too deep.
func (l List[T]) balanced(root *node[T]) List[T] {
	if unbalanced(root.depth, root.size, l.balanceThreshold()) {
		tracer().Infof("list: rebalancing tree of depth %d with %d items", root.depth, root.size)
		root = root.rebalanced()
	}
	return l.with(root)
}

func (l List[T]) tree() *node[T] {
	if l.root == nil {
		return emptyBranch[T]()
	}
	return l.root
}

func (l List[T]) checkIndex(i int) {
	assertThat(i >= 0 && i < l.Len(), ternary.ErrIndexOutOfRange, "index %d with length %d", i, l.Len())
}

// --- Inspection ------------------------------------------------------------

// Len returns the number of items in l.
func (l List[T]) Len() int {
	return l.root.len()
}

func (l List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Depth returns the depth of the underlying tree. A single item has depth 1,
// as has an empty list.
func (l List[T]) Depth() int {
	return l.tree().depth
}

// Get returns the item at index i. It panics with ternary.ErrIndexOutOfRange
// if i is out of range.
func (l List[T]) Get(i int) T {
	l.checkIndex(i)
	n := l.root
	for !n.isLeaf() {
		var pos int
		pos, i = n.route(i)
		switch pos {
		case 0:
			n = n.left
		case 1:
			n = n.middle
		default:
			n = n.right
		}
		assertThat(n != nil, ternary.ErrCorruptTree, "descent to empty slot")
	}
	return n.value
}

// First returns the first item of l. It panics with ternary.ErrEmptyCollection
// for an empty list.
func (l List[T]) First() T {
	assertThat(!l.IsEmpty(), ternary.ErrEmptyCollection, "First() of empty list")
	return l.Get(0)
}

// Last returns the last item of l. It panics with ternary.ErrEmptyCollection
// for an empty list.
func (l List[T]) Last() T {
	assertThat(!l.IsEmpty(), ternary.ErrEmptyCollection, "Last() of empty list")
	return l.Get(l.Len() - 1)
}

// IndexOf returns the index of the first item equal to x, or -1. Items are
// compared with the list's equality (see WithEquality).
func (l List[T]) IndexOf(x T) int {
	eq := l.eq()
	return l.FindIndex(func(v T) bool { return eq(v, x) })
}

// FindIndex returns the index of the first item for which pred holds, or -1.
func (l List[T]) FindIndex(pred func(T) bool) int {
	if l.IsEmpty() {
		return -1
	}
	return l.root.find(pred)
}

// --- Modification ----------------------------------------------------------

// Assoc returns a list with the item at index i replaced by value.
func (l List[T]) Assoc(i int, value T) List[T] {
	l.checkIndex(i)
	var buf [32]slot[T]
	path := locate(l.root, i, buf[:0])
	assertThat(path.last().node.isLeaf(), ternary.ErrCorruptTree, "path for index %d does not end at a leaf", i)
	root := path.dropLast().foldR(cloneSeam[T], slot[T]{node: leaf(value)})
	return l.with(root.node)
}

// Insert returns a list with item inserted next to index i, either after or before
// the item at i. i must be a valid index of l; use Prepend or Append for empty lists.
func (l List[T]) Insert(i int, item T, after bool) List[T] {
	l.checkIndex(i)
	return l.balanced(l.root.insert(i, item, after))
}

// AssocBefore returns a list with item inserted at index i, shifting the item at i
// and all its successors to the right.
func (l List[T]) AssocBefore(i int, item T) List[T] {
	return l.Insert(i, item, false)
}

// AssocAfter returns a list with item inserted at index i+1.
func (l List[T]) AssocAfter(i int, item T) List[T] {
	return l.Insert(i, item, true)
}

// Prepend returns a list with item inserted at the front of l.
func (l List[T]) Prepend(item T) List[T] {
	if l.IsEmpty() {
		return l.with(leaf(item))
	}
	return l.Insert(0, item, false)
}

// Append returns a list with item inserted at the end of l.
func (l List[T]) Append(item T) List[T] {
	if l.IsEmpty() {
		return l.with(leaf(item))
	}
	return l.Insert(l.Len()-1, item, true)
}

// Dissoc returns a list without the item at index i.
func (l List[T]) Dissoc(i int) List[T] {
	assertThat(!l.IsEmpty(), ternary.ErrEmptyCollection, "cannot remove from empty list")
	l.checkIndex(i)
	if l.Len() == 1 {
		return l.with(emptyBranch[T]())
	}
	return l.with(l.root.dissoc(i))
}

// Rest returns l without its first item. It panics with ternary.ErrEmptyCollection
// for an empty list.
func (l List[T]) Rest() List[T] {
	assertThat(!l.IsEmpty(), ternary.ErrEmptyCollection, "Rest() of empty list")
	return l.Dissoc(0)
}

// Butlast returns l without its last item. It panics with ternary.ErrEmptyCollection
// for an empty list.
func (l List[T]) Butlast() List[T] {
	assertThat(!l.IsEmpty(), ternary.ErrEmptyCollection, "Butlast() of empty list")
	return l.Dissoc(l.Len() - 1)
}

// Slice returns the items in index range [start…end) as a list. It panics with
// ternary.ErrInvalidSlice unless 0 ≤ start ≤ end ≤ l.Len(). Subtrees of l which fall
// completely into the range are shared with the result.
func (l List[T]) Slice(start, end int) List[T] {
	assertThat(start >= 0 && start <= end && end <= l.Len(), ternary.ErrInvalidSlice,
		"invalid slice range [%d…%d) of list with length %d", start, end, l.Len())
	return l.with(l.tree().slice(start, end))
}

// Concat returns a list of the items of l followed by the items of all others.
// The result carries the options of l.
func (l List[T]) Concat(others ...List[T]) List[T] {
	trees := make([]*node[T], 0, len(others)+1)
	trees = append(trees, l.root)
	for _, o := range others {
		trees = append(trees, o.root)
	}
	return l.balanced(concat(trees...))
}

// Concat joins lists in order. The result carries the options of the first list.
func Concat[T any](lists ...List[T]) List[T] {
	if len(lists) == 0 {
		return List[T]{}
	}
	return lists[0].Concat(lists[1:]...)
}

// Reverse returns a list with the items of l in reverse order.
func (l List[T]) Reverse() List[T] {
	if l.IsEmpty() {
		return l
	}
	return l.with(l.root.reverse())
}

// Rebalance returns a list with the items of l, held in a balanced tree. l is left
// unchanged.
func (l List[T]) Rebalance() List[T] {
	if l.IsEmpty() {
		return l
	}
	return l.with(l.root.rebalanced())
}

// MapValues returns a list of f applied to every item of l. The result has the
// same tree shape as l. Options do not carry over, as they are typed.
func MapValues[T, U any](l List[T], f func(T) U, opts ...Option[U]) List[U] {
	return List[U]{props: configure(opts), root: mapNode(l.root, f)}
}

// --- Iteration -------------------------------------------------------------

// Items returns an iterator over the items of l, in order.
func (l List[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.root.walk(yield)
	}
}

// All returns an iterator over index/item pairs of l, in order.
func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		l.root.walk(func(v T) bool {
			ok := yield(i, v)
			i++
			return ok
		})
	}
}

// Each calls f for every item of l, in order.
func (l List[T]) Each(f func(T)) {
	l.root.walk(func(v T) bool {
		f(v)
		return true
	})
}

// ToSlice returns the items of l as a slice.
func (l List[T]) ToSlice() []T {
	s := make([]T, 0, l.Len())
	for v := range l.Items() {
		s = append(s, v)
	}
	return s
}

// --- Comparison ------------------------------------------------------------

// Equal reports if l and other have equal items in the same order. Items are
// compared with the equality of l.
func (l List[T]) Equal(other List[T]) bool {
	if l.Len() != other.Len() {
		return false
	}
	if l.root == other.root {
		return true
	}
	eq := l.eq()
	next, stop := iter.Pull(other.Items())
	defer stop()
	for v := range l.Items() {
		w, ok := next()
		if !ok || !eq(v, w) {
			return false
		}
	}
	return true
}

// SameShape reports if l and other have identical tree structure and equal items
// at corresponding leafs.
func (l List[T]) SameShape(other List[T]) bool {
	return sameShape(l.tree(), other.tree(), l.eq())
}

// --- Formatting ------------------------------------------------------------

// FormatInline returns the tree structure of l in parenthesized notation, e.g.
// “((1 2 _) 3 (4 5 _))”. Empty slots print as “_”.
func (l List[T]) FormatInline() string {
	var sb strings.Builder
	l.tree().formatInline(&sb)
	return sb.String()
}

func (l List[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "List[%d, ", l.Len())
	if l.Len() > 16 {
		sb.WriteString("…]")
		return sb.String()
	}
	sb.WriteByte('(')
	i := 0
	l.Each(func(v T) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v)
		i++
	})
	sb.WriteString(")]")
	return sb.String()
}

// Tree returns a multi-line drawing of the tree structure of l, for debugging.
func (l List[T]) Tree() string {
	printer := treeprint.New()
	printNode(l.tree(), printer)
	return fmt.Sprintf("List(size=%d, depth=%d)\n", l.Len(), l.Depth()) + printer.String()
}

func printNode[T any](n *node[T], printer treeprint.Tree) {
	if n.isLeaf() {
		printer.AddNode(n.String())
		return
	}
	b := printer.AddBranch(n.String())
	ch, c := n.children()
	for _, child := range ch[:c] {
		printNode(child, b)
	}
}
