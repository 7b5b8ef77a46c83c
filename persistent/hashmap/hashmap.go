package hashmap

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/ternary"
	"github.com/npillmayer/ternary/maybe"
	"github.com/xlab/treeprint"
)

// Map is an immutable persistent map. The zero value is an empty map with
// default options.
type Map[K, V any] struct {
	props[K, V]
	root *node[K, V]
}

// Immutable creates an empty map.
func Immutable[K, V any](opts ...Option[K, V]) Map[K, V] {
	return Map[K, V]{props: configure(props[K, V]{}, opts)}
}

// From creates a balanced map from a slice of pairs. If a key occurs more than
// once, the last pair wins.
func From[K, V any](pairs []Pair[K, V], opts ...Option[K, V]) Map[K, V] {
	b := NewBuilder(opts...)
	for _, p := range pairs {
		b.Put(p.Key, p.Value)
	}
	return b.Map()
}

// FromMap creates a balanced map from a Go map.
func FromMap[K comparable, V any](m map[K]V, opts ...Option[K, V]) Map[K, V] {
	b := NewBuilder(opts...)
	for k, v := range m {
		b.Put(k, v)
	}
	return b.Map()
}

func (m Map[K, V]) with(root *node[K, V]) Map[K, V] {
	return Map[K, V]{props: m.props, root: root}
}

func (m Map[K, V]) balanced(root *node[K, V]) Map[K, V] {
	if unbalanced(root.depth, root.size, m.balanceThreshold()) {
		tracer().Infof("hashmap: rebalancing tree of depth %d with %d pairs", root.depth, root.size)
		root = root.rebalanced()
	}
	return m.with(root)
}

func (m Map[K, V]) tree() *node[K, V] {
	if m.root == nil {
		return emptyBranch[K, V]()
	}
	return m.root
}

// --- Inspection ------------------------------------------------------------

// Len returns the number of pairs in m.
func (m Map[K, V]) Len() int {
	return m.root.len()
}

func (m Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Depth returns the depth of the underlying tree.
func (m Map[K, V]) Depth() int {
	return m.tree().depth
}

// Contains reports if m has a pair with key.
func (m Map[K, V]) Contains(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// Find returns the value for key, and whether it has been found.
func (m Map[K, V]) Find(key K) (V, bool) {
	var zero V
	if m.IsEmpty() {
		return zero, false
	}
	n := m.root.lookup(m.hash(key))
	if n == nil {
		return zero, false
	}
	if i := n.find(key, m.keyEq()); i >= 0 {
		return n.pairs[i].Value, true
	}
	return zero, false
}

// Get returns the value for key, or Nothing.
func (m Map[K, V]) Get(key K) maybe.Maybe[V] {
	v, ok := m.Find(key)
	return maybe.Of(v, ok)
}

// GetOrDefault returns the value for key, or def if key is not present.
func (m Map[K, V]) GetOrDefault(key K, def V) V {
	if v, ok := m.Find(key); ok {
		return v
	}
	return def
}

// MustGet returns the value for key. It panics with ternary.ErrMissingKey if key is
// not present.
func (m Map[K, V]) MustGet(key K) V {
	v, ok := m.Find(key)
	assertThat(ok, ternary.ErrMissingKey, "key %v not present", key)
	return v
}

// --- Modification ----------------------------------------------------------

// Assoc returns a map with key mapped to value. If key is already mapped to a
// value equal to value, m itself is returned.
func (m Map[K, V]) Assoc(key K, value V) Map[K, V] {
	root, changed := m.assoc(key, value)
	if !changed {
		return m
	}
	return m.balanced(root)
}

// assoc is Assoc without the check for balance.
func (m Map[K, V]) assoc(key K, value V) (*node[K, V], bool) {
	h := m.hash(key)
	p := Pair[K, V]{Key: key, Value: value}
	if m.IsEmpty() {
		return leaf(h, []Pair[K, V]{p}), true
	}
	var buf [32]slot[K, V]
	found, path := locate(m.root, h, buf[:0])
	if !found {
		return m.root.assocNew(leaf(h, []Pair[K, V]{p})), true
	}
	hit := path.last().node
	i := hit.find(key, m.keyEq())
	if i >= 0 && m.valueEq()(hit.pairs[i].Value, value) {
		return m.root, false
	}
	if i < 0 {
		tracer().Debugf("hashmap: hash collision for key %v at %d", key, h)
	}
	root := path.dropLast().foldR(cloneSeam[K, V], slot[K, V]{node: hit.withPair(i, p)})
	return root.node, true
}

// Dissoc returns a map without key. If key is not present, m itself is returned.
func (m Map[K, V]) Dissoc(key K) Map[K, V] {
	if !m.Contains(key) {
		return m
	}
	return m.with(m.root.dissoc(m.hash(key), key, m.keyEq()))
}

// Merge returns a map with the pairs of m and other. For keys present in both,
// the value of other wins. The result carries the options of m.
func (m Map[K, V]) Merge(other Map[K, V]) Map[K, V] {
	return m.merge(other, func(Pair[K, V]) bool { return false })
}

// MergeSkip is like Merge, but ignores pairs of other whose value equals skipped.
func (m Map[K, V]) MergeSkip(other Map[K, V], skipped V) Map[K, V] {
	eq := m.valueEq()
	return m.merge(other, func(p Pair[K, V]) bool { return eq(p.Value, skipped) })
}

func (m Map[K, V]) merge(other Map[K, V], skip func(Pair[K, V]) bool) Map[K, V] {
	acc, interval, cnt := m, m.mergeBalanceInterval(), 0
	other.root.walk(func(p Pair[K, V]) bool {
		if skip(p) {
			return true
		}
		if root, changed := acc.assoc(p.Key, p.Value); changed {
			acc = acc.with(root)
			cnt++
			if cnt%interval == 0 {
				tracer().Debugf("hashmap: merge checkpoint after %d insertions", cnt)
				acc = acc.with(acc.root.rebalanced())
			}
		}
		return true
	})
	if acc.root == nil {
		return acc
	}
	return acc.balanced(acc.root)
}

// Rebalance returns a map with the pairs of m, held in a balanced tree. m is left
// unchanged.
func (m Map[K, V]) Rebalance() Map[K, V] {
	if m.IsEmpty() {
		return m
	}
	return m.with(m.root.rebalanced())
}

// MapValues returns a map with the keys of m, where each value is replaced by f
// applied to it. The result has the same tree shape as m and the key options
// (hasher, key equality, balancing) of m.
func MapValues[K, V, U any](m Map[K, V], f func(V) U, opts ...Option[K, U]) Map[K, U] {
	p := props[K, U]{
		hasher:        m.hasher,
		keyEqual:      m.keyEqual,
		threshold:     m.threshold,
		mergeInterval: m.mergeInterval,
	}
	return Map[K, U]{props: configure(p, opts), root: mapNode(m.root, f)}
}

// --- Iteration -------------------------------------------------------------

// Keys returns an iterator over the keys of m, in hash order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.root.walk(func(p Pair[K, V]) bool { return yield(p.Key) })
	}
}

// Values returns an iterator over the values of m, in hash order of their keys.
func (m Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.root.walk(func(p Pair[K, V]) bool { return yield(p.Value) })
	}
}

// Pairs returns an iterator over the key/value pairs of m, in hash order.
func (m Map[K, V]) Pairs() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.root.walk(func(p Pair[K, V]) bool { return yield(p.Key, p.Value) })
	}
}

// ToPairs returns the pairs of m as a slice, in hash order.
func (m Map[K, V]) ToPairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, m.Len())
	m.root.walk(func(p Pair[K, V]) bool {
		pairs = append(pairs, p)
		return true
	})
	return pairs
}

// Each calls f for every pair of m, in hash order.
func (m Map[K, V]) Each(f func(K, V)) {
	m.root.walk(func(p Pair[K, V]) bool {
		f(p.Key, p.Value)
		return true
	})
}

// --- Comparison ------------------------------------------------------------

// Equal reports if m and other hold the same keys, mapped to equal values.
// Values are compared with the value equality of m.
func (m Map[K, V]) Equal(other Map[K, V]) bool {
	if m.Len() != other.Len() {
		return false
	}
	if m.root == other.root {
		return true
	}
	eq := m.valueEq()
	return m.root.walk(func(p Pair[K, V]) bool {
		v, ok := other.Find(p.Key)
		return ok && eq(p.Value, v)
	})
}

// SameShape reports if m and other have identical tree structure and equal
// pairs at corresponding leafs.
func (m Map[K, V]) SameShape(other Map[K, V]) bool {
	return sameShape(m.tree(), other.tree(), m.keyEq(), m.valueEq())
}

// --- Formatting ------------------------------------------------------------

// FormatInline returns the tree structure of m in parenthesized notation, e.g.
// “(a:1 b:2 _)”. With withHash set, leafs are prefixed by their hash value.
func (m Map[K, V]) FormatInline(withHash bool) string {
	var sb strings.Builder
	m.tree().formatInline(&sb, withHash)
	return sb.String()
}

func (m Map[K, V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Map[%d, ", m.Len())
	if m.Len() > 16 {
		sb.WriteString("…]")
		return sb.String()
	}
	pairs := make([]string, 0, m.Len())
	m.Each(func(k K, v V) {
		pairs = append(pairs, fmt.Sprintf("%v:%v", k, v))
	})
	slices.Sort(pairs)
	sb.WriteString("{" + strings.Join(pairs, " ") + "}]")
	return sb.String()
}

// Tree returns a multi-line drawing of the tree structure of m, for debugging.
func (m Map[K, V]) Tree() string {
	printer := treeprint.New()
	printNode(m.tree(), printer)
	return fmt.Sprintf("Map(size=%d, depth=%d)\n", m.Len(), m.Depth()) + printer.String()
}

func printNode[K, V any](n *node[K, V], printer treeprint.Tree) {
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
