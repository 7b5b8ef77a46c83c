package hashmap

import "slices"

// Builder collects pairs for bulk construction of a map. Pairs are grouped by
// hash, and the map is built as a balanced tree in a single pass.
//
// A Builder is not safe for concurrent use.
type Builder[K, V any] struct {
	props   props[K, V]
	buckets map[int32][]Pair[K, V]
	size    int
}

// NewBuilder creates a builder for maps with the given options.
func NewBuilder[K, V any](opts ...Option[K, V]) *Builder[K, V] {
	return &Builder[K, V]{
		props:   configure(props[K, V]{}, opts),
		buckets: make(map[int32][]Pair[K, V]),
	}
}

// Put adds a pair to the map under construction. A pair with a key already put
// replaces the earlier one.
func (b *Builder[K, V]) Put(key K, value V) *Builder[K, V] {
	h := b.props.hash(key)
	bucket := b.buckets[h]
	eq := b.props.keyEq()
	for i := range bucket {
		if eq(bucket[i].Key, key) {
			bucket[i].Value = value
			return b
		}
	}
	b.buckets[h] = append(bucket, Pair[K, V]{Key: key, Value: value})
	b.size++
	return b
}

// Len returns the number of distinct keys put so far.
func (b *Builder[K, V]) Len() int {
	return b.size
}

// Map returns a balanced map of the pairs put so far. The builder may be used
// further; maps already returned are not affected.
func (b *Builder[K, V]) Map() Map[K, V] {
	hashes := make([]int32, 0, len(b.buckets))
	for h := range b.buckets {
		hashes = append(hashes, h)
	}
	slices.Sort(hashes)
	leafs := make([]*node[K, V], len(hashes))
	for i, h := range hashes {
		leafs[i] = leaf(h, slices.Clone(b.buckets[h]))
	}
	return Map[K, V]{props: b.props, root: build(leafs)}
}
