package list

// Builder collects items for bulk construction of a list. Building a list
// from n items is O(n), compared to O(n log n) for n calls to Append.
//
// A Builder is not safe for concurrent use. Lists obtained from it are
// immutable and independent of further appends.
type Builder[T any] struct {
	props props[T]
	leafs []*node[T]
}

// NewBuilder creates a builder for lists with the given options.
func NewBuilder[T any](opts ...Option[T]) *Builder[T] {
	return &Builder[T]{props: configure(opts)}
}

// Append adds items to the end of the list under construction.
func (b *Builder[T]) Append(items ...T) *Builder[T] {
	for _, item := range items {
		b.leafs = append(b.leafs, leaf(item))
	}
	return b
}

// Len returns the number of items collected so far.
func (b *Builder[T]) Len() int {
	return len(b.leafs)
}

// List returns a balanced list of the items collected so far.
func (b *Builder[T]) List() List[T] {
	return List[T]{props: b.props, root: build(b.leafs)}
}
