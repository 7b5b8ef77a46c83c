package hashmap

import "github.com/npillmayer/ternary/hashing"

const (
	// DefaultBalanceThreshold is the depth a map has to exceed before it is
	// checked for rebalancing.
	DefaultBalanceThreshold = 50
	// DefaultMergeBalanceInterval is the number of insertions after which Merge
	// rebuilds its intermediate result.
	DefaultMergeBalanceInterval = 700
)

type props[K, V any] struct {
	hasher        hashing.Hasher[K]
	keyEqual      hashing.Equality[K]
	valueEqual    hashing.Equality[V]
	threshold     int // 0 = default, < 0 = never rebalance
	mergeInterval int // 0 = default
}

func (p props[K, V]) hash(key K) int32 {
	if p.hasher == nil {
		return hashing.Default(key)
	}
	return p.hasher(key)
}

func (p props[K, V]) keyEq() hashing.Equality[K] {
	if p.keyEqual == nil {
		return hashing.Identical[K]
	}
	return p.keyEqual
}

func (p props[K, V]) valueEq() hashing.Equality[V] {
	if p.valueEqual == nil {
		return hashing.Identical[V]
	}
	return p.valueEqual
}

func (p props[K, V]) balanceThreshold() int {
	if p.threshold == 0 {
		return DefaultBalanceThreshold
	}
	return p.threshold
}

func (p props[K, V]) mergeBalanceInterval() int {
	if p.mergeInterval <= 0 {
		return DefaultMergeBalanceInterval
	}
	return p.mergeInterval
}

// Option is a type to help initializing maps at creation time.
type Option[K, V any] struct {
	config func(props[K, V]) props[K, V]
}

// WithHasher sets the hash function for keys. The default is hashing.Default.
// Keys which are equal have to hash to the same value.
//
//     m := hashmap.Immutable[string, int](hashmap.WithHasher[string, int](hashing.Murmur3[string]))
//
func WithHasher[K, V any](h hashing.Hasher[K]) Option[K, V] {
	return Option[K, V]{config: func(p props[K, V]) props[K, V] {
		p.hasher = h
		return p
	}}
}

// WithKeyEquality sets the equality for keys within a hash bucket. The default
// is hashing.Identical.
func WithKeyEquality[K, V any](eq hashing.Equality[K]) Option[K, V] {
	return Option[K, V]{config: func(p props[K, V]) props[K, V] {
		p.keyEqual = eq
		return p
	}}
}

// WithValueEquality sets the equality for values, used by Assoc to detect
// no-op updates, and by Equal and SameShape. The default is hashing.Identical.
func WithValueEquality[K, V any](eq hashing.Equality[V]) Option[K, V] {
	return Option[K, V]{config: func(p props[K, V]) props[K, V] {
		p.valueEqual = eq
		return p
	}}
}

// BalanceThreshold sets the depth a map's tree may grow to before it is
// checked for balance. Thresholds below 1 are set to 1.
func BalanceThreshold[K, V any](depth int) Option[K, V] {
	return Option[K, V]{config: func(p props[K, V]) props[K, V] {
		if depth < 1 {
			depth = 1
		}
		p.threshold = depth
		return p
	}}
}

// MergeBalanceInterval sets the number of insertions after which Merge rebuilds
// its intermediate result as a balanced tree.
func MergeBalanceInterval[K, V any](n int) Option[K, V] {
	return Option[K, V]{config: func(p props[K, V]) props[K, V] {
		p.mergeInterval = n
		return p
	}}
}

// WithoutBalancing switches off automatic rebalancing after Assoc. Merge still
// rebuilds at its balance interval.
func WithoutBalancing[K, V any]() Option[K, V] {
	return Option[K, V]{config: func(p props[K, V]) props[K, V] {
		p.threshold = -1
		return p
	}}
}

func configure[K, V any](p props[K, V], opts []Option[K, V]) props[K, V] {
	for _, option := range opts {
		p = option.config(p)
	}
	return p
}
