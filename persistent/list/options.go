package list

import "github.com/npillmayer/ternary/hashing"

// DefaultBalanceThreshold is the depth a list has to exceed before it is checked for
// rebalancing.
const DefaultBalanceThreshold = 50

type props[T any] struct {
	equal     hashing.Equality[T]
	threshold int // 0 = default, < 0 = never rebalance
}

func (p props[T]) eq() hashing.Equality[T] {
	if p.equal == nil {
		return hashing.Identical[T]
	}
	return p.equal
}

func (p props[T]) balanceThreshold() int {
	if p.threshold == 0 {
		return DefaultBalanceThreshold
	}
	return p.threshold
}

// Option is a type to help initializing lists at creation time.
type Option[T any] struct {
	config func(props[T]) props[T]
}

// WithEquality sets the equality used for value comparisons, i.e., by IndexOf,
// Equal and SameShape. The default is hashing.Identical, which compares values
// by identity.
//
//     l := list.From(words, list.WithEquality(strings.EqualFold))
//
func WithEquality[T any](eq hashing.Equality[T]) Option[T] {
	return Option[T]{config: func(p props[T]) props[T] {
		p.equal = eq
		return p
	}}
}

// BalanceThreshold sets the depth a list's tree may grow to before it is
// checked for balance. Trees deeper than the threshold are rebuilt if
// 3^(depth−threshold) exceeds the number of items. Thresholds below 1 are
// set to 1.
func BalanceThreshold[T any](depth int) Option[T] {
	return Option[T]{config: func(p props[T]) props[T] {
		if depth < 1 {
			depth = 1
		}
		p.threshold = depth
		return p
	}}
}

// WithoutBalancing switches off automatic rebalancing. Clients may still call
// Rebalance explicitly.
func WithoutBalancing[T any]() Option[T] {
	return Option[T]{config: func(p props[T]) props[T] {
		p.threshold = -1
		return p
	}}
}

func configure[T any](opts []Option[T]) props[T] {
	var p props[T]
	for _, option := range opts {
		p = option.config(p)
	}
	return p
}
