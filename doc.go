/*
Package ternary is the root of a small family of persistent collections built on
self-balancing ternary trees.

Each inner node of a ternary tree owns up to three ordered children (left, middle,
right). Compared to binary trees this reduces depth to roughly log₃ n; compared to
32-way tries it keeps path copies small, as every “modification” allocates at most
one branch node of three child links per level.

Two collections are implemented in sub-packages:

   persistent/list      ordered, index-addressable sequences
   persistent/hashmap   key/value maps, ordered by key hash

Both share the size partitioner `Divide` and the error sentinels of this package.
Hash and equality policies live in package hashing.

Errors

Misuse of a collection (an index out of range, taking the first item of an empty list,
an invalid slice range) is a programming error. Operations panic with an error value
wrapping one of the sentinels below; clients may recover and test with errors.Is, or
use result.Try to receive a Result instead. Absence of a key is never an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ternary

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange signals a positional index outside of a collection.
	ErrIndexOutOfRange = errors.New("ternary: index out of range")
	// ErrEmptyCollection signals an operation which needs at least one item.
	ErrEmptyCollection = errors.New("ternary: collection is empty")
	// ErrInvalidSlice signals a slice range with start > end or out of bounds.
	ErrInvalidSlice = errors.New("ternary: invalid slice range")
	// ErrCorruptTree signals a violated structural invariant.
	ErrCorruptTree = errors.New("ternary: corrupt tree")
	// ErrMissingKey signals an internal lookup which expected a key to be present.
	ErrMissingKey = errors.New("ternary: missing key")
	// ErrNegativeSize signals a negative count handed to the partitioner.
	ErrNegativeSize = errors.New("ternary: negative size")
)

// Failure creates an error wrapping sentinel, with a formatted message appended.
// Collections use it as the panic value for contract violations.
func Failure(sentinel error, msg string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(msg, args...))
}

// Divide splits n into three near-equal parts. Each part receives n/3; a remainder
// of 1 goes to the middle, a remainder of 2 is shared by left and right.
//
//     Divide(7)  →  2, 3, 2
//     Divide(8)  →  3, 2, 3
//
// Balanced construction of both lists and maps relies on this layout.
// Divide panics for negative n.
func Divide(n int) (left, middle, right int) {
	if n < 0 {
		panic(Failure(ErrNegativeSize, "cannot divide %d", n))
	}
	group := n / 3
	left, middle, right = group, group, group
	switch n % 3 {
	case 1:
		middle++
	case 2:
		left++
		right++
	}
	return
}
