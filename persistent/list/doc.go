/*
Package list implements an immutable persistent list on top of a ternary tree.

Lists are ordered and index-addressable. Each “modification” (Assoc, Insert,
Dissoc, Concat, …) returns a new list, leaving the original unchanged. The
new incarnation shares every untouched subtree with the original, so copies
are cheap and every prior version remains valid:

    l := list.Of(1, 2, 3, 4)
    m := l.Append(5).Assoc(0, 10)
    l.Len()   // 4
    m.Get(0)  // 10

Items are stored in leaves; inner nodes hold up to three children. Children are
packed left to right, an inner node never has a gap in front of a populated slot.
Access and update are O(log₃ n) for a balanced tree. Long runs of insertions at
the same end may deepen a tree; lists check their depth after insertions and
rebuild a balanced tree if it grows far beyond log₃ n (see BalanceThreshold).
Rebalancing never modifies a tree in place.

Misuse, like an index out of range, panics with an error wrapping one of the
sentinels of package ternary.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ternary"
)

// tracer traces with key 'ternary.list'.
func tracer() tracing.Trace {
	return tracing.Select("ternary.list")
}

func assertThat(that bool, sentinel error, msg string, msgargs ...interface{}) {
	if !that {
		panic(ternary.Failure(sentinel, "list: "+msg, msgargs...))
	}
}
