/*
Package hashmap implements an immutable persistent map on top of a ternary tree.

Keys are hashed to 32 bits, and leafs of the tree are ordered by hash. Each leaf
holds the pairs whose keys share its hash, so hash collisions are handled by a
small bucket per leaf. Inner nodes store the hash range they cover, which lets
lookups descend without visiting a sibling.

As with package list, every “modification” returns a new map and leaves the
receiver untouched; unchanged subtrees are shared between the two:

    m := hashmap.From([]hashmap.Pair[string, int]{{"a", 1}, {"b", 2}})
    n := m.Assoc("c", 3).Dissoc("a")
    m.Len()  // 2
    n.Len()  // 2

Hashing and key equality are options of a map. The default hasher,
hashing.Default, covers strings, numbers and booleans; maps keyed by other
types have to be created with WithHasher. Lookups of missing keys are not an
error: Get returns maybe.Nothing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashmap

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ternary"
)

// tracer traces with key 'ternary.hashmap'.
func tracer() tracing.Trace {
	return tracing.Select("ternary.hashmap")
}

func assertThat(that bool, sentinel error, msg string, msgargs ...interface{}) {
	if !that {
		panic(ternary.Failure(sentinel, "hashmap: "+msg, msgargs...))
	}
}
