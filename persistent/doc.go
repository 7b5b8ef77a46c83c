/*
Package persistent is the home of immutable persistent collections built on
ternary trees.

Persistent collections can be copied and modified efficiently, leaving the
original unchanged. A new version of a collection shares every untouched subtree
with its predecessor, so keeping old versions around costs only the nodes on the
modified paths. Versions may be read from several goroutines at once without
locking.

Sub-packages:

    list      ordered, index-addressable lists (Assoc, Insert, Slice, Concat, …)
    hashmap   maps from keys to values, ordered by key hash

Both keep items in the leafs of a tree whose inner nodes have up to three
children, packed to the left. Trees are rebuilt, never re-arranged in place,
when they grow too deep.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
