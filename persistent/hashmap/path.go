package hashmap

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a branch together with the position of the child
// the path continues with, or the final leaf.
type slot[K, V any] struct {
	node  *node[K, V]
	index int
}

func (s slot[K, V]) String() string {
	return strconv.Itoa(s.index) + "@" + s.node.String()
}

// --- Path ------------------------------------------------------------------

type slotPath[K, V any] []slot[K, V]

func (path slotPath[K, V]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[K, V]) last() slot[K, V] {
	if len(path) == 0 {
		return slot[K, V]{}
	}
	return path[len(path)-1]
}

func (path slotPath[K, V]) foldR(f func(slot[K, V], slot[K, V]) slot[K, V], zero slot[K, V]) slot[K, V] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

func (path slotPath[K, V]) dropLast() slotPath[K, V] {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}

// locate records the path from root to the leaf for hash h. If there is no such
// leaf, found is false and the path is incomplete.
func locate[K, V any](root *node[K, V], h int32, pathBuf slotPath[K, V]) (found bool, path slotPath[K, V]) {
	path = pathBuf[:0]
	n := root
	for n != nil && n.covers(h) {
		if n.isLeaf() {
			path = append(path, slot[K, V]{node: n})
			return true, path
		}
		ch, c := n.children()
		pos := -1
		for i, child := range ch[:c] {
			if child.covers(h) {
				pos = i
				break
			}
		}
		if pos < 0 {
			return false, path
		}
		path = append(path, slot[K, V]{node: n, index: pos})
		n = ch[pos]
	}
	return false, path
}

// cloneSeam copies the parent node of a seam, linking it to a (new) child.
func cloneSeam[K, V any](parent, child slot[K, V]) slot[K, V] {
	cow := parent.node.withChild(parent.index, child.node)
	return slot[K, V]{node: cow, index: parent.index}
}
