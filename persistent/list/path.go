package list

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/ternary"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a node together with the position of the child
// the path continues with. For the final leaf of a path, index is 0.
type slot[T any] struct {
	node  *node[T]
	index int
}

func (s slot[T]) String() string {
	return strconv.Itoa(s.index) + "@" + s.node.String()
}

// --- Path ------------------------------------------------------------------

type slotPath[T any] []slot[T]

func (path slotPath[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[T]) last() slot[T] {
	if len(path) == 0 {
		return slot[T]{}
	}
	return path[len(path)-1]
}

func (path slotPath[T]) foldR(f func(slot[T], slot[T]) slot[T], zero slot[T]) slot[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

func (path slotPath[T]) dropLast() slotPath[T] {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}

// locate walks down from root to the leaf at index idx and records the path.
// idx must be in range of root.
func locate[T any](root *node[T], idx int, pathBuf slotPath[T]) slotPath[T] {
	path := pathBuf[:0]
	n := root
	for !n.isLeaf() {
		pos, offset := n.route(idx)
		path = append(path, slot[T]{node: n, index: pos})
		ch, c := n.children()
		assertThat(pos < c, ternary.ErrCorruptTree, "index %d routed to missing child %d of %s", idx, pos, n)
		n, idx = ch[pos], offset
	}
	assertThat(idx == 0, ternary.ErrCorruptTree, "descent ended at leaf with residual index %d", idx)
	path = append(path, slot[T]{node: n})
	tracer().Debugf("slot path for index -> %s", path)
	return path
}

// cloneSeam copies the parent node of a seam, linking it to a (new) child.
func cloneSeam[T any](parent, child slot[T]) slot[T] {
	cow := parent.node.withChild(parent.index, child.node)
	return slot[T]{node: cow, index: parent.index}
}
