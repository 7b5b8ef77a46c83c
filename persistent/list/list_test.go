package list

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/ternary"
	"github.com/npillmayer/ternary/result"
	"github.com/stretchr/testify/assert"
)

func ints(from, to int) []int {
	s := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}

func TestBuildShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	c := []struct {
		items []int
		shape string
		depth int
	}{
		{nil, "(_ _ _)", 1},
		{[]int{1}, "1", 1},
		{[]int{1, 2}, "(1 2 _)", 2},
		{[]int{1, 2, 3}, "(1 2 3)", 2},
		{[]int{1, 2, 3, 4}, "(1 (2 3 _) 4)", 3},
		{[]int{1, 2, 3, 4, 5}, "((1 2 _) 3 (4 5 _))", 3},
		{ints(1, 12), "((1 (2 3 _) 4) (5 6 7) (8 (9 10 _) 11))", 4},
	}
	for i, x := range c {
		l := From(x.items)
		if shape := l.FormatInline(); shape != x.shape {
			t.Errorf("%d: expected shape %s, is %s", i, x.shape, shape)
		}
		if l.Depth() != x.depth {
			t.Errorf("%d: expected depth %d, is %d", i, x.depth, l.Depth())
		}
		if l.Len() != len(x.items) {
			t.Errorf("%d: expected length %d, is %d", i, len(x.items), l.Len())
		}
		if err := l.CheckStructure(); err != nil {
			t.Errorf("%d: %v", i, err)
		}
	}
}

func TestEmptyList(t *testing.T) {
	var l List[string]
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 1, l.Depth())
	assert.Equal(t, "(_ _ _)", l.FormatInline())
	assert.Equal(t, -1, l.IndexOf("x"))
	assert.Empty(t, l.ToSlice())
	assert.NoError(t, l.CheckStructure())
	assert.True(t, l.Equal(Immutable[string]()))
	assert.True(t, l.SameShape(Of[string]()))
	assert.Equal(t, "x", l.Append("x").FormatInline())
	assert.Equal(t, "x", l.Prepend("x").FormatInline())
}

func TestGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	items := ints(0, 100)
	l := From(items)
	for i, x := range items {
		if v := l.Get(i); v != x {
			t.Errorf("expected item #%d to be %d, is %d", i, x, v)
		}
	}
	assert.Equal(t, 0, l.First())
	assert.Equal(t, 99, l.Last())
}

func TestAssoc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	l := Of(1, 2, 3, 4, 5)
	for i := 0; i < l.Len(); i++ {
		m := l.Assoc(i, 10)
		if m.Get(i) != 10 {
			t.Errorf("expected item #%d to be 10, is %d", i, m.Get(i))
		}
		if err := m.CheckStructure(); err != nil {
			t.Error(err)
		}
	}
	m := l.Assoc(3, 10)
	assert.Equal(t, "((1 2 _) 3 (10 5 _))", m.FormatInline())
	assert.Equal(t, "((1 2 _) 3 (4 5 _))", l.FormatInline())
	if m.root.left != l.root.left || m.root.middle != l.root.middle {
		t.Error("expected untouched subtrees to be shared")
	}
}

func TestInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	l := Of(1, 2, 3, 4, 5)
	c := []struct {
		at    int
		after bool
		shape string
	}{
		{0, false, "(10 ((1 2 _) 3 (4 5 _)) _)"},
		{0, true, "((1 10 2) 3 (4 5 _))"},
		{1, false, "((1 10 2) 3 (4 5 _))"},
		{1, true, "((1 2 10) 3 (4 5 _))"},
		{2, false, "((1 2 _) (10 3 _) (4 5 _))"},
		{2, true, "((1 2 _) (3 10 _) (4 5 _))"},
		{3, false, "((1 2 _) 3 (10 4 5))"},
		{3, true, "((1 2 _) 3 (4 10 5))"},
		{4, false, "((1 2 _) 3 (4 10 5))"},
		{4, true, "(((1 2 _) 3 (4 5 _)) 10 _)"},
	}
	for i, x := range c {
		m := l.Insert(x.at, 10, x.after)
		if shape := m.FormatInline(); shape != x.shape {
			t.Errorf("%d: expected shape %s, is %s", i, x.shape, shape)
		}
		pos := x.at
		if x.after {
			pos++
		}
		want := slices.Insert(ints(1, 6), pos, 10)
		assert.Equal(t, want, m.ToSlice(), "case %d", i)
		if err := m.CheckStructure(); err != nil {
			t.Errorf("%d: %v", i, err)
		}
	}
	assert.Equal(t, "((1 2 _) 3 (4 5 _))", l.FormatInline(), "original list changed")
}

func TestAssocBeforeAfter(t *testing.T) {
	l := Of(1, 2, 3, 4)
	assert.Equal(t, "(1 (2 3 _) (10 4 _))", l.AssocBefore(3, 10).FormatInline())
	assert.Equal(t, "(1 (2 3 _) (4 10 _))", l.AssocAfter(3, 10).FormatInline())
	assert.Equal(t, "(1 (2 3 _) (4 10 _))", l.Append(10).FormatInline())
	assert.Equal(t, "((10 1 _) (2 3 _) 4)", l.Prepend(10).FormatInline())
}

func TestAppendSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	shapes := []string{
		"0",
		"(0 1 _)",
		"(0 1 2)",
		"((0 1 2) 3 _)",
		"((0 1 2) 3 4)",
		"((0 1 2) 3 (4 5 _))",
		"((0 1 2) 3 (4 5 6))",
		"(((0 1 2) 3 (4 5 6)) 7 _)",
	}
	var l List[int]
	for i, shape := range shapes {
		l = l.Append(i)
		if l.FormatInline() != shape {
			t.Errorf("after appending %d expected %s, is %s", i, shape, l.FormatInline())
		}
	}
}

func TestAppendPrependMany(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	var l List[int]
	for i := 0; i < 500; i++ {
		l = l.Append(i).Prepend(-i - 1)
	}
	assert.Equal(t, 1000, l.Len())
	assert.NoError(t, l.CheckStructure())
	assert.Equal(t, -500, l.First())
	assert.Equal(t, 499, l.Last())
	assert.Equal(t, ints(-500, 500), l.ToSlice())
}

func TestDissoc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	l := Of(1, 2, 3, 4, 5)
	c := []struct {
		at    int
		shape string
	}{
		{0, "(2 3 (4 5 _))"},
		{1, "(1 3 (4 5 _))"},
		{2, "((1 2 _) (4 5 _) _)"},
		{3, "((1 2 _) 3 5)"},
		{4, "((1 2 _) 3 4)"},
	}
	for i, x := range c {
		m := l.Dissoc(x.at)
		if shape := m.FormatInline(); shape != x.shape {
			t.Errorf("%d: expected shape %s, is %s", i, x.shape, shape)
		}
		if err := m.CheckStructure(); err != nil {
			t.Errorf("%d: %v", i, err)
		}
	}
	assert.Equal(t, "(_ _ _)", Of(1).Dissoc(0).FormatInline())
}

func TestDissocUntilEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	items := ints(0, 40)
	l := From(items)
	for len(items) > 0 {
		at := len(items) / 3
		items = slices.Delete(items, at, at+1)
		l = l.Dissoc(at)
		if err := l.CheckStructure(); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(items, l.ToSlice()) {
			t.Fatalf("expected %v, is %v", items, l.ToSlice())
		}
	}
	assert.True(t, l.IsEmpty())
}

func TestRestButlast(t *testing.T) {
	assert.Equal(t, "2", Of(1, 2).Rest().FormatInline())
	assert.Equal(t, "(2 3 _)", Of(1, 2, 3).Rest().FormatInline())
	assert.Equal(t, "((2 3 _) 4 _)", Of(1, 2, 3, 4).Rest().FormatInline())
	assert.Equal(t, "(1 (2 3 _) _)", Of(1, 2, 3, 4).Butlast().FormatInline())
	l := Of(1, 2, 3, 4, 5)
	for !l.IsEmpty() {
		l = l.Rest()
		assert.NoError(t, l.CheckStructure())
	}
}

func TestSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	items := ints(1, 12)
	l := From(items)
	for start := 0; start <= len(items); start++ {
		for end := start; end <= len(items); end++ {
			s := l.Slice(start, end)
			if !slices.Equal(items[start:end], s.ToSlice()) {
				t.Errorf("slice [%d…%d): expected %v, is %v", start, end, items[start:end], s.ToSlice())
			}
			if err := s.CheckStructure(); err != nil {
				t.Errorf("slice [%d…%d): %v", start, end, err)
			}
		}
	}
	if l.Slice(4, 7).root != l.root.middle {
		t.Error("expected complete subtree to be shared by slice")
	}
}

func TestConcat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	l := Of(1, 2).Concat(Of(3), Of[int](), Of(4, 5))
	assert.Equal(t, "((1 2 _) 3 (4 5 _))", l.FormatInline())
	l = Concat(Of(1), Of(2), Of(3), Of(4))
	assert.Equal(t, "(1 (2 3 _) 4)", l.FormatInline())
	l = Concat(Of(1, 2, 3), Immutable[int]())
	assert.Equal(t, "(1 2 3)", l.FormatInline())
	assert.True(t, Concat[int]().IsEmpty())
	//
	var lists []List[int]
	for i := 0; i < 10; i++ {
		lists = append(lists, From(ints(i*10, i*10+10)))
	}
	l = Concat(lists...)
	assert.Equal(t, ints(0, 100), l.ToSlice())
	assert.NoError(t, l.CheckStructure())
}

func TestReverse(t *testing.T) {
	l := Of(1, 2, 3, 4, 5)
	r := l.Reverse()
	assert.Equal(t, "((5 4 _) 3 (2 1 _))", r.FormatInline())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, r.ToSlice())
	assert.NoError(t, r.CheckStructure())
	assert.True(t, r.Reverse().SameShape(l))
	assert.True(t, Immutable[int]().Reverse().IsEmpty())
}

func TestRebalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	l := Immutable(WithoutBalancing[int]())
	for i := 0; i < 1000; i++ {
		l = l.Append(i)
	}
	if l.Depth() <= 8 {
		t.Errorf("expected appended tree to be deeper than a balanced one, depth = %d", l.Depth())
	}
	b := l.Rebalance()
	assert.Equal(t, 8, b.Depth())
	assert.True(t, b.SameShape(From(ints(0, 1000))))
	assert.NoError(t, b.CheckStructure())
	assert.Equal(t, 1000, l.Len(), "original list changed")
	assert.Greater(t, l.Depth(), 8, "original list changed")
}

func TestAutomaticBalancing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	l := Immutable(BalanceThreshold[int](3))
	for i := 0; i < 200; i++ {
		l = l.Append(i)
		if unbalanced(l.Depth(), l.Len(), 3) {
			t.Fatalf("list of length %d has depth %d", l.Len(), l.Depth())
		}
	}
	assert.Equal(t, ints(0, 200), l.ToSlice())
	assert.NoError(t, l.CheckStructure())
}

func TestUnbalanced(t *testing.T) {
	assert.False(t, unbalanced(50, 10, 50))
	assert.True(t, unbalanced(51, 2, 50))
	assert.False(t, unbalanced(51, 3, 50))
	assert.True(t, unbalanced(1000, 1<<62, 50))
	assert.False(t, unbalanced(1000, 1, -1))
}

func TestSearch(t *testing.T) {
	l := Of(3, 1, 4, 1, 5, 9, 2, 6)
	assert.Equal(t, 1, l.IndexOf(1))
	assert.Equal(t, 5, l.IndexOf(9))
	assert.Equal(t, -1, l.IndexOf(7))
	assert.Equal(t, 2, l.FindIndex(func(x int) bool { return x%2 == 0 }))
	assert.Equal(t, -1, l.FindIndex(func(x int) bool { return x > 10 }))
	//
	w := From([]string{"Alpha", "Beta"}, WithEquality(strings.EqualFold))
	assert.Equal(t, 1, w.IndexOf("BETA"))
	assert.Equal(t, -1, Of("Alpha", "Beta").IndexOf("BETA"))
}

func TestMapValues(t *testing.T) {
	l := Of(1, 2, 3, 4, 5)
	m := MapValues(l, func(x int) string { return strings.Repeat("x", x) })
	assert.Equal(t, "((x xx _) xxx (xxxx xxxxx _))", m.FormatInline())
	assert.NoError(t, m.CheckStructure())
	assert.True(t, MapValues(Immutable[int](), func(x int) int { return x }).IsEmpty())
}

func TestIteration(t *testing.T) {
	l := From(ints(0, 20))
	var seen []int
	for v := range l.Items() {
		if v == 5 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, ints(0, 5), seen)
	for i, v := range l.All() {
		if i != v {
			t.Errorf("expected index %d to carry %d, is %d", i, i, v)
		}
	}
	sum := 0
	l.Each(func(v int) { sum += v })
	assert.Equal(t, 190, sum)
	assert.Equal(t, ints(0, 20), FromSeq(slices.Values(ints(0, 20))).ToSlice())
}

func TestEquality(t *testing.T) {
	a := Of(1, 2, 3, 4)
	b := Of(1).Append(2).Append(3).Append(4)
	assert.Equal(t, "((1 2 3) 4 _)", b.FormatInline())
	assert.True(t, a.Equal(b))
	assert.False(t, a.SameShape(b))
	assert.True(t, a.SameShape(Of(1, 2, 3, 4)))
	assert.False(t, a.Equal(Of(1, 2, 3)))
	assert.False(t, a.Equal(Of(1, 2, 3, 5)))
}

func TestBuilder(t *testing.T) {
	b := NewBuilder[int]().Append(1, 2, 3)
	l := b.Append(4).List()
	assert.Equal(t, 4, b.Len())
	assert.True(t, l.SameShape(Of(1, 2, 3, 4)))
	b.Append(5)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, b.List().ToSlice())
}

func TestFormatting(t *testing.T) {
	l := Of(1, 2, 3, 4, 5)
	assert.Equal(t, "List[3, (1 2 3)]", Of(1, 2, 3).String())
	assert.Equal(t, "List[20, …]", From(ints(0, 20)).String())
	tree := l.Tree()
	t.Logf("\n%s", tree)
	assert.True(t, strings.HasPrefix(tree, "List(size=5, depth=3)\n"))
	assert.Contains(t, tree, "[size=2, depth=2]")
}

func TestContractViolations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ternary.list")
	defer teardown()
	//
	l := Of(1, 2, 3)
	var empty List[int]
	c := []struct {
		f        func() List[int]
		sentinel error
	}{
		{func() List[int] { l.Get(3); return l }, ternary.ErrIndexOutOfRange},
		{func() List[int] { l.Get(-1); return l }, ternary.ErrIndexOutOfRange},
		{func() List[int] { return l.Assoc(3, 0) }, ternary.ErrIndexOutOfRange},
		{func() List[int] { return l.Insert(5, 0, true) }, ternary.ErrIndexOutOfRange},
		{func() List[int] { return empty.Insert(0, 0, true) }, ternary.ErrIndexOutOfRange},
		{func() List[int] { return l.Dissoc(3) }, ternary.ErrIndexOutOfRange},
		{func() List[int] { return empty.Dissoc(0) }, ternary.ErrEmptyCollection},
		{func() List[int] { return empty.Rest() }, ternary.ErrEmptyCollection},
		{func() List[int] { return empty.Butlast() }, ternary.ErrEmptyCollection},
		{func() List[int] { empty.First(); return l }, ternary.ErrEmptyCollection},
		{func() List[int] { empty.Last(); return l }, ternary.ErrEmptyCollection},
		{func() List[int] { return l.Slice(2, 1) }, ternary.ErrInvalidSlice},
		{func() List[int] { return l.Slice(0, 4) }, ternary.ErrInvalidSlice},
		{func() List[int] { return l.Slice(-1, 2) }, ternary.ErrInvalidSlice},
	}
	for i, x := range c {
		_, err := result.Try(x.f).Get()
		if !errors.Is(err, x.sentinel) {
			t.Errorf("%d: expected error %v, got %v", i, x.sentinel, err)
		}
	}
}

func TestCheckStructureDetectsCorruption(t *testing.T) {
	c := []*node[int]{
		{kind: branchNode, size: 5, depth: 2, left: leaf(1), middle: leaf(2)},
		{kind: branchNode, size: 2, depth: 3, left: leaf(1), middle: leaf(2)},
		{kind: branchNode, size: 2, depth: 2, left: leaf(1), right: leaf(2)},
		{kind: branchNode, size: 1, depth: 2, left: leaf(1)},
		{kind: leafNode, size: 2, depth: 1},
		{kind: branchNode, size: 0, depth: 1, left: emptyBranch[int]()},
	}
	for i, root := range c {
		err := List[int]{root: root}.CheckStructure()
		if !errors.Is(err, ternary.ErrCorruptTree) {
			t.Errorf("%d: expected corrupt tree to be detected, got %v", i, err)
		}
	}
	bad := List[int]{root: c[0]}
	_, err := result.Try(func() int { return bad.Get(4) }).Get()
	assert.ErrorIs(t, err, ternary.ErrCorruptTree)
}

func TestIndexLaw(t *testing.T) {
	l := From(ints(0, 30)).Append(30).Prepend(-1)
	for i := 0; i < l.Len(); i++ {
		m := l.Assoc(i, 100)
		for j := 0; j < l.Len(); j++ {
			want := l.Get(j)
			if j == i {
				want = 100
			}
			if m.Get(j) != want {
				t.Fatalf("after Assoc(%d): expected item #%d to be %d, is %d", i, j, want, m.Get(j))
			}
		}
	}
}
