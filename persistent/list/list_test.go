package list

import (
	"errors"
	"math/rand"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/immutable/persistent/vector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := Of("x")
	l = l.Clear()
	assert.True(t, l.IsEmpty())
	assert.True(t, l.Same(Empty[string]()), "cleared list should be the canonical empty list")
	l = l.Add("x").Add("z")
	l, err := l.Set(0, "y")
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "z"}, l.ToSlice())
	//
	removed := l.Remove("y")
	assert.Equal(t, []string{"z"}, removed.ToSlice())
	// left to right: the argument of AddAll is the list already removed from
	assert.Equal(t, []string{"z", "z"}, removed.AddAll(removed).ToSlice())
	// the pre-remove snapshot is still intact and may be used as well
	assert.Equal(t, []string{"z", "y", "z"}, removed.AddAll(l).ToSlice())
	assert.Equal(t, []string{"y", "z"}, l.ToSlice())
}

func TestListEmpty(t *testing.T) {
	var zero List[int]
	assert.True(t, zero.Same(Empty[int]()))
	assert.True(t, zero.Equals(Of[int]()))
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, "[]", zero.String())
	assert.NotNil(t, zero.ToSlice())
	assert.Empty(t, zero.ToSlice())
	_, err := zero.Pop()
	assert.ErrorIs(t, err, ErrEmptyCollection)
	assert.True(t, zero.First().IsNothing())
	assert.True(t, zero.Last().IsNothing())
	assert.Equal(t, Empty[int]().Hash(), FromSlice([]int{}).Hash())
	//
	l, err := Of(1).Pop()
	require.NoError(t, err)
	assert.True(t, l.Same(Empty[int]()), "list emptied by Pop should be the canonical empty list")
	l, err = Of(1).RemoveAt(0)
	require.NoError(t, err)
	assert.True(t, l.Same(Empty[int]()), "list emptied by RemoveAt should be the canonical empty list")
	assert.True(t, Of(1).Remove(1).Same(Empty[int]()))
}

func TestListBounds(t *testing.T) {
	for _, n := range []int{0, 1, 2, 33, 100} {
		l := FromSlice(seq(0, n))
		for _, i := range []int{-1, n} {
			_, err := l.Get(i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange, "Get(%d) on size %d", i, n)
			_, err = l.Set(i, 0)
			assert.ErrorIs(t, err, ErrIndexOutOfRange, "Set(%d) on size %d", i, n)
			_, err = l.RemoveAt(i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange, "RemoveAt(%d) on size %d", i, n)
		}
		for _, i := range []int{-1, n + 1} {
			_, err := l.Insert(i, 0)
			assert.ErrorIs(t, err, ErrIndexOutOfRange, "Insert(%d) on size %d", i, n)
			_, err = l.InsertAll(i, Of(0))
			assert.ErrorIs(t, err, ErrIndexOutOfRange, "InsertAll(%d) on size %d", i, n)
			_, err = l.IteratorAt(i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange, "IteratorAt(%d) on size %d", i, n)
		}
		assert.Equal(t, seq(0, n), l.ToSlice(), "failed operations must not change the list")
	}
	_, err := Of(1, 2, 3).Get(5)
	var opErr *vector.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "Get", opErr.Op)
	assert.Equal(t, 5, opErr.Index)
	assert.Equal(t, 3, opErr.Len)
}

func TestListInsertAtEnd(t *testing.T) {
	l := Of("a", "b")
	l, err := l.Insert(l.Len(), "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, l.ToSlice())
	l, err = l.Insert(0, "_")
	require.NoError(t, err)
	assert.Equal(t, []string{"_", "a", "b", "c"}, l.ToSlice())
}

func TestListPersistence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	base := FromSlice(seq(0, 200))
	snapshot := base.ToSlice()
	derived := []List[int]{
		base.Add(200),
		base.AddAll(base),
		base.AddSlice(-1, -2),
		base.Remove(77),
		base.RemoveIf(func(x int) bool { return x%3 == 0 }),
		base.Clear(),
	}
	for _, op := range []func(List[int]) (List[int], error){
		func(l List[int]) (List[int], error) { return l.Set(100, -1) },
		func(l List[int]) (List[int], error) { return l.Insert(3, -1) },
		func(l List[int]) (List[int], error) { return l.RemoveAt(150) },
		func(l List[int]) (List[int], error) { return l.Pop() },
		func(l List[int]) (List[int], error) { return l.InsertAll(10, Of(-1, -2)) },
		func(l List[int]) (List[int], error) { return l.SubList(5, 50) },
	} {
		d, err := op(base)
		require.NoError(t, err)
		derived = append(derived, d)
	}
	if diff := cmp.Diff(snapshot, base.ToSlice()); diff != "" {
		t.Errorf("expected base list to be unchanged (-want +got):\n%s", diff)
	}
	for i, d := range derived {
		assert.False(t, d.Equals(base), "derived list #%d should differ from base", i)
	}
	x, _ := derived[6].Get(100)
	assert.Equal(t, -1, x)
	y, _ := base.Get(100)
	assert.Equal(t, 100, y)
}

func TestListEqualsIsPathIndependent(t *testing.T) {
	n := 300
	expected := seq(0, n)
	var pushed, prepended List[int]
	for i := 0; i < n; i++ {
		pushed = pushed.Add(i)
		prepended, _ = prepended.Insert(0, n-1-i)
	}
	concat := FromSlice(seq(0, 100)).AddAll(FromSlice(seq(100, n)))
	edited, _ := FromSlice(seq(0, n+1)).RemoveAt(n)
	edited, _ = edited.Set(7, -7)
	edited, _ = edited.Set(7, 7)
	for i, l := range []List[int]{FromSlice(expected), pushed, prepended, concat, edited, FromSeq(slices.Values(expected))} {
		assert.Equal(t, expected, l.ToSlice(), "list #%d", i)
		assert.True(t, l.Equals(pushed), "list #%d should equal pushed list", i)
		assert.True(t, pushed.Equals(l), "pushed list should equal list #%d", i)
		assert.Equal(t, pushed.Hash(), l.Hash(), "list #%d should hash like pushed list", i)
	}
	assert.False(t, pushed.Equals(pushed.Add(0)))
	popped, _ := pushed.Pop()
	assert.False(t, pushed.Equals(popped))
	changed, _ := pushed.Set(299, 0)
	assert.False(t, pushed.Equals(changed))
	assert.NotEqual(t, Of(1, 2).Hash(), Of(2, 1).Hash())
}

func TestListSame(t *testing.T) {
	l := Of(1, 2, 3)
	assert.True(t, l.Same(l))
	assert.True(t, l.Remove(4).Same(l), "removing an absent value should return the receiver")
	assert.True(t, l.RemoveIf(func(int) bool { return false }).Same(l))
	assert.True(t, Filter(l, func(int) bool { return true }).Same(l))
	assert.True(t, l.AddSlice().Same(l))
	sub, err := l.SubList(0, 3)
	require.NoError(t, err)
	assert.True(t, sub.Same(l))
	assert.False(t, l.Same(Of(1, 2, 3)), "equal lists built separately are not the same")
	assert.True(t, l.Equals(Of(1, 2, 3)))
}

func TestListQueries(t *testing.T) {
	l := Of("a", "b", "c", "b")
	assert.Equal(t, 1, l.IndexOf("b"))
	assert.Equal(t, 3, l.LastIndexOf("b"))
	assert.Equal(t, -1, l.IndexOf("x"))
	assert.Equal(t, -1, l.LastIndexOf("x"))
	assert.Equal(t, 2, l.Position("c").WithDefault(-1))
	assert.True(t, l.Position("x").IsNothing())
	assert.True(t, l.Contains("c"))
	assert.False(t, l.Contains("x"))
	assert.True(t, l.ContainsAll(Of("c", "a")))
	assert.True(t, l.ContainsAll(Empty[string]()))
	assert.False(t, l.ContainsAll(Of("a", "x")))
	assert.Equal(t, "a", l.First().WithDefault("-"))
	assert.Equal(t, "b", l.Last().WithDefault("-"))
	assert.Equal(t, "c", l.Find(func(s string) bool { return s > "b" }).WithDefault("-"))
	assert.True(t, l.Find(func(s string) bool { return s > "x" }).IsNothing())
	assert.Equal(t, "[a b c b]", l.String())
	assert.Equal(t, []string{"a", "c", "b"}, l.Remove("b").ToSlice(), "Remove drops the first occurrence only")
}

func TestListBulk(t *testing.T) {
	l := Of(1, 4)
	l, err := l.InsertAll(1, Of(2, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
	l, err = l.InsertAll(l.Len(), Of(5))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.ToSlice())
	same, err := l.InsertAll(2, Empty[int]())
	require.NoError(t, err)
	assert.True(t, same.Same(l))
	//
	assert.Equal(t, []int{1, 3}, Of(1, 2, 3, 2, 4).RemoveAll(Of(2, 4)).ToSlice())
	assert.Equal(t, []int{2, 2, 4}, Of(1, 2, 3, 2, 4).RetainAll(Of(2, 4, 9)).ToSlice())
	kept := Of(1, 2, 3)
	assert.True(t, kept.RetainAll(Of(3, 2, 1, 0)).Same(kept), "retaining every element should return the receiver")
	assert.True(t, kept.RetainAll(Empty[int]()).Same(Empty[int]()))
	assert.True(t, Empty[int]().RetainAll(kept).IsEmpty())
	assert.Equal(t, []int{2}, Of(1, 2, 3).RemoveIf(func(x int) bool { return x != 2 }).ToSlice())
	assert.True(t, Of(1, 2).RemoveAll(Of(1, 2)).Same(Empty[int]()))
	//
	big := FromSlice(seq(0, 1000))
	sub, err := big.SubList(30, 70)
	require.NoError(t, err)
	assert.Equal(t, seq(30, 70), sub.ToSlice())
	sub, err = big.SubList(500, 500)
	require.NoError(t, err)
	assert.True(t, sub.IsEmpty())
	for _, r := range [][2]int{{-1, 2}, {0, 1001}, {6, 5}} {
		_, err = big.SubList(r[0], r[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "SubList(%d, %d)", r[0], r[1])
	}
	//
	assert.Equal(t, seq(0, 1005), big.AddSeq(slices.Values(seq(1000, 1005))).ToSlice())
}

func TestListFunctional(t *testing.T) {
	l := FromSlice(seq(1, 11))
	squares := Map(l, func(x int) int { return x * x })
	assert.Equal(t, 385, Fold(squares, 0, func(acc, x int) int { return acc + x }))
	even := Filter(l, func(x int) bool { return x%2 == 0 })
	assert.Equal(t, []int{2, 4, 6, 8, 10}, even.ToSlice())
	labels := Map(even, func(x int) string { return string(rune('a' + x)) })
	assert.Equal(t, "[c e g i k]", labels.String())
	assert.True(t, Map(Empty[int](), func(x int) int { return x }).Same(Empty[int]()))
}

func TestListIterators(t *testing.T) {
	l := FromSlice(seq(0, 70))
	var forward, backward []int
	for i, x := range l.All() {
		assert.Equal(t, i, x)
		forward = append(forward, x)
	}
	for i, x := range l.Backward() {
		assert.Equal(t, i, x)
		backward = append(backward, x)
	}
	assert.Equal(t, seq(0, 70), forward)
	slices.Reverse(backward)
	assert.Equal(t, seq(0, 70), backward)
	assert.Equal(t, seq(0, 70), slices.Collect(l.Values()))
	for x := range l.Values() {
		if x == 3 {
			break
		}
	}
	//
	it, err := l.IteratorAt(68)
	require.NoError(t, err)
	x, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 68, x)
	it.Next()
	_, ok = it.Next()
	assert.False(t, ok)
	x, ok = it.Previous()
	assert.True(t, ok)
	assert.Equal(t, 69, x)
	//
	it = l.Iterator()
	l2 := l.Add(70)
	cnt := 0
	for it.HasNext() {
		it.Next()
		cnt++
	}
	assert.Equal(t, 70, cnt, "iterator should not see elements added later")
	assert.Equal(t, 71, l2.Len())
}

func TestListDumpShowsEditedStructure(t *testing.T) {
	l := FromSlice(seq(0, 64))
	l, err := l.Insert(0, -1)
	require.NoError(t, err)
	dump := l.Dump()
	assert.Contains(t, dump, "Vector(length=65, height=1, degree=32)")
	assert.Contains(t, dump, "tail=[63]")
}

func TestListRandomEdits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	var l List[int]
	var model []int
	for step := 0; step < 2000; step++ {
		switch op := rnd.Intn(10); {
		case op < 3:
			x := rnd.Intn(50)
			l, model = l.Add(x), append(model, x)
		case op < 5:
			i, x := rnd.Intn(len(model)+1), rnd.Intn(50)
			var err error
			l, err = l.Insert(i, x)
			require.NoError(t, err)
			model = slices.Insert(model, i, x)
		case op < 6 && len(model) > 0:
			i, x := rnd.Intn(len(model)), rnd.Intn(50)
			var err error
			l, err = l.Set(i, x)
			require.NoError(t, err)
			model[i] = x
		case op < 8 && len(model) > 0:
			i := rnd.Intn(len(model))
			var err error
			l, err = l.RemoveAt(i)
			require.NoError(t, err)
			model = slices.Delete(model, i, i+1)
		case op < 9:
			x := rnd.Intn(50)
			l = l.Remove(x)
			if i := slices.Index(model, x); i >= 0 {
				model = slices.Delete(model, i, i+1)
			}
		default:
			chunk := seq(0, rnd.Intn(40))
			l, model = l.AddAll(FromSlice(chunk)), append(model, chunk...)
		}
		if len(model) == 0 {
			require.True(t, l.Same(Empty[int]()), "step %d: empty list should be canonical", step)
			continue
		}
		if diff := cmp.Diff(model, l.ToSlice()); diff != "" {
			t.Fatalf("step %d: list differs from model (-want +got):\n%s", step, diff)
		}
		if step%50 == 0 {
			m := FromSlice(model)
			require.True(t, l.Equals(m), "step %d", step)
			require.Equal(t, m.Hash(), l.Hash(), "step %d", step)
		}
	}
}

func TestListConcurrentDerivation(t *testing.T) {
	base := FromSlice(seq(0, 500))
	var wg sync.WaitGroup
	results := make([]List[int], 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			l := base
			for i := 0; i < 100; i++ {
				l, _ = l.Set(i*5, -g)
				l = l.Add(g)
			}
			results[g] = l
		}(g)
	}
	wg.Wait()
	assert.Equal(t, seq(0, 500), base.ToSlice())
	for g, l := range results {
		assert.Equal(t, 600, l.Len())
		x, _ := l.Get(495)
		assert.Equal(t, -g, x)
		x, _ = l.Get(599)
		assert.Equal(t, g, x)
	}
}

func seq(from, to int) []int {
	s := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		s = append(s, i)
	}
	return s
}
