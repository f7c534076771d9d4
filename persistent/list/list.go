package list

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/immutable/maybe"
	"github.com/npillmayer/immutable/persistent/vector"
)

// Errors reported by list operations. Failures are of type *vector.OpError and wrap
// one of these, use errors.Is to check.
var (
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange
	ErrEmptyCollection = vector.ErrEmptyCollection
)

// List is an immutable persistent list. The zero value is the empty list.
type List[T comparable] struct {
	vec vector.Vector[T]
}

// Empty returns the canonical empty list. It allocates nothing.
func Empty[T comparable]() List[T] {
	return List[T]{}
}

// Of creates a list holding xs, in order.
func Of[T comparable](xs ...T) List[T] {
	return FromSlice(xs)
}

// FromSlice creates a list holding a copy of xs.
func FromSlice[T comparable](xs []T) List[T] {
	if len(xs) == 0 {
		return Empty[T]()
	}
	return List[T]{vec: vector.FromSlice(xs)}
}

// FromSeq creates a list from the values of seq, in order.
func FromSeq[T comparable](seq iter.Seq[T]) List[T] {
	return FromSlice(slices.Collect(seq))
}

// wrap normalizes empty results to the canonical empty list.
func wrap[T comparable](v vector.Vector[T]) List[T] {
	if v.Len() == 0 {
		return Empty[T]()
	}
	return List[T]{vec: v}
}

// --- Read ------------------------------------------------------------------

// Len returns the number of elements of l.
func (l List[T]) Len() int {
	return l.vec.Len()
}

// IsEmpty returns true if l has no elements.
func (l List[T]) IsEmpty() bool {
	return l.vec.Len() == 0
}

// Get returns the element at position i.
func (l List[T]) Get(i int) (T, error) {
	return l.vec.Get(i)
}

// First returns the first element of l, if any.
func (l List[T]) First() maybe.Maybe[T] {
	if x, err := l.vec.Get(0); err == nil {
		return maybe.Just(x)
	}
	return maybe.Nothing[T]()
}

// Last returns the last element of l, if any.
func (l List[T]) Last() maybe.Maybe[T] {
	if x, err := l.vec.Get(l.Len() - 1); err == nil {
		return maybe.Just(x)
	}
	return maybe.Nothing[T]()
}

// Find returns the first element of l which satisfies pred, if any.
func (l List[T]) Find(pred func(T) bool) maybe.Maybe[T] {
	for _, x := range l.All() {
		if pred(x) {
			return maybe.Just(x)
		}
	}
	return maybe.Nothing[T]()
}

// IndexOf returns the position of the first element equal to x, or -1.
func (l List[T]) IndexOf(x T) int {
	for i, y := range l.All() {
		if x == y {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the position of the last element equal to x, or -1.
func (l List[T]) LastIndexOf(x T) int {
	for i, y := range l.Backward() {
		if x == y {
			return i
		}
	}
	return -1
}

// Position returns the position of the first element equal to x, if any.
func (l List[T]) Position(x T) maybe.Maybe[int] {
	if i := l.IndexOf(x); i >= 0 {
		return maybe.Just(i)
	}
	return maybe.Nothing[int]()
}

// Contains returns true if l holds an element equal to x.
func (l List[T]) Contains(x T) bool {
	return l.IndexOf(x) >= 0
}

// ContainsAll returns true if every element of other is contained in l.
func (l List[T]) ContainsAll(other List[T]) bool {
	if other.IsEmpty() {
		return true
	}
	set := l.set()
	for x := range other.Values() {
		if _, ok := set[x]; !ok {
			return false
		}
	}
	return true
}

// SubList returns a list holding the elements at positions from…to-1.
func (l List[T]) SubList(from, to int) (List[T], error) {
	if from < 0 || from > l.Len() {
		return Empty[T](), &vector.OpError{Op: "SubList", Index: from, Len: l.Len(), Err: ErrIndexOutOfRange}
	}
	if to < from || to > l.Len() {
		return Empty[T](), &vector.OpError{Op: "SubList", Index: to, Len: l.Len(), Err: ErrIndexOutOfRange}
	}
	if from == 0 && to == l.Len() {
		return l, nil
	}
	xs := make([]T, 0, to-from)
	it, _ := l.vec.IteratorAt(from)
	for it.Index() < to {
		x, _ := it.Next()
		xs = append(xs, x)
	}
	return FromSlice(xs), nil
}

// ToSlice returns a fresh slice holding the elements of l. It is never nil.
func (l List[T]) ToSlice() []T {
	return l.vec.Slice()
}

// Dump renders the internal structure of l for debugging purposes.
func (l List[T]) Dump() string {
	return l.vec.Dump()
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, x := range l.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Derive ----------------------------------------------------------------

// Set returns a copy of l with the element at position i replaced by x.
func (l List[T]) Set(i int, x T) (List[T], error) {
	v, err := l.vec.Set(i, x)
	if err != nil {
		return l, err
	}
	return wrap(v), nil
}

// Add returns a copy of l with x appended.
func (l List[T]) Add(x T) List[T] {
	return wrap(l.vec.Push(x))
}

// Insert returns a copy of l with x inserted at position i. i may be equal to Len(),
// which is equivalent to Add(x).
func (l List[T]) Insert(i int, x T) (List[T], error) {
	v, err := l.vec.Insert(i, x)
	if err != nil {
		return l, err
	}
	return wrap(v), nil
}

// Remove returns a copy of l without the first element equal to x. If l does not contain
// x, l itself is returned (see Same).
func (l List[T]) Remove(x T) List[T] {
	i := l.IndexOf(x)
	if i < 0 {
		return l
	}
	v, err := l.vec.Remove(i)
	assertThat(err == nil, "cannot remove element at valid index %d: %v", i, err)
	return wrap(v)
}

// RemoveAt returns a copy of l without the element at position i.
func (l List[T]) RemoveAt(i int) (List[T], error) {
	v, err := l.vec.Remove(i)
	if err != nil {
		return l, err
	}
	return wrap(v), nil
}

// Pop returns a copy of l without its last element.
func (l List[T]) Pop() (List[T], error) {
	v, err := l.vec.Pop()
	if err != nil {
		return l, err
	}
	return wrap(v), nil
}

// Clear returns the canonical empty list.
func (l List[T]) Clear() List[T] {
	return Empty[T]()
}

// AddAll returns a copy of l with all elements of other appended, in order.
func (l List[T]) AddAll(other List[T]) List[T] {
	return wrap(l.vec.Concat(other.vec))
}

// AddSlice returns a copy of l with xs appended, in order.
func (l List[T]) AddSlice(xs ...T) List[T] {
	if len(xs) == 0 {
		return l
	}
	return wrap(l.vec.Concat(vector.FromSlice(xs)))
}

// AddSeq returns a copy of l with the values of seq appended, in order.
func (l List[T]) AddSeq(seq iter.Seq[T]) List[T] {
	return l.AddSlice(slices.Collect(seq)...)
}

// InsertAll returns a copy of l with all elements of other inserted at position i.
// i may be equal to Len(), which is equivalent to AddAll(other).
func (l List[T]) InsertAll(i int, other List[T]) (List[T], error) {
	if i < 0 || i > l.Len() {
		return l, &vector.OpError{Op: "InsertAll", Index: i, Len: l.Len(), Err: ErrIndexOutOfRange}
	}
	if i == l.Len() {
		return l.AddAll(other), nil
	}
	if other.IsEmpty() {
		return l, nil
	}
	xs := l.ToSlice()
	tracer().Debugf("insert-all: rebuilding list of length %d", len(xs)+other.Len())
	return FromSlice(slices.Concat(xs[:i], other.ToSlice(), xs[i:])), nil
}

// RemoveAll returns a copy of l without any element contained in other.
func (l List[T]) RemoveAll(other List[T]) List[T] {
	if other.IsEmpty() || l.IsEmpty() {
		return l
	}
	set := other.set()
	return l.RemoveIf(func(x T) bool {
		_, found := set[x]
		return found
	})
}

// RetainAll returns a copy of l holding only the elements contained in other.
// If every element of l is contained in other, l itself is returned.
func (l List[T]) RetainAll(other List[T]) List[T] {
	if l.IsEmpty() {
		return l
	}
	set := other.set()
	return l.RemoveIf(func(x T) bool {
		_, found := set[x]
		return !found
	})
}

// RemoveIf returns a copy of l without any element satisfying pred. If no element
// satisfies pred, l itself is returned.
func (l List[T]) RemoveIf(pred func(T) bool) List[T] {
	var kept []T
	removed := false
	for i, x := range l.All() {
		if pred(x) {
			if !removed {
				kept = make([]T, 0, l.Len()-1)
				it, _ := l.vec.IteratorAt(0)
				for it.Index() < i {
					y, _ := it.Next()
					kept = append(kept, y)
				}
				removed = true
			}
			continue
		}
		if removed {
			kept = append(kept, x)
		}
	}
	if !removed {
		return l
	}
	return FromSlice(kept)
}

// --- Helpers ---------------------------------------------------------------

func (l List[T]) set() map[T]struct{} {
	set := make(map[T]struct{}, l.Len())
	for x := range l.Values() {
		set[x] = struct{}{}
	}
	return set
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.list: "+msg, msgargs...)
		panic(msg)
	}
}
