package list

import (
	"iter"

	"github.com/npillmayer/immutable/persistent/vector"
)

// Iterator walks the elements of a list, forwards or backwards. It is bound to the list
// it has been created from.
type Iterator[T any] = vector.Iterator[T]

// Iterator returns an iterator positioned at the start of l.
func (l List[T]) Iterator() *Iterator[T] {
	return l.vec.Iterator()
}

// IteratorAt returns an iterator positioned before element i.
// i may be equal to Len().
func (l List[T]) IteratorAt(i int) (*Iterator[T], error) {
	return l.vec.IteratorAt(i)
}

// All returns a sequence of positions and elements of l, from front to back.
func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.vec.Iterator()
		for it.HasNext() {
			i := it.Index()
			x, _ := it.Next()
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns a sequence of the elements of l, from front to back.
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.vec.Iterator(); it.HasNext(); {
			x, _ := it.Next()
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns a sequence of positions and elements of l, from back to front.
func (l List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it, _ := l.vec.IteratorAt(l.vec.Len())
		for it.HasPrevious() {
			x, _ := it.Previous()
			if !yield(it.Index(), x) {
				return
			}
		}
	}
}
