package vector

// Iterator walks the elements of a vector, forwards or backwards. An iterator is bound to
// the incarnation of the vector it has been created from; vectors derived later on do
// not influence it in any way. Use it like this:
//
//	for it := vec.Iterator(); it.HasNext(); {
//		x, _ := it.Next()
//		// do something with x
//	}
//
// Iterators are not safe for concurrent use, but any number of iterators may walk the
// same vector concurrently.
type Iterator[T any] struct {
	v     Vector[T]
	index int         // position of the element returned by the next call to Next
	chunk []T         // chunk holding the element most recently looked up
	base  int         // position of chunk[0]
	path  slotPath[T] // re-usable buffer for trie lookups
}

// Iterator returns an iterator positioned at the start of v.
func (v Vector[T]) Iterator() *Iterator[T] {
	v.props = v.props.init()
	return &Iterator[T]{v: v}
}

// IteratorAt returns an iterator positioned before element i, i.e. the first call of
// Next will return element i and the first call of Previous will return element i-1.
// i may be equal to Len().
func (v Vector[T]) IteratorAt(i int) (*Iterator[T], error) {
	if i < 0 || i > v.length {
		return nil, indexError("IteratorAt", i, v.length)
	}
	it := v.Iterator()
	it.index = i
	return it, nil
}

// HasNext returns true if there are elements left to the right.
func (it *Iterator[T]) HasNext() bool {
	return it.index < it.v.length
}

// Next returns the next element and advances the iterator. If the iterator is exhausted,
// Next returns the zero value for T together with false.
func (it *Iterator[T]) Next() (T, bool) {
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	x := it.at(it.index)
	it.index++
	return x, true
}

// HasPrevious returns true if there are elements left to the left.
func (it *Iterator[T]) HasPrevious() bool {
	return it.index > 0
}

// Previous steps the iterator backwards and returns the element passed. If the iterator
// is at the start, Previous returns the zero value for T together with false.
func (it *Iterator[T]) Previous() (T, bool) {
	if !it.HasPrevious() {
		var zero T
		return zero, false
	}
	it.index--
	return it.at(it.index), true
}

// Index returns the position of the element the next call to Next would return.
func (it *Iterator[T]) Index() int {
	return it.index
}

// Reset re-positions the iterator at the start of the vector.
func (it *Iterator[T]) Reset() {
	it.index = 0
}

// at returns element i. The trie is consulted only when i lies outside of the cached chunk.
func (it *Iterator[T]) at(i int) T {
	if it.chunk == nil || i < it.base || i >= it.base+len(it.chunk) {
		it.base = i &^ it.v.mask
		if i >= it.v.tailOffset() {
			it.chunk = it.v.tail
		} else {
			it.path = it.v.locate(i, it.path)
			it.chunk = it.path.last().node.leafs
		}
	}
	return it.chunk[i-it.base]
}
