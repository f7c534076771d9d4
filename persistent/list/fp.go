package list

// Map returns a list holding f applied to every element of l, in order.
func Map[T, S comparable](l List[T], f func(T) S) List[S] {
	if l.IsEmpty() {
		return Empty[S]()
	}
	xs := make([]S, 0, l.Len())
	for x := range l.Values() {
		xs = append(xs, f(x))
	}
	return FromSlice(xs)
}

// Filter returns a list holding the elements of l which satisfy pred, in order.
// If every element satisfies pred, l itself is returned.
func Filter[T comparable](l List[T], pred func(T) bool) List[T] {
	return l.RemoveIf(func(x T) bool { return !pred(x) })
}

// Fold combines the elements of l from front to back, starting with zero.
func Fold[T comparable, R any](l List[T], zero R, f func(R, T) R) R {
	acc := zero
	for x := range l.Values() {
		acc = f(acc, x)
	}
	return acc
}
