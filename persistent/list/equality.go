package list

import (
	"hash/maphash"

	"github.com/xiaq/persistent/hash"
	"github.com/zeebo/blake3"
)

// seed is fixed for the lifetime of the process. Hash values are not stable across
// processes, use Digest for that.
var seed = maphash.MakeSeed()

// Equals reports whether l and other hold equal elements in the same order.
// Equality does not depend on the history of edits which produced either list.
func (l List[T]) Equals(other List[T]) bool {
	if l.Same(other) {
		return true
	}
	return l.vec.EqualFunc(other.vec, func(x, y T) bool { return x == y })
}

// Same reports whether l and other are the very same incarnation of a list.
// Same lists are always equal, the reverse does not hold.
func (l List[T]) Same(other List[T]) bool {
	return l.vec.Same(other.vec)
}

// Hash returns a hash value of l, consistent with Equals: equal lists have equal hash
// values within the same process.
func (l List[T]) Hash() uint32 {
	h := hash.DJBCombine(hash.DJBInit, uint32(l.Len()))
	for x := range l.Values() {
		h = hash.DJBCombine(h, hash.UInt64(maphash.Comparable(seed, x)))
	}
	return h
}

// Digest returns a BLAKE3 digest of the deterministic CBOR encoding of l. Unlike Hash,
// digests are stable across processes and may be stored or exchanged.
func (l List[T]) Digest() ([32]byte, error) {
	data, err := l.MarshalCBOR()
	if err != nil {
		return [32]byte{}, err
	}
	return blake3.Sum256(data), nil
}
