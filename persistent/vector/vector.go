package vector

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding clones of nodes.

- Methods have value receivers. Each method works on its private copy of the vector header
  and hands it out as the new incarnation; nodes and tails reachable from a header are
  never written to.

- The trie holds tailOffset() elements in full leaves. The tail holds the rest, which are
  1…degree elements for a non-empty vector.

*/

// Vector is an immutable persistent vector. An empty instance is usable as an empty vector,
// i.e. this is legal:
//
//	vec := vector.Vector[int]{}.Push(42)
type Vector[T any] struct {
	props
	length int
	root   *vnode[T]
	tail   []T
}

// Immutable constructs an empty vector with options, if you need any.
// Use it like this:
//
//	vec := vector.Immutable[string](vector.DegreeExponent(3))
//	vec = vec.Push("Galaxy")
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{props: props{}.init()}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// DegreeExponent is an option to indirectly set the degree of the underlying trie for a
// vector. The degree of the trie will be 2^exp. Accepted exponents are [1…5]; default is 5,
// i.e. a degree of 32.
//
// Use it like this:
//
//	vec := vector.Immutable[int](vector.DegreeExponent(2))
func DegreeExponent(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = 1
		} else if n > int(maxBits) {
			n = int(maxBits)
		}
		return withBits(uint(n))
	}
	return Option{config: conf}
}

// FromSlice creates a vector holding a copy of xs. The trie is built bottom-up, level by
// level, without any intermediate incarnations.
func FromSlice[T any](xs []T, opts ...Option) Vector[T] {
	v := Immutable[T](opts...)
	if len(xs) == 0 {
		return v
	}
	v.length = len(xs)
	offset := v.tailOffset()
	v.tail = cloneTail(xs[offset:], len(xs)-offset)
	if offset == 0 {
		return v
	}
	level := make([]*vnode[T], 0, offset>>v.bits)
	for i := 0; i < offset; i += v.degree {
		level = append(level, newLeaf(xs[i:i+v.degree]))
	}
	var shift uint
	for len(level) > 1 {
		parents := make([]*vnode[T], 0, (len(level)+v.mask)>>v.bits)
		for i := 0; i < len(level); i += v.degree {
			node := emptyNode[T](v.degree)
			copy(node.children, level[i:min(i+v.degree, len(level))])
			parents = append(parents, node)
		}
		level = parents
		shift += v.bits
	}
	v.root, v.shift = level[0], shift
	tracer().Debugf("built vector of length %d with height %d", v.length, v.height())
	return v
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of v.
func (v Vector[T]) Len() int {
	return v.length
}

// Degree returns the branching factor of the trie of v.
func (v Vector[T]) Degree() int {
	return v.props.init().degree
}

// Get returns the element at position i.
func (v Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, indexError("Get", i, v.length)
	}
	v.props = v.props.init()
	return v.chunkAt(i)[i&v.mask], nil
}

// Set returns a copy of v with the element at position i replaced by value.
// Only the nodes on the path to the leaf holding i are copied.
func (v Vector[T]) Set(i int, value T) (Vector[T], error) {
	if i < 0 || i >= v.length {
		return v, indexError("Set", i, v.length)
	}
	v.props = v.props.init()
	if i >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[i&v.mask] = value
		v.tail = newTail
		return v, nil
	}
	path := v.locate(i, nil)
	leaf := path.last().clone()
	leaf.node.leafs[leaf.inx] = value
	v.root = path.dropLast().foldR(cloneSeam[T], leaf).node
	return v, nil
}

// Push returns a copy of v with value appended.
func (v Vector[T]) Push(value T) Vector[T] {
	v.props = v.props.init()
	if len(v.tail) < v.degree { // just append value to tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(v.tail)] = value
		v.tail = newTail
		v.length++
		return v
	}
	// tail is full ⇒ have to move tail into trie
	return v.pushFullTail(v.tail, []T{value})
}

// pushFullTail moves a full chunk into the trie, at the position of the current tail, and
// installs newTail as the tail. The current tail has to be full.
func (v Vector[T]) pushFullTail(full []T, newTail []T) Vector[T] {
	assertThat(len(v.tail) == v.degree, "inconsistency: vector.tail expected to be full")
	assertThat(len(full) == v.degree, "inconsistency: chunk to push expected to be full")
	trieSize := v.tailOffset()
	leaf := leafOf(full)
	switch {
	case v.root == nil: // tail becomes the root
		v.root, v.shift = leaf, 0
	case trieSize>>v.bits >= 1<<v.shift: // root is full ⇒ grow by one level
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, v.bits, v.degree, leaf)
		v.root = newRoot
		v.shift += v.bits
		tracer().Debugf("vector of length %d grows to height %d", trieSize+v.degree, v.height())
	default: // still space in root
		v.root = v.pushLeaf(v.shift, v.root, leaf, trieSize)
	}
	v.length = trieSize + v.degree + len(newTail)
	v.tail = newTail
	return v
}

// pushLeaf returns a copy of node with leaf hooked in at element position i.
func (v Vector[T]) pushLeaf(level uint, node, leaf *vnode[T], i int) *vnode[T] {
	cow := node.clone()
	inx := (i >> level) & v.mask
	if level == v.bits {
		cow.children[inx] = leaf
	} else if child := node.children[inx]; child == nil {
		cow.children[inx] = newPath(level-v.bits, v.bits, v.degree, leaf)
	} else {
		cow.children[inx] = v.pushLeaf(level-v.bits, child, leaf, i)
	}
	return cow
}

// Pop returns a copy of v without its last element.
func (v Vector[T]) Pop() (Vector[T], error) {
	if v.length == 0 {
		return v, emptyError("Pop")
	}
	v.props = v.props.init()
	if len(v.tail) > 1 {
		v.tail = cloneTail(v.tail, len(v.tail)-1)
		v.length--
		return v, nil
	}
	return v.dropTail(), nil
}

// dropTail discards a tail of length 1 and promotes the rightmost leaf of the trie to
// become the new tail. If the root is left with a single child, the trie loses a level.
func (v Vector[T]) dropTail() Vector[T] {
	assertThat(len(v.tail) == 1, "inconsistency: dropping tail of length %d", len(v.tail))
	trieSize := v.tailOffset()
	switch {
	case v.root == nil: // vector becomes empty
		return Vector[T]{props: v.props.withShift(0)}
	case v.shift == 0: // root vanishes into tail
		v.tail, v.root = v.root.leafs, nil
	default:
		v.tail = v.locate(trieSize-1, nil).last().node.leafs
		newRoot := v.popLeaf(v.shift, v.root, trieSize-1)
		if newRoot.children[1] == nil { // can lower the height
			newRoot = newRoot.children[0]
			v.shift -= v.bits
			tracer().Debugf("vector of length %d shrinks to height %d", trieSize, v.height())
		}
		v.root = newRoot
	}
	v.length = trieSize
	return v
}

// popLeaf returns a copy of node without the leaf holding element i, which has to be the
// last element of the trie. Returns nil if nothing is left of node.
func (v Vector[T]) popLeaf(level uint, node *vnode[T], i int) *vnode[T] {
	inx := (i >> level) & v.mask
	var child *vnode[T]
	if level > v.bits {
		child = v.popLeaf(level-v.bits, node.children[inx], i)
	}
	if child == nil && inx == 0 {
		return nil
	}
	cow := node.clone()
	cow.children[inx] = child
	return cow
}

// Insert returns a copy of v with value inserted at position i, moving all elements from
// position i onwards one position to the right. Inserting at Len() is equivalent to Push.
func (v Vector[T]) Insert(i int, value T) (Vector[T], error) {
	if i < 0 || i > v.length {
		return v, indexError("Insert", i, v.length)
	}
	v.props = v.props.init()
	if i == v.length {
		return v.Push(value), nil
	}
	offset := v.tailOffset()
	if i >= offset {
		return v.insertIntoTail(i-offset, value), nil
	}
	carry := value
	v.root = v.shiftIn(v.shift, v.root, i, &carry)
	return v.insertIntoTail(0, carry), nil
}

// shiftIn returns a copy of node with *carry inserted at element position i. All subsequent
// elements of the subtree move one position to the right; the element dropping off at the
// right end of the subtree is handed back in *carry.
func (v Vector[T]) shiftIn(level uint, node *vnode[T], i int, carry *T) *vnode[T] {
	inx := (i >> level) & v.mask
	if level == 0 {
		leafs := make([]T, v.degree)
		copy(leafs, node.leafs[:inx])
		leafs[inx] = *carry
		copy(leafs[inx+1:], node.leafs[inx:v.degree-1])
		*carry = node.leafs[v.degree-1]
		return leafOf(leafs)
	}
	cow := node.clone()
	cow.children[inx] = v.shiftIn(level-v.bits, node.children[inx], i, carry)
	for j := inx + 1; j < v.degree && node.children[j] != nil; j++ {
		cow.children[j] = v.shiftIn(level-v.bits, node.children[j], 0, carry)
	}
	return cow
}

func (v Vector[T]) insertIntoTail(j int, value T) Vector[T] {
	if len(v.tail) < v.degree {
		newTail := make([]T, len(v.tail)+1)
		copy(newTail, v.tail[:j])
		newTail[j] = value
		copy(newTail[j+1:], v.tail[j:])
		v.tail = newTail
		v.length++
		return v
	}
	// tail is full ⇒ its last element overflows into a new tail
	full := make([]T, v.degree)
	copy(full, v.tail[:j])
	full[j] = value
	copy(full[j+1:], v.tail[j:v.degree-1])
	return v.pushFullTail(full, []T{v.tail[v.degree-1]})
}

// Remove returns a copy of v without the element at position i, moving all subsequent
// elements one position to the left.
func (v Vector[T]) Remove(i int) (Vector[T], error) {
	if i < 0 || i >= v.length {
		return v, indexError("Remove", i, v.length)
	}
	v.props = v.props.init()
	offset := v.tailOffset()
	if i >= offset {
		return v.removeFromTail(i - offset), nil
	}
	carry := v.tail[0]
	v.root = v.shiftOut(v.shift, v.root, i, &carry)
	return v.removeFromTail(0), nil
}

// shiftOut returns a copy of node without the element at position i. All subsequent
// elements of the subtree move one position to the left and *carry is appended at the
// right end. The first element of the subtree is handed back in *carry, which makes it
// the carry for the left neighbour of the subtree.
func (v Vector[T]) shiftOut(level uint, node *vnode[T], i int, carry *T) *vnode[T] {
	inx := (i >> level) & v.mask
	if level == 0 {
		leafs := make([]T, v.degree)
		copy(leafs, node.leafs[:inx])
		copy(leafs[inx:], node.leafs[inx+1:])
		leafs[v.degree-1] = *carry
		*carry = node.leafs[0]
		return leafOf(leafs)
	}
	cow := node.clone()
	for j := node.lastChild(); j > inx; j-- {
		cow.children[j] = v.shiftOut(level-v.bits, node.children[j], 0, carry)
	}
	cow.children[inx] = v.shiftOut(level-v.bits, node.children[inx], i, carry)
	return cow
}

func (v Vector[T]) removeFromTail(j int) Vector[T] {
	if len(v.tail) == 1 {
		return v.dropTail()
	}
	newTail := make([]T, len(v.tail)-1)
	copy(newTail, v.tail[:j])
	copy(newTail[j:], v.tail[j+1:])
	v.tail = newTail
	v.length--
	return v
}

// Concat returns a vector holding the elements of v, followed by the elements of other.
// If v is the zero value or an empty vector of the same degree, other is returned.
// Leafs of other are shared with the result whenever their positions line up with the
// leaf boundaries of v.
func (v Vector[T]) Concat(other Vector[T]) Vector[T] {
	if v.bits == 0 && v.length == 0 {
		return other
	}
	v.props = v.props.init()
	other.props = other.props.init()
	if other.length == 0 {
		return v
	}
	if v.length == 0 && v.bits == other.bits {
		return other
	}
	tracer().Debugf("concat: appending %d elements to vector of length %d", other.length, v.length)
	other.chunks(func(chunk []T) bool {
		v = v.appendChunk(chunk)
		return true
	})
	return v
}

func (v Vector[T]) appendChunk(chunk []T) Vector[T] {
	for len(chunk) > 0 {
		if len(v.tail) == v.degree {
			n := min(len(chunk), v.degree)
			v = v.pushFullTail(v.tail, chunk[:n:n]) // chunks are immutable and may be shared
			chunk = chunk[n:]
			continue
		}
		n := min(len(chunk), v.degree-len(v.tail))
		newTail := make([]T, len(v.tail)+n)
		copy(newTail, v.tail)
		copy(newTail[len(v.tail):], chunk[:n])
		v.tail = newTail
		v.length += n
		chunk = chunk[n:]
	}
	return v
}

// Slice returns a fresh slice holding the elements of v.
func (v Vector[T]) Slice() []T {
	s := make([]T, 0, v.length)
	v.chunks(func(chunk []T) bool {
		s = append(s, chunk...)
		return true
	})
	return s
}

// Same reports whether v and w are the same incarnation of a vector, i.e. share all of
// their structure. Same vectors are always equal, but equal vectors need not be the same.
func (v Vector[T]) Same(w Vector[T]) bool {
	if v.length != w.length || v.root != w.root || v.shift != w.shift ||
		v.props.init().bits != w.props.init().bits {
		return false
	}
	return sameChunk(v.tail, w.tail)
}

// EqualFunc reports whether v and w hold equal elements in the same order, where
// elements are compared by eq. Chunks shared between v and w are skipped.
func (v Vector[T]) EqualFunc(w Vector[T], eq func(T, T) bool) bool {
	if v.length != w.length {
		return false
	}
	v.props, w.props = v.props.init(), w.props.init()
	if v.bits != w.bits {
		it, other := v.Iterator(), w.Iterator()
		for it.HasNext() {
			x, _ := it.Next()
			y, _ := other.Next()
			if !eq(x, y) {
				return false
			}
		}
		return true
	}
	for offset := 0; offset < v.length; offset += v.degree {
		a, b := v.chunkAt(offset), w.chunkAt(offset)
		if sameChunk(a, b) {
			continue
		}
		for i := range a {
			if !eq(a[i], b[i]) {
				return false
			}
		}
	}
	return true
}

// --- Internals -------------------------------------------------------------

func (v Vector[T]) tailOffset() int {
	if v.length == 0 {
		return 0
	}
	return ((v.length - 1) >> v.bits) << v.bits
}

func (v Vector[T]) height() int {
	return int(v.shift / v.bits)
}

// chunkAt returns the chunk holding element i, which is either a leaf of the trie or the tail.
// v.props must have been initialized.
func (v Vector[T]) chunkAt(i int) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(i>>level)&v.mask]
	}
	return node.leafs
}

// chunks calls f for every chunk of v, from left to right, until f returns false.
func (v Vector[T]) chunks(f func([]T) bool) {
	v.props = v.props.init()
	for offset := 0; offset < v.length; offset += v.degree {
		if !f(v.chunkAt(offset)) {
			return
		}
	}
}

func sameChunk[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
