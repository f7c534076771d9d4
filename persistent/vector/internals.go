package vector

import (
	"fmt"
	"strings"
)

const (
	defaultBits uint = 5 // will produce nodes with degree 2 ^ 5 = 32
	maxBits     uint = 5
)

type props struct {
	bits   uint // number of bits to use per level
	degree int  // degree is always 2 ^ bits
	mask   int  // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
	shift  uint // we do not store h(v), but rather bits*h(v)
}

func withBits(bits uint) props {
	p := props{bits: bits}
	p.degree = 1 << p.bits
	p.mask = p.degree - 1
	return p
}

// init makes the zero value of props usable.
func (p props) init() props {
	if p.bits == 0 {
		return withBits(defaultBits)
	}
	return p
}

func (p props) withShift(shift uint) props {
	p.shift = shift
	return p
}

// vnode represents a node in the trie a vector is made of. A vnode is either a leaf,
// holding exactly `degree` elements, or an inner node holding `degree` child links,
// some of which may be nil.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](k int) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], k),
	}
}

// newLeaf creates a leaf holding a copy of chunk.
func newLeaf[T any](chunk []T) *vnode[T] {
	l := make([]T, len(chunk))
	copy(l, chunk)
	return &vnode[T]{leafs: l}
}

// leafOf wraps chunk into a leaf without copying it. chunk must never be modified
// afterwards.
func leafOf[T any](chunk []T) *vnode[T] {
	return &vnode[T]{leafs: chunk}
}

func (node *vnode[T]) isLeaf() bool {
	return node.children == nil
}

func (node *vnode[T]) clone() *vnode[T] {
	n := &vnode[T]{}
	if node.leafs != nil {
		n.leafs = make([]T, len(node.leafs))
		copy(n.leafs, node.leafs)
	}
	if node.children != nil {
		n.children = make([]*vnode[T], len(node.children))
		copy(n.children, node.children)
	}
	return n
}

// lastChild returns the position of the rightmost non-nil child of an inner node.
func (node *vnode[T]) lastChild() int {
	assertThat(!node.isLeaf(), "attempt to get last child of a leaf")
	last := len(node.children) - 1
	for last > 0 && node.children[last] == nil {
		last--
	}
	return last
}

func cloneTail[T any](tail []T, l int) []T {
	newTail := make([]T, l)
	if tail != nil {
		copy(newTail, tail[:min(l, len(tail))])
	}
	return newTail
}

// newPath creates a left-branching path of inner nodes on top of leaf, such that the
// topmost node sits at level `shift`.
func newPath[T any](shift, bits uint, k int, leaf *vnode[T]) *vnode[T] {
	topNode := leaf
	for level := shift; level > 0; level -= bits {
		newTop := emptyNode[T](k)
		newTop.children[0] = topNode
		topNode = newTop
	}
	return topNode
}

func (node vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leafs != nil {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// ---------------------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.vector: "+msg, msgargs...)
		panic(msg)
	}
}
