package vector

import (
	"fmt"
	"strings"
)

// slot holds a step of a path: a node and the index of the child (or element) the
// path continues with.
type slot[T any] struct {
	inx  int
	node *vnode[T]
}

func (s slot[T]) String() string {
	return fmt.Sprintf("%d@%s", s.inx, s.node)
}

func (s slot[T]) clone() slot[T] {
	return slot[T]{
		inx:  s.inx,
		node: s.node.clone(),
	}
}

// cloneSeam creates a copy of parent, with the link at parent's index replaced by
// child's node. It is the step function for path copying from a leaf upwards.
func cloneSeam[T any](parent, child slot[T]) slot[T] {
	assertThat(parent.node != nil, "inconsistency: parent of a child is never nil")
	assertThat(!parent.node.isLeaf(), "inconsistency: parent of a child is never a leaf")
	cow := parent.clone()
	cow.node.children[parent.inx] = child.node
	return cow
}

// --- Path ------------------------------------------------------------------

// slotPath is a list of slots, denoting the path from the root to a leaf slot.
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

func (path slotPath[T]) dropLast() slotPath[T] {
	assertThat(!path.empty(), "attempt to drop last slot from empty slot-path")
	return path[:len(path)-1]
}

func (path slotPath[T]) empty() bool {
	return len(path) == 0
}

// foldR applies function f on pairs (parent,child) of slots of path.
// Application starts from the right ('R'), which corresponds to the bottom-most item of the path
// (often a leaf of the tree). zero is an element to apply as `child` in the rightmost call
// of f(parent,child). If path is empty, zero will be returned, otherwise the value returned from
// the final call to f will be returned.
func (path slotPath[T]) foldR(f func(slot[T], slot[T]) slot[T], zero slot[T]) slot[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

// locate collects the path from the root of the trie to the leaf holding element i.
// pathBuf is re-used, if possible. i has to be an index into the trie, not into the tail.
func (v Vector[T]) locate(i int, pathBuf slotPath[T]) slotPath[T] {
	assertThat(i >= 0 && i < v.tailOffset(), "attempt to locate index %d outside of trie", i)
	path := pathBuf[:0]
	node := v.root
	for level := v.shift; ; level -= v.bits {
		inx := (i >> level) & v.mask
		path = append(path, slot[T]{inx: inx, node: node})
		if level == 0 {
			break
		}
		node = node.children[inx]
	}
	assertThat(path.last().node.isLeaf(), "inconsistency: path does not end at a leaf")
	return path
}
