package vector

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the internal structure of v for debugging purposes.
// Every node is annotated with the range of element positions it covers.
func (v Vector[T]) Dump() string {
	v.props = v.props.init()
	header := fmt.Sprintf("Vector(length=%d, height=%d, degree=%d)\n", v.length, v.height(), v.degree)
	tail := fmt.Sprintf("    tail=%v\n", v.tail)
	printer := tp.New()
	if v.root != nil {
		dumpNode(printer, v.root, v.shift, v.bits, 0)
	}
	return header + tail + printer.String()
}

func dumpNode[T any](printer tp.Tree, node *vnode[T], level, bits uint, offset int) {
	span := 1 << (level + bits)
	label := fmt.Sprintf("%s  %d…%d", node, offset, offset+span-1)
	if node.isLeaf() {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	for i, child := range node.children {
		if child != nil {
			dumpNode(branch, child, level-bits, bits, offset+i<<level)
		}
	}
}
