package huffbmp

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Node is one node of a Huffman tree.  A leaf carries a Symbol and has no
// children; an internal node has exactly two children and no Symbol.
//
// Nodes are never mutated after construction and each parent exclusively
// owns its children.
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether this node carries a Symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

func newLeaf(symbol Symbol, freq uint64) *Node {
	return &Node{Symbol: symbol, Freq: freq}
}

func newInternal(left, right *Node) *Node {
	return &Node{Freq: left.Freq + right.Freq, Left: left, Right: right}
}

// Tree is a binary prefix-code tree.  The zero value is the empty tree, which
// encodes the empty input.
type Tree struct {
	root *Node
}

// Root returns the root node, or nil for the empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// IsEmpty reports whether the tree has no root.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// NumLeaves returns the number of symbols the tree can decode.
func (t *Tree) NumLeaves() int {
	var count int
	walk(t.root, Code{}, func(*Node, Code) { count++ })
	return count
}

// Equal reports whether two trees have the same shape with the same symbols
// at the same leaves.  Frequencies are ignored, since they are not
// serialized.
func (t *Tree) Equal(other *Tree) bool {
	return nodesEqual(t.root, other.root)
}

func nodesEqual(a, b *Node) bool {
	switch {
	case a == nil || b == nil:
		return a == b
	case a.IsLeaf() != b.IsLeaf():
		return false
	case a.IsLeaf():
		return a.Symbol == b.Symbol
	default:
		return nodesEqual(a.Left, b.Left) && nodesEqual(a.Right, b.Right)
	}
}

// walk visits every leaf in pre-order, passing the path from the root.
func walk(n *Node, path Code, fn func(*Node, Code)) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		fn(n, path)
		return
	}
	walk(n.Left, path.Append(0), fn)
	walk(n.Right, path.Append(1), fn)
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one leaf per line in pre-order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.NumLeaves())
	walk(t.root, Code{}, func(n *Node, path Code) {
		fmt.Fprintf(&buf, "\tLeaf(%s) = 0x%02x\n", path, n.Symbol)
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns the tree shape in parenthesized form, e.g. "(41 (00 01))".
func (t *Tree) String() string {
	if t.root == nil {
		return "()"
	}
	var buf strings.Builder
	writeShape(&buf, t.root)
	return buf.String()
}

func writeShape(buf *strings.Builder, n *Node) {
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%02x", n.Symbol)
		return
	}
	buf.WriteByte('(')
	writeShape(buf, n.Left)
	buf.WriteByte(' ')
	writeShape(buf, n.Right)
	buf.WriteByte(')')
}

var _ fmt.Stringer = (*Tree)(nil)
