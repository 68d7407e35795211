package huffbmp

import (
	"encoding"
)

const (
	tagLeaf     = 0
	tagInternal = 1
)

// MarshalBinary serializes the shape of the tree in pre-order.  Each leaf is
// written as the byte 0 followed by its symbol; each internal node is written
// as the byte 1 followed by its left subtree and then its right subtree.
// Frequencies are not written.  The empty tree serializes to an empty blob.
func (t *Tree) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(nil), nil
}

// AppendBinary appends the serialized tree to out and returns the result.
func (t *Tree) AppendBinary(out []byte) []byte {
	if t.root == nil {
		return out
	}
	return appendNode(out, t.root)
}

func appendNode(out []byte, n *Node) []byte {
	if n.IsLeaf() {
		return append(out, tagLeaf, byte(n.Symbol))
	}
	out = append(out, tagInternal)
	out = appendNode(out, n.Left)
	return appendNode(out, n.Right)
}

// ParseTree rebuilds a Tree from a blob written by MarshalBinary.  The
// resulting nodes have zero frequencies.
//
// The blob must hold exactly one tree: an empty blob, a missing
// discriminator, symbol, or child, an unknown discriminator, a symbol that
// appears at more than one leaf, a path longer than MaxCodeSize, and trailing
// bytes are all rejected with MalformedTree.
//
func ParseTree(blob []byte) (*Tree, error) {
	p := treeParser{blob: blob}
	root, err := p.parseNode(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(blob) {
		return nil, formatErrorf(MalformedTree, p.pos, "%d trailing bytes after tree", len(blob)-p.pos)
	}
	return &Tree{root: root}, nil
}

type treeParser struct {
	blob []byte
	pos  int
	seen [NumSymbols]bool
}

func (p *treeParser) parseNode(depth int) (*Node, error) {
	if depth > MaxCodeSize {
		return nil, formatErrorf(MalformedTree, p.pos, "tree deeper than %d", MaxCodeSize)
	}
	if p.pos >= len(p.blob) {
		return nil, formatErrorf(MalformedTree, p.pos, "missing node discriminator")
	}
	tag := p.blob[p.pos]
	p.pos++

	switch tag {
	case tagLeaf:
		if p.pos >= len(p.blob) {
			return nil, formatErrorf(MalformedTree, p.pos, "missing leaf symbol")
		}
		symbol := Symbol(p.blob[p.pos])
		if p.seen[symbol] {
			return nil, formatErrorf(MalformedTree, p.pos, "symbol 0x%02x appears twice", symbol)
		}
		p.seen[symbol] = true
		p.pos++
		return newLeaf(symbol, 0), nil

	case tagInternal:
		left, err := p.parseNode(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := p.parseNode(depth + 1)
		if err != nil {
			return nil, err
		}
		return &Node{Left: left, Right: right}, nil

	default:
		return nil, formatErrorf(MalformedTree, p.pos-1, "unknown node discriminator %d", tag)
	}
}

var _ encoding.BinaryMarshaler = (*Tree)(nil)
