package huffbmp

import (
	"bytes"

	"github.com/icza/bitio"
)

// MaxDecodedSize is the hard ceiling on the number of symbols Decode will
// produce, whatever limit the caller configured.
const MaxDecodedSize = 1 << 40

// Decode walks the tree for each bit of packed, MSB-first, descending left on
// 0 and right on 1, and emits a symbol each time it reaches a leaf.  It stops
// as soon as n symbols have been emitted; any remaining bits are padding.
//
// When the root is a leaf, every occurrence decodes without consuming bits
// and the result is n copies of the root symbol.
//
// Decode fails with EmptyAlphabetMismatch if n > 0 and the tree is empty,
// with SizeLimitExceeded if n > MaxDecodedSize, and with CorruptPayload if
// packed runs out of bits before n symbols are decoded.
//
func (t *Tree) Decode(packed []byte, n uint64) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	if t.root == nil {
		return nil, formatErrorf(EmptyAlphabetMismatch, 0, "%d symbols declared for an empty tree", n)
	}
	if n > maxDecodedSize() {
		return nil, formatErrorf(SizeLimitExceeded, 0, "%d symbols exceed the limit of %d", n, maxDecodedSize())
	}

	root := t.root
	if root.IsLeaf() {
		return bytes.Repeat([]byte{byte(root.Symbol)}, int(n)), nil
	}

	// every symbol below an internal root costs at least one bit
	if n > bitLength(len(packed)) {
		return nil, formatErrorf(CorruptPayload, len(packed), "%d symbols declared but only %d bits present", n, bitLength(len(packed)))
	}

	r := bitio.NewReader(bytes.NewReader(packed))
	out := make([]byte, 0, n)
	current := root
	for uint64(len(out)) < n {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, formatErrorf(CorruptPayload, len(packed), "bits exhausted after %d of %d symbols", len(out), n)
		}
		if bit {
			current = current.Right
		} else {
			current = current.Left
		}
		if current.IsLeaf() {
			out = append(out, byte(current.Symbol))
			current = root
		}
	}
	return out, nil
}
