package huffbmp

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Build constructs the Huffman tree for data.
func Build(data []byte) *Tree {
	return BuildFromFrequencies(Count(data))
}

// BuildFromFrequencies constructs the Huffman tree for a FrequencyTable.
//
// Nodes are merged lowest frequency first.  Ties are broken by insertion
// order: leaves are inserted in ascending Symbol order, and each merged node
// is inserted after everything already in the queue.  The first node popped
// becomes the left child, the second the right child.
//
// An empty table yields the empty tree.  A table with one symbol yields a
// tree whose root is a leaf; see Encode and Tree.Decode for how that case
// is coded.
//
func BuildFromFrequencies(ft FrequencyTable) *Tree {
	h := nodeHeap{list: make([]heapItem, 0, ft.Len())}
	for _, symbol := range ft.Symbols() {
		freq, _ := ft.Lookup(symbol)
		h.list = append(h.list, heapItem{node: newLeaf(symbol, freq), seq: h.nextSeq})
		h.nextSeq++
	}
	if h.Len() == 0 {
		return &Tree{}
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		heap.Push(&h, heapItem{node: newInternal(a.node, b.node), seq: h.nextSeq})
		h.nextSeq++
	}

	root := heap.Pop(&h).(heapItem).node
	assert.Assertf(root.Freq == ft.Total(), "root frequency %d != total %d", root.Freq, ft.Total())
	return &Tree{root: root}
}

// Codes derives the CodeTable of this tree by a pre-order walk: a left branch
// appends 0, a right branch appends 1.  When the root is itself a leaf, its
// symbol is given the empty code.
func (t *Tree) Codes() CodeTable {
	var ct CodeTable
	walk(t.root, Code{}, func(n *Node, path Code) {
		ct.codes[n.Symbol] = path
		ct.present[n.Symbol] = true
		ct.count++
	})
	return ct
}

// CodeTable maps each Symbol of a tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	count   int
}

// Lookup returns the Code of symbol, and false if the symbol has no code.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ct.count)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(0x%02x) = %s\n", symbol, ct.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode packs the codes of every byte of data MSB-first.  A trailing partial
// byte is left-aligned and zero padded, so the number of encoded symbols must
// be carried separately.
//
// Every byte of data must have a code in codes.
//
func Encode(data []byte, codes CodeTable) []byte {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, b := range data {
		hc, ok := codes.Lookup(Symbol(b))
		assert.Assertf(ok, "symbol 0x%02x has no code", b)
		for i := byte(0); i < hc.Size; i++ {
			w.TryWriteBool(hc.Bit(i) == 1)
		}
	}
	err := w.Close()
	if w.TryError != nil {
		err = w.TryError
	}
	assert.Assertf(err == nil, "write to bytes.Buffer failed: %v", err)
	return buf.Bytes()
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list    []heapItem
	nextSeq uint32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
