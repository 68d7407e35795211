package huffbmp

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable maps each Symbol that occurs in some input to its number of
// occurrences.  Symbols that never occur are absent, not zero-valued.
type FrequencyTable struct {
	counts   [NumSymbols]uint64
	distinct int
}

// Count computes the FrequencyTable of data in a single pass.  An empty input
// yields an empty table.
func Count(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft.counts[b]++
	}
	ft.recount()
	return ft
}

// Merge adds the counts of other into this table.  Partial tables computed
// over disjoint slices of a buffer merge into the table of the whole buffer.
func (ft *FrequencyTable) Merge(other FrequencyTable) {
	for symbol := range ft.counts {
		ft.counts[symbol] += other.counts[symbol]
	}
	ft.recount()
}

func (ft *FrequencyTable) recount() {
	ft.distinct = 0
	for _, count := range ft.counts {
		if count != 0 {
			ft.distinct++
		}
	}
}

// Lookup returns the count for symbol, and false if symbol is absent.
func (ft FrequencyTable) Lookup(symbol Symbol) (uint64, bool) {
	count := ft.counts[symbol]
	return count, count != 0
}

// Len returns the number of distinct symbols present.
func (ft FrequencyTable) Len() int {
	return ft.distinct
}

// Total returns the sum of all counts, which equals the length of the
// counted input.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft.counts {
		sum += count
	}
	return sum
}

// Symbols returns the present symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.distinct)
	for symbol, count := range ft.counts {
		if count != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.distinct)
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.Total())
	for _, symbol := range ft.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(0x%02x) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
