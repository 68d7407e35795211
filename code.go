package huffbmp

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits, i.e. one root-to-leaf path.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Bit i of the path is bit
	// (i % 64) of Bits[i / 64], so the least significant bit of Bits[0] is
	// the first bit.
	Bits [4]uint64
}

// MakeCode is a convenience function that constructs a Code from a list of
// 0/1 values, first bit first.
func MakeCode(bits ...byte) Code {
	var hc Code
	for _, bit := range bits {
		hc = hc.Append(bit)
	}
	return hc
}

// Append returns the Code extended by one bit.
func (hc Code) Append(bit byte) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code too long: %d bits", hc.Size)
	assert.Assertf(bit <= 1, "bit must be 0 or 1, got %d", bit)
	i := hc.Size
	hc.Bits[i>>6] |= uint64(bit) << (i & 63)
	hc.Size++
	return hc
}

// Bit returns the i'th bit of the code, counting from the root.
func (hc Code) Bit(i byte) byte {
	return byte(hc.Bits[i>>6]>>(i&63)) & 1
}

// HasPrefix reports whether prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := byte(0); i < prefix.Size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	buf.WriteByte('"')
	for i := byte(0); i < hc.Size; i++ {
		buf.WriteByte('0' + hc.Bit(i))
	}
	buf.WriteByte('"')
	return buf.String()
}

var _ fmt.Stringer = Code{}
