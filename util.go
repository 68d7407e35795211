package huffbmp

import (
	"math"
	mathbits "math/bits"
)

// bitLength returns the number of bits in packedLen bytes.
func bitLength(packedLen int) uint64 {
	hi, lo := mathbits.Mul64(uint64(packedLen), 8)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// maxDecodedSize is MaxDecodedSize, lowered to what an int can index on
// 32-bit platforms.
func maxDecodedSize() uint64 {
	if uint64(math.MaxInt) < MaxDecodedSize {
		return uint64(math.MaxInt)
	}
	return MaxDecodedSize
}
