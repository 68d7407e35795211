package huffbmp

import (
	"math/rand"
)

// repeatCounts returns a buffer in which symbol i occurs counts[i] times.
func repeatCounts(counts ...int) []byte {
	var out []byte
	for symbol, count := range counts {
		for i := 0; i < count; i++ {
			out = append(out, byte(symbol))
		}
	}
	return out
}

func randomBytes(seed int64, n int, alphabet int) []byte {
	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.Intn(alphabet))
	}
	return out
}

func allSymbols() []byte {
	out := make([]byte, NumSymbols)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

func textHeader() Header {
	var h Header
	copy(h[:], "BM")
	for i := 2; i < HeaderSize; i++ {
		h[i] = byte(i * 7)
	}
	return h
}
