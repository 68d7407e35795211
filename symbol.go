package huffbmp

// Symbol is one byte value of the input alphabet.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// MaxCodeSize is the longest code any tree over NumSymbols leaves can
// produce.
const MaxCodeSize = NumSymbols - 1
