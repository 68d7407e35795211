// Package huffbmp implements a lossless byte-stream compressor built on
// classic Huffman coding.
//
// The codec builds a prefix-code tree from the byte frequencies of the
// whole input, packs the codes MSB-first, and stores the tree shape
// alongside the packed bits in a small fixed container.  The container also
// carries a 54-byte passthrough header (the BMP file header in practice),
// which is copied verbatim and never compressed.
//
// Container layout (all integers little-endian):
//
//     offset 0     original payload length   8 bytes
//     offset 8     tree blob length L        4 bytes
//     offset 12    tree blob                 L bytes
//     offset 12+L  passthrough header        54 bytes
//     offset 66+L  packed code bits          remainder
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffbmp
