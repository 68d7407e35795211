package huffbmp

import (
	"encoding/binary"
	"math"

	"github.com/chronos-tachyon/assert"
)

// HeaderSize is the size of the passthrough header carried by every
// container.
const HeaderSize = 54

const (
	lengthFieldSize = 8
	treeFieldSize   = 4
	fixedFieldsSize = lengthFieldSize + treeFieldSize
)

// Header is the passthrough header, copied verbatim and never compressed.
type Header [HeaderSize]byte

// Container holds the fields of a parsed compressed buffer.  TreeBlob and
// Packed alias the parsed buffer.
type Container struct {
	OriginalLength uint64
	TreeBlob       []byte
	Header         Header
	Packed         []byte
}

// Compress builds the Huffman tree of payload and returns the container
// holding the payload length, the serialized tree, the header, and the
// packed codes.  Any payload, including an empty one, is compressible.
func Compress(header Header, payload []byte) []byte {
	tree := Build(payload)
	packed := Encode(payload, tree.Codes())

	out := make([]byte, fixedFieldsSize, fixedFieldsSize+3*NumSymbols+HeaderSize+len(packed))
	out = tree.AppendBinary(out)
	treeLen := len(out) - fixedFieldsSize
	assert.Assertf(uint64(treeLen) <= math.MaxUint32, "tree blob of %d bytes", treeLen)

	binary.LittleEndian.PutUint64(out[0:lengthFieldSize], uint64(len(payload)))
	binary.LittleEndian.PutUint32(out[lengthFieldSize:fixedFieldsSize], uint32(treeLen))
	out = append(out, header[:]...)
	return append(out, packed...)
}

// ParseContainer splits buf into its fields without decoding the tree or
// the payload.
func ParseContainer(buf []byte) (Container, error) {
	var c Container
	if len(buf) < fixedFieldsSize {
		return c, formatErrorf(TruncatedInput, len(buf), "need %d bytes of fixed fields, have %d", fixedFieldsSize, len(buf))
	}
	c.OriginalLength = binary.LittleEndian.Uint64(buf[0:lengthFieldSize])
	treeLen := uint64(binary.LittleEndian.Uint32(buf[lengthFieldSize:fixedFieldsSize]))

	rest := buf[fixedFieldsSize:]
	if treeLen > uint64(len(rest)) {
		return c, formatErrorf(TruncatedInput, len(buf), "tree blob of %d bytes declared, %d remain", treeLen, len(rest))
	}
	c.TreeBlob = rest[:treeLen]
	rest = rest[treeLen:]

	if len(rest) < HeaderSize {
		return c, formatErrorf(TruncatedInput, len(buf), "header of %d bytes declared, %d remain", HeaderSize, len(rest))
	}
	copy(c.Header[:], rest[:HeaderSize])
	c.Packed = rest[HeaderSize:]
	return c, nil
}

// Tree parses the container's tree blob.  An empty blob is the empty tree.
func (c Container) Tree() (*Tree, error) {
	if len(c.TreeBlob) == 0 {
		return &Tree{}, nil
	}
	tree, err := ParseTree(c.TreeBlob)
	if err != nil {
		if fe, ok := err.(*FormatError); ok {
			fe.Offset += fixedFieldsSize
		}
		return nil, err
	}
	return tree, nil
}

// Decompress reverses Compress, returning the header and the original
// payload.  Every failure is a *FormatError.
//
// Besides truncated containers and malformed trees, Decompress rejects
// containers that declare a payload longer than the configured maximum
// (DefaultMaxPayloadSize unless WithMaxPayloadSize says otherwise) with
// SizeLimitExceeded, even when the container is otherwise valid.  Passing
// WithMaxPayloadSize(0) leaves only the MaxDecodedSize ceiling.
//
func Decompress(buf []byte, opts ...Option) (Header, []byte, error) {
	cfg := makeConfig(opts)

	c, err := ParseContainer(buf)
	if err != nil {
		return Header{}, nil, err
	}
	if cfg.MaxPayloadSize != 0 && c.OriginalLength > cfg.MaxPayloadSize {
		return Header{}, nil, formatErrorf(SizeLimitExceeded, 0, "payload of %d bytes exceeds limit of %d", c.OriginalLength, cfg.MaxPayloadSize)
	}

	tree, err := c.Tree()
	if err != nil {
		return Header{}, nil, err
	}

	payload, err := tree.Decode(c.Packed, c.OriginalLength)
	if err != nil {
		if fe, ok := err.(*FormatError); ok && fe.Kind == CorruptPayload {
			fe.Offset = len(buf)
		}
		return Header{}, nil, err
	}
	return c.Header, payload, nil
}
