package huffbmp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestCompress_Layout(t *testing.T) {
	header := textHeader()
	actual := Compress(header, []byte{0x00, 0x00, 0x00, 0x01})

	var expect []byte
	expect = append(expect, 4, 0, 0, 0, 0, 0, 0, 0)
	expect = append(expect, 5, 0, 0, 0)
	expect = append(expect, 1, 0, 0x01, 0, 0x00)
	expect = append(expect, header[:]...)
	expect = append(expect, 0xe0)

	if !bytes.Equal(expect, actual) {
		t.Errorf("wrong container:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
}

func TestCompress_Empty(t *testing.T) {
	header := textHeader()
	buf := Compress(header, nil)

	if len(buf) != fixedFieldsSize+HeaderSize {
		t.Fatalf("expected %d bytes, got %d", fixedFieldsSize+HeaderSize, len(buf))
	}
	c, err := ParseContainer(buf)
	if err != nil {
		t.Fatalf("ParseContainer failed: %v", err)
	}
	if c.OriginalLength != 0 || len(c.TreeBlob) != 0 || len(c.Packed) != 0 {
		t.Errorf("unexpected fields: %+v", c)
	}

	h, payload, err := Decompress(buf)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if h != header {
		t.Error("header mismatch")
	}
	if payload == nil || len(payload) != 0 {
		t.Errorf("expected an empty payload, got %#v", payload)
	}
}

func TestCompress_SingleSymbol(t *testing.T) {
	header := textHeader()
	data := bytes.Repeat([]byte{0x41}, 1000)
	buf := Compress(header, data)

	if expect := fixedFieldsSize + 2 + HeaderSize; len(buf) != expect {
		t.Errorf("expected %d bytes, got %d", expect, len(buf))
	}
	_, payload, err := Decompress(buf)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("expected 1000 copies of 0x41, got %d bytes", len(payload))
	}
}

func TestDecompress_RoundTrip(t *testing.T) {
	header := textHeader()
	for _, data := range [][]byte{
		{0x7f},
		allSymbols(),
		randomBytes(20, 50000, 256),
		randomBytes(21, 50000, 3),
		[]byte("BMP payloads are mostly runs of similar pixel values"),
	} {
		buf := Compress(header, data)
		h, payload, err := Decompress(buf)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if h != header {
			t.Error("header mismatch")
		}
		if !bytes.Equal(data, payload) {
			t.Errorf("round trip mismatch for %d bytes", len(data))
		}
	}
}

func TestDecompress_Truncated(t *testing.T) {
	buf := Compress(textHeader(), randomBytes(22, 2000, 20))
	c, err := ParseContainer(buf)
	if err != nil {
		t.Fatalf("ParseContainer failed: %v", err)
	}
	packedStart := fixedFieldsSize + len(c.TreeBlob) + HeaderSize

	for cut := 0; cut < len(buf); cut++ {
		_, payload, err := Decompress(buf[:cut])
		if payload != nil {
			t.Fatalf("cut %d: expected no payload, got %d bytes", cut, len(payload))
		}
		expect := ErrTruncatedInput
		if cut >= packedStart {
			expect = ErrCorruptPayload
		}
		if !errors.Is(err, expect) {
			t.Fatalf("cut %d: expected %v, got %v", cut, expect, err)
		}
	}
}

func TestDecompress_Errors(t *testing.T) {
	header := textHeader()

	badTree := Compress(header, []byte("abc"))
	badTree[fixedFieldsSize] = 7

	emptyTree := Compress(header, nil)
	binary.LittleEndian.PutUint64(emptyTree[0:8], 5)

	longTree := Compress(header, []byte("abc"))
	binary.LittleEndian.PutUint32(longTree[8:12], 0xffffffff)

	type testRow struct {
		name   string
		buf    []byte
		opts   []Option
		expect error
	}

	testData := [...]testRow{
		{name: "short-fixed-fields", buf: []byte{1, 2, 3}, expect: ErrTruncatedInput},
		{name: "tree-length-overflow", buf: longTree, expect: ErrTruncatedInput},
		{name: "malformed-tree", buf: badTree, expect: ErrMalformedTree},
		{name: "empty-alphabet", buf: emptyTree, expect: ErrEmptyAlphabetMismatch},
		{name: "size-limit", buf: Compress(header, make([]byte, 100)), opts: []Option{WithMaxPayloadSize(10)}, expect: ErrSizeLimitExceeded},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, payload, err := Decompress(row.buf, row.opts...)
			if !errors.Is(err, row.expect) {
				t.Fatalf("expected %v, got %v", row.expect, err)
			}
			if payload != nil {
				t.Errorf("expected no payload, got %d bytes", len(payload))
			}
		})
	}
}

func TestDecompress_MalformedTreeOffset(t *testing.T) {
	buf := Compress(textHeader(), []byte("abc"))
	buf[fixedFieldsSize] = 7

	_, _, err := Decompress(buf)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %v", err)
	}
	if fe.Offset != fixedFieldsSize {
		t.Errorf("expected offset %d, got %d", fixedFieldsSize, fe.Offset)
	}
}

func TestDecompress_Unlimited(t *testing.T) {
	data := make([]byte, 100)
	_, payload, err := Decompress(Compress(textHeader(), data), WithMaxPayloadSize(0))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Error("round trip mismatch")
	}
}

func TestDecompress_ForgedLengthWithoutLimit(t *testing.T) {
	buf := Compress(textHeader(), []byte("AAAA"))
	binary.LittleEndian.PutUint64(buf[0:8], 1<<62)

	_, payload, err := Decompress(buf, WithMaxPayloadSize(0))
	if !errors.Is(err, ErrSizeLimitExceeded) {
		t.Fatalf("expected %v, got %v", ErrSizeLimitExceeded, err)
	}
	if payload != nil {
		t.Errorf("expected no payload, got %d bytes", len(payload))
	}
}

func TestDecompress_DefaultLimitRejectsLargeDeclaredLength(t *testing.T) {
	buf := Compress(textHeader(), []byte("AAAA"))
	binary.LittleEndian.PutUint64(buf[0:8], DefaultMaxPayloadSize+1)

	if _, _, err := Decompress(buf); !errors.Is(err, ErrSizeLimitExceeded) {
		t.Fatalf("expected %v, got %v", ErrSizeLimitExceeded, err)
	}
}
