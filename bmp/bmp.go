// Package bmp splits BMP files into the fixed 54-byte file header and the
// rest of the file, and compresses the latter with huffbmp.
//
// The header is treated as opaque bytes; no BMP field is interpreted.
package bmp

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/huffbmp"
)

// Image is a BMP file split into its header and everything after it.
type Image struct {
	Header huffbmp.Header
	Data   []byte
}

// Read reads a whole BMP file from r.
func Read(r io.Reader) (*Image, error) {
	img := new(Image)
	if _, err := io.ReadFull(r, img.Header[:]); err != nil {
		return nil, fmt.Errorf("bmp: read %d-byte header: %w", huffbmp.HeaderSize, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bmp: read data: %w", err)
	}
	img.Data = data
	return img, nil
}

// ReadFile reads the named BMP file.
func ReadFile(name string) (*Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// WriteTo writes the header followed by the data.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.Grow(huffbmp.HeaderSize + len(img.Data))
	buf.Write(img.Header[:])
	buf.Write(img.Data)
	return buf.WriteTo(w)
}

// WriteFile writes the image to the named file.
func (img *Image) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := img.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Compress returns the compressed container for this image.
func (img *Image) Compress() []byte {
	return huffbmp.Compress(img.Header, img.Data)
}

// Decompress rebuilds an Image from a compressed container.
func Decompress(compressed []byte, opts ...huffbmp.Option) (*Image, error) {
	header, data, err := huffbmp.Decompress(compressed, opts...)
	if err != nil {
		return nil, err
	}
	return &Image{Header: header, Data: data}, nil
}
