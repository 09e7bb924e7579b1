package lzsave

import (
	"bufio"
	"io"
)

// DecompressFromReader decompresses one stream from r and returns consumed bytes.
// Decoding stops right after the symbol that completes outLen output bytes,
// so r is left positioned at whatever follows the stream.
// A reader without ReadByte is wrapped in a bufio.Reader, which may read ahead.
func DecompressFromReader(r io.Reader, outLen int, cfg *Config) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	counter := &countingByteReader{base: byteReader}
	out, err := decompressFromByteReader(counter, outLen, cfg)
	if err != nil {
		return nil, counter.count, err
	}

	return out, counter.count, nil
}

// countingByteReader counts the bytes handed out by base.
type countingByteReader struct {
	base  io.ByteReader
	count int64
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}
