package lzsave

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Decompress decompresses src into a new buffer of exactly outLen bytes.
// Config nil means DefaultConfig(). All of src must be consumed: a stream that
// ends early or carries bytes past outLen is an error.
func Decompress(src []byte, outLen int, cfg *Config) ([]byte, error) {
	out, consumed, err := DecompressBlock(src, outLen, cfg)
	if err != nil {
		return nil, err
	}

	if consumed != len(src) {
		return nil, fmt.Errorf("%w: consumed=%d input=%d", ErrTrailingData, consumed, len(src))
	}

	return out, nil
}

// DecompressBlock decompresses one stream from the beginning of src.
// It returns decompressed bytes and the number of consumed bytes.
// Unlike Decompress, this function ignores trailing bytes after the stream.
func DecompressBlock(src []byte, outLen int, cfg *Config) ([]byte, int, error) {
	reader := bytes.NewReader(src)
	out, err := decompressFromByteReader(reader, outLen, cfg)
	consumed := len(src) - reader.Len()
	if err != nil {
		return nil, consumed, err
	}

	return out, consumed, nil
}

// decompressFromByteReader decodes until outLen bytes are produced.
// Decoding stops right after the symbol that fills the output; unused flag
// bits of the last frame are not read as symbols.
func decompressFromByteReader(r io.ByteReader, outLen int, cfg *Config) ([]byte, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}

	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	lengthMask := 1<<cfg.LengthBits - 1
	minMatch := cfg.MinMatch()
	out := make([]byte, outLen)
	pos := 0

	// Read a byte from the reader.
	// If the reader returns an EOF error, return the error passed as eofErr.
	// Otherwise, return the error from the reader.
	readByte := func(eofErr error) (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("%w: decoded=%d want=%d", eofErr, pos, outLen)
			}

			return 0, err
		}

		return b, nil
	}

	for pos < outLen {
		flagByte, err := readByte(ErrUnexpectedEOF)
		if err != nil {
			return nil, err
		}

		for bit := 0; bit < FlagBits && pos < outLen; bit++ {
			// Bit 1 is a literal byte, bit 0 a two-byte back-reference.
			if (flagByte>>bit)&1 == 1 {
				b, err := readByte(ErrUnexpectedEOF)
				if err != nil {
					return nil, err
				}

				out[pos] = b
				pos++
				continue
			}

			lo, err := readByte(ErrUnexpectedEOF)
			if err != nil {
				return nil, err
			}
			hi, err := readByte(ErrTruncatedMatch)
			if err != nil {
				return nil, err
			}

			code := int(lo) | int(hi)<<8
			offset := code >> cfg.LengthBits
			length := code&lengthMask + minMatch

			n, err := copyBackRef(out, pos, offset+1, length)
			if err != nil {
				return nil, err
			}
			pos += n
		}
	}

	return out, nil
}

// copyBackRef copies length bytes starting dist bytes behind pos to pos and returns length.
// The copy goes one byte at a time, so a source that overlaps the destination
// repeats the bytes just written (dist 1 expands a single byte run).
func copyBackRef(dst []byte, pos, dist, length int) (int, error) {
	from := pos - dist
	if from < 0 {
		return 0, fmt.Errorf("%w: position=%d distance=%d", ErrLookBehindUnderrun, pos, dist)
	}

	if pos+length > len(dst) {
		return 0, fmt.Errorf("%w: position=%d length=%d output=%d", ErrOutputOverrun, pos, length, len(dst))
	}

	for i := range length {
		dst[pos+i] = dst[from+i]
	}

	return length, nil
}
