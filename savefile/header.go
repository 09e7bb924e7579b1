package savefile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Type markers stored in byte 0.
const (
	MarkerCompressed byte = 0xA4
	MarkerRaw        byte = 0x24
)

const (
	prefixLen    = 5 // Marker, vestigial byte and reserved bytes.
	sizeFieldLen = 4
)

// Header is the container header in front of the payload.
type Header struct {
	Compressed bool
	// Stamp is byte 1. Writers leave arbitrary values here; it is carried over unchanged.
	Stamp    byte
	Reserved [3]byte
	Name     string
	// OriginalSize is the decompressed payload size; only stored for compressed saves.
	OriginalSize uint32
	Terminator   byte
}

// Marker returns the type byte for h.
func (h *Header) Marker() byte {
	if h.Compressed {
		return MarkerCompressed
	}

	return MarkerRaw
}

// Len returns the encoded header size in bytes.
func (h *Header) Len() int {
	n := prefixLen + len(h.Name) + 1 + 1
	if h.Compressed {
		n += sizeFieldLen
	}

	return n
}

// ReadHeader reads a header from r and leaves r at the first payload byte.
// A reader without ReadByte is wrapped in a bufio.Reader, which may read ahead.
func ReadHeader(r io.Reader) (*Header, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		buffered := bufio.NewReader(r)
		br, r = buffered, buffered
	}

	var prefix [prefixLen]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, truncated("prefix", err)
	}

	h := &Header{Stamp: prefix[1]}
	copy(h.Reserved[:], prefix[2:])
	switch prefix[0] {
	case MarkerCompressed:
		h.Compressed = true
	case MarkerRaw:
	default:
		return nil, fmt.Errorf("%w: %#02x", ErrUnknownMarker, prefix[0])
	}

	var name []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return nil, truncated("name", err)
		}
		if b == 0 {
			break
		}
		name = append(name, b)
	}
	if !utf8.Valid(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	h.Name = string(name)

	if h.Compressed {
		var size [sizeFieldLen]byte
		if _, err := io.ReadFull(r, size[:]); err != nil {
			return nil, truncated("size", err)
		}
		h.OriginalSize = binary.LittleEndian.Uint32(size[:])
	}

	term, err := br.ReadByte()
	if err != nil {
		return nil, truncated("terminator", err)
	}
	h.Terminator = term

	return h, nil
}

// MarshalBinary encodes h. Names with NUL bytes or invalid UTF-8 are rejected.
func (h *Header) MarshalBinary() ([]byte, error) {
	if !utf8.ValidString(h.Name) || bytes.IndexByte([]byte(h.Name), 0) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, h.Name)
	}

	out := make([]byte, 0, h.Len())
	out = append(out, h.Marker(), h.Stamp)
	out = append(out, h.Reserved[:]...)
	out = append(out, h.Name...)
	out = append(out, 0)
	if h.Compressed {
		out = binary.LittleEndian.AppendUint32(out, h.OriginalSize)
	}
	out = append(out, h.Terminator)

	return out, nil
}

// WriteTo writes the encoded header to w.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	buf, err := h.MarshalBinary()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(buf)
	return int64(n), err
}

// truncated marks a short read of field; other read errors pass through.
func truncated(field string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}

	return fmt.Errorf("%w: %s: %w", ErrTruncatedHeader, field, err)
}
