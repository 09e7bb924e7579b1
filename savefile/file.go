package savefile

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/woozymasta/lzsave"
)

// File is a decoded save container.
type File struct {
	Header  Header
	Payload []byte // Raw bytes or an lzsave stream, following Header.Compressed.
}

// Decode parses a whole container.
func Decode(data []byte) (*File, error) {
	r := bytes.NewReader(data)
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	return &File{
		Header:  *h,
		Payload: data[len(data)-r.Len():],
	}, nil
}

// Open reads and decodes the container at path.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the caller
	if err != nil {
		return nil, err
	}

	return Decode(data)
}

// Encode returns the container bytes.
func (f *File) Encode() ([]byte, error) {
	head, err := f.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(head)+len(f.Payload))
	out = append(out, head...)
	out = append(out, f.Payload...)

	return out, nil
}

// Save writes the container to path.
func (f *File) Save(path string) error {
	data, err := f.Encode()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Size returns the uncompressed payload size.
func (f *File) Size() int {
	if f.Header.Compressed {
		return int(f.Header.OriginalSize)
	}

	return len(f.Payload)
}

// Compress replaces a raw payload with its lzsave stream and records the original size.
func (f *File) Compress() error {
	if f.Header.Compressed {
		return ErrAlreadyCompressed
	}
	if uint64(len(f.Payload)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(f.Payload))
	}

	enc, err := lzsave.Compress(f.Payload, nil)
	if err != nil {
		return err
	}

	f.Header.Compressed = true
	f.Header.OriginalSize = uint32(len(f.Payload)) // #nosec G115 -- checked above
	f.Payload = enc

	return nil
}

// Decompress replaces an lzsave payload with the raw bytes it encodes.
// The payload must decode to exactly OriginalSize bytes with nothing left over.
func (f *File) Decompress() error {
	if !f.Header.Compressed {
		return ErrNotCompressed
	}

	raw, err := lzsave.Decompress(f.Payload, f.Size(), nil)
	if err != nil {
		return fmt.Errorf("decompress %q: %w", f.Header.Name, err)
	}

	f.Header.Compressed = false
	f.Header.OriginalSize = 0
	f.Payload = raw

	return nil
}

// Toggle compresses a raw save and decompresses a compressed one.
func (f *File) Toggle() error {
	if f.Header.Compressed {
		return f.Decompress()
	}

	return f.Compress()
}
