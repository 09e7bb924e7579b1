package savefile

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/woozymasta/lzsave"
)

func rawSave(name string, payload []byte) []byte {
	out := []byte{MarkerRaw, 0x11, 0, 0, 0}
	out = append(out, name...)
	out = append(out, 0, 0x01)
	return append(out, payload...)
}

func TestDecodeRawHeader(t *testing.T) {
	payload := []byte("raw payload bytes")
	f, err := Decode(rawSave("slot1", payload))
	if err != nil {
		t.Fatal(err)
	}

	if f.Header.Compressed || f.Header.Name != "slot1" || f.Header.Stamp != 0x11 || f.Header.Terminator != 0x01 {
		t.Fatalf("unexpected header: %+v", f.Header)
	}
	if !bytes.Equal(f.Payload, payload) {
		t.Fatalf("payload: got %q", f.Payload)
	}
	if f.Size() != len(payload) {
		t.Fatalf("size: got %d want %d", f.Size(), len(payload))
	}
}

func TestDecodeCompressedHeader(t *testing.T) {
	data := []byte{MarkerCompressed, 0x07, 0, 0, 0, 'A', 'B', 0, 0x2a, 0x01, 0, 0, 0xEE, 0x99}
	f, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	if !f.Header.Compressed || f.Header.Name != "AB" || f.Header.OriginalSize != 0x12a || f.Header.Terminator != 0xEE {
		t.Fatalf("unexpected header: %+v", f.Header)
	}
	if f.Header.Len() != len(data)-1 || !bytes.Equal(f.Payload, []byte{0x99}) {
		t.Fatalf("header len %d, payload %x", f.Header.Len(), f.Payload)
	}

	enc, err := f.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, data) {
		t.Fatalf("re-encode: got %x want %x", enc, data)
	}
}

func TestReadHeaderLeavesReaderAtPayload(t *testing.T) {
	r := bytes.NewReader(rawSave("name", []byte("PAYLOAD")))
	if _, err := ReadHeader(r); err != nil {
		t.Fatal(err)
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(rest) != "PAYLOAD" {
		t.Fatalf("got %q", rest)
	}
}

func TestReadHeaderWithoutByteReader(t *testing.T) {
	h, err := ReadHeader(iotest.OneByteReader(bytes.NewReader(rawSave("slow", nil))))
	if err != nil {
		t.Fatal(err)
	}
	if h.Name != "slow" {
		t.Fatalf("got name %q", h.Name)
	}
}

func TestReadHeaderErrors(t *testing.T) {
	compressed := []byte{MarkerCompressed, 0, 0, 0, 0, 'n', 0, 1, 0, 0, 0, 0}

	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncatedHeader},
		{"short prefix", []byte{MarkerRaw, 0, 0}, ErrTruncatedHeader},
		{"unterminated name", []byte{MarkerRaw, 0, 0, 0, 0, 'a', 'b'}, ErrTruncatedHeader},
		{"short size", compressed[:9], ErrTruncatedHeader},
		{"no terminator", compressed[:11], ErrTruncatedHeader},
		{"unknown marker", []byte{0x55, 0, 0, 0, 0, 0, 0}, ErrUnknownMarker},
		{"invalid name", []byte{MarkerRaw, 0, 0, 0, 0, 0xff, 0xfe, 0, 0}, ErrInvalidName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := Decode(compressed); err != nil {
		t.Fatalf("complete header: %v", err)
	}
}

func TestReadHeaderPassesThroughReadErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := ReadHeader(iotest.ErrReader(boom))
	if !errors.Is(err, boom) || errors.Is(err, ErrTruncatedHeader) {
		t.Fatalf("want pass-through read error, got %v", err)
	}
}

func TestMarshalRejectsBadNames(t *testing.T) {
	for _, name := range []string{"a\x00b", "\xff"} {
		h := Header{Name: name}
		if _, err := h.MarshalBinary(); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("name %q: want ErrInvalidName, got %v", name, err)
		}
	}
}

func TestToggleRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("save-record:0000;"), 300)
	original := rawSave("campaign", payload)

	f, err := Decode(original)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Toggle(); err != nil {
		t.Fatal(err)
	}
	if !f.Header.Compressed || f.Header.OriginalSize != uint32(len(payload)) {
		t.Fatalf("after compress: %+v", f.Header)
	}
	if len(f.Payload) >= len(payload) {
		t.Fatalf("payload did not shrink: %d >= %d", len(f.Payload), len(payload))
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "campaign.sav")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}

	g, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := lzsave.Compress(payload, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(g.Payload, want) {
		t.Fatal("stored stream differs from lzsave.Compress output")
	}

	if err := g.Toggle(); err != nil {
		t.Fatal(err)
	}
	back, err := g.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, original) {
		t.Fatal("raw -> compressed -> raw changed the file")
	}
}

func TestCompressEmptyPayload(t *testing.T) {
	f, err := Decode(rawSave("empty", nil))
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Compress(); err != nil {
		t.Fatal(err)
	}
	if f.Header.OriginalSize != 0 || len(f.Payload) != 0 {
		t.Fatalf("got size %d payload %x", f.Header.OriginalSize, f.Payload)
	}
	if err := f.Decompress(); err != nil {
		t.Fatal(err)
	}
}

func TestDecompressErrors(t *testing.T) {
	f, err := Decode(rawSave("raw", []byte("x")))
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Decompress(); !errors.Is(err, ErrNotCompressed) {
		t.Fatalf("want ErrNotCompressed, got %v", err)
	}
	if err := f.Compress(); err != nil {
		t.Fatal(err)
	}
	if err := f.Compress(); !errors.Is(err, ErrAlreadyCompressed) {
		t.Fatalf("want ErrAlreadyCompressed, got %v", err)
	}

	f.Header.OriginalSize = 5
	if err := f.Decompress(); !errors.Is(err, lzsave.ErrUnexpectedEOF) {
		t.Fatalf("size larger than stream: want ErrUnexpectedEOF, got %v", err)
	}
}
