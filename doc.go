/*
Package lzsave implements the LZSS compression used by compressed save data.

Format: one flag byte per 8 symbols, bit 0 first; bit 1 = literal (1 byte),
bit 0 = back-reference (2 bytes). A back-reference packs a 12-bit offset and
a 4-bit length field: byte 0 is the offset low nibble over the length field,
byte 1 the offset high byte. Length is field+2 (2..17). The copy source is
offset+1 bytes behind the current output position, so offset 0 repeats the
previous byte. The last frame may hold fewer than 8 symbols; its unused flag
bits are zero. There is no checksum and no end marker: the decoder needs the
original size, which the container stores separately.

The encoder is greedy. Candidate matches come from a binary search tree over
the 4096 window positions, keyed by the 17 bytes starting at each position;
only nodes on the insertion path are compared. A position whose 17 bytes equal
an existing entry replaces it, so later matches use the nearer copy.

Use Compress(src, nil) and Decompress(enc, len(src), nil) for the default format.
Use DecompressBlock(src, outLen, nil) to decode from the beginning of src and get consumed bytes.
Use DecompressFromReader(r, outLen, nil) to decode one stream without reading to EOF.
Pass a Config to change the window and length widths (they must sum to 16 bits).

# Examples

Round-trip compress and decompress:

	enc, err := lzsave.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lzsave.Decompress(enc, len(data), nil)
	if err != nil {
		return err
	}
	// dec equals data

Decompress one stream from a file and continue after it:

	out, consumed, err := lzsave.DecompressFromReader(f, originalSize, nil)
	if err != nil {
		return err
	}
	_ = consumed

Smaller window, longer matches:

	cfg := &lzsave.Config{IndexBits: 10, LengthBits: 6, BreakEven: 1}
	enc, _ := lzsave.Compress(data, cfg)
	dec, _ := lzsave.Decompress(enc, len(data), cfg)
*/
package lzsave
