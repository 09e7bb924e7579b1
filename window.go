package lzsave

// window is the ring buffer of recently encoded bytes.
// Positions are absolute stream offsets; the slot of a position is pos modulo the window size.
type window struct {
	buf  []byte // History bytes, one per slot.
	mask int    // len(buf)-1; len(buf) is a power of two.
}

// newWindow returns an empty window of size bytes. size must be a power of two.
func newWindow(size int) *window {
	return &window{
		buf:  make([]byte, size),
		mask: size - 1,
	}
}

// slot returns the ring index holding pos.
func (w *window) slot(pos int) int {
	return pos & w.mask
}

// put records b as the byte at pos, recycling the slot of pos-len(buf).
func (w *window) put(pos int, b byte) {
	w.buf[pos&w.mask] = b
}

// at returns the byte at pos. pos must be within the last len(buf) written positions.
func (w *window) at(pos int) byte {
	return w.buf[pos&w.mask]
}
