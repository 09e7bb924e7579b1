package lzsave

// Compress compresses src. Config nil means DefaultConfig().
// The caller records len(src) as the original size; Decompress needs it.
// Empty input yields an empty stream.
func Compress(src []byte, cfg *Config) ([]byte, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	if len(src) == 0 {
		return nil, nil
	}

	enc := newEncoder(src, cfg)
	enc.encode()

	return enc.out, nil
}

// encoder holds the state of one Compress call.
type encoder struct {
	src  []byte
	win  *window
	tree *matchTree

	breakEven  int
	minMatch   int
	lengthBits int

	out      []byte
	flagPos  int  // Index in out of the current frame's flag byte.
	flagByte byte // Flag bits of the current frame, bit 0 first.
	bitCount int  // Symbols in the current frame.
}

// newEncoder prepares an encoder over src.
func newEncoder(src []byte, cfg *Config) *encoder {
	win := newWindow(cfg.WindowSize())

	// Worst case is all literals plus one flag byte per 8 of them.
	bufCap := len(src) + (len(src)+FlagBits-1)/FlagBits

	return &encoder{
		src:        src,
		win:        win,
		tree:       newMatchTree(win, src, cfg.LookAhead()),
		breakEven:  cfg.BreakEven,
		minMatch:   cfg.MinMatch(),
		lengthBits: cfg.LengthBits,
		out:        make([]byte, 0, bufCap),
		flagPos:    -1,
	}
}

// encode runs the greedy parse over the whole input.
func (e *encoder) encode() {
	pos := 0
	matchPos, matchLen := e.tree.insert(pos)

	for pos < len(e.src) {
		step := 1
		if matchLen > e.breakEven {
			e.writeMatch(pos-matchPos-1, matchLen)
			step = matchLen
		} else {
			e.writeLiteral(e.src[pos])
		}

		// Every consumed byte enters the window and the tree, so later
		// positions can refer into this match too.
		for range step {
			e.win.put(pos, e.src[pos])
			pos++
			if pos < len(e.src) {
				e.tree.delete(pos)
				matchPos, matchLen = e.tree.insert(pos)
			}
		}
	}

	if e.bitCount > 0 {
		e.writeFlags()
	}
}

// writeLiteral emits one raw byte with a set flag bit.
func (e *encoder) writeLiteral(b byte) {
	e.startSymbol()
	e.flagByte |= 1 << e.bitCount
	e.out = append(e.out, b)
	e.endSymbol()
}

// writeMatch emits a back-reference with a clear flag bit.
// Packed little-endian as offset<<LengthBits | (length-MinMatch); with the
// default format byte 0 is the offset low nibble over the length field and
// byte 1 the offset high byte.
func (e *encoder) writeMatch(offset, length int) {
	e.startSymbol()
	code := uint16(offset<<e.lengthBits | (length - e.minMatch)) // #nosec G115 -- offset < window, length <= look-ahead
	e.out = append(e.out, byte(code), byte(code>>8))
	e.endSymbol()
}

// startSymbol reserves the flag byte when a frame opens.
func (e *encoder) startSymbol() {
	if e.bitCount == 0 {
		e.flagPos = len(e.out)
		e.out = append(e.out, 0)
	}
}

// endSymbol counts the symbol and closes a full frame.
func (e *encoder) endSymbol() {
	e.bitCount++
	if e.bitCount == FlagBits {
		e.writeFlags()
	}
}

// writeFlags stores the accumulated flag bits and resets the accumulator.
func (e *encoder) writeFlags() {
	if e.flagPos >= 0 {
		e.out[e.flagPos] = e.flagByte
	}
	e.flagByte = 0
	e.bitCount = 0
}
