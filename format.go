package lzsave

// Stream format constants for the default configuration.
const (
	IndexBits  = 12                            // Bits of a back-reference offset.
	LengthBits = 4                             // Bits of a back-reference length field.
	BreakEven  = 1                             // Longest match still cheaper to send as literals.
	WindowSize = 1 << IndexBits                // Sliding window size (ring buffer).
	MinMatch   = BreakEven + 1                 // Shortest back-reference (length field 0).
	MaxMatch   = (1 << LengthBits) + BreakEven // Longest back-reference, also the look-ahead.
	FlagBits   = 8                             // Symbols per flag byte.
)

// codeBits is the width of a packed back-reference (offset and length field).
const codeBits = 16
