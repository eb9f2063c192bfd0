package tilezss

// Container and LZSS format constants.
const (
	WindowSize = 1 << 13 // Sliding window size in bytes: 8192.
	MaxLookAhead = 1 << 5 // Lookahead buffer capacity: 32.

	MinMatch = 3  // Shortest back-reference the encoder will emit.
	MaxMatch = 31 // Longest back-reference; the length field is 5 bits and 0 is reserved.

	DistanceBits = 13 // Bits used to encode a match distance.
	LengthBits   = 5  // Bits used to encode a match length.

	Tile     = 16  // Tile edge length in pixels.
	TileArea = 256 // Tile size = Tile * Tile.

	HeaderSize = 3 // Header byte 0 (flags) + 2 bytes little-endian width.
)

// Mode selects the pre-transform path used before LZSS encoding.
type Mode uint8

const (
	// Static encodes the input as a single linear LZSS stream.
	Static Mode = iota
	// Adaptive reorders the input into 16x16 tiles (optionally transposed)
	// before LZSS encoding.
	Adaptive
)

// header bit positions within byte 0.
const (
	headerPaddingMask = 0x07 // bits 0..2
	headerModeBit     = 1 << 3
	headerOrientBit   = 1 << 4
	headerCompBit     = 1 << 5
	headerDeltaBit    = 1 << 6
	headerReservedBit = 1 << 7
)
