package tilezss

// buildHeader packs the 3-byte stream header.
func buildHeader(padding int, mode Mode, orientation, compressed, delta bool, width uint16) [HeaderSize]byte {
	var b0 byte
	b0 |= byte(padding) & headerPaddingMask
	if mode == Adaptive {
		b0 |= headerModeBit
	}
	if orientation {
		b0 |= headerOrientBit
	}
	if compressed {
		b0 |= headerCompBit
	}
	if delta {
		b0 |= headerDeltaBit
	}

	var hdr [HeaderSize]byte
	hdr[0] = b0
	hdr[1] = byte(width)
	hdr[2] = byte(width >> 8)
	return hdr
}

// parsedHeader is the decoded form of the 3-byte stream header.
type parsedHeader struct {
	padding     int
	mode        Mode
	orientation bool
	compressed  bool
	delta       bool
	width       uint16
}

func parseHeader(data []byte) (parsedHeader, error) {
	if len(data) < HeaderSize {
		return parsedHeader{}, ErrTruncated
	}

	b0 := data[0]
	if b0&headerReservedBit != 0 {
		return parsedHeader{}, ErrBadHeader
	}

	h := parsedHeader{
		padding:     int(b0 & headerPaddingMask),
		mode:        Static,
		orientation: b0&headerOrientBit != 0,
		compressed:  b0&headerCompBit != 0,
		delta:       b0&headerDeltaBit != 0,
		width:       uint16(data[1]) | uint16(data[2])<<8,
	}
	if b0&headerModeBit != 0 {
		h.mode = Adaptive
	}
	return h, nil
}

// Orientation reports which adaptive-mode trial (horizontal or vertical) an
// already-encoded stream used, without re-running Encode. Hosts that report
// on a successful compress (SPEC_FULL.md §6.1's -r flag) use this instead of
// Encode returning a third value, since the core API's signature (§6) is
// bit-exact to the format and takes no additional outputs. The bool matches
// the header's own orientation bit: false = horizontal, true = vertical.
// Meaningless (always false) for a stream whose header has mode = Static.
func Orientation(encoded []byte) (bool, error) {
	h, err := parseHeader(encoded)
	if err != nil {
		return false, err
	}
	return h.orientation, nil
}

// deltaPerTile applies DeltaForward independently to each TileArea-sized
// chunk of buf, in place.
func deltaPerTile(buf []byte) {
	for i := 0; i+TileArea <= len(buf); i += TileArea {
		DeltaForward(buf[i : i+TileArea])
	}
}

// deltaInversePerTile is the inverse of deltaPerTile.
func deltaInversePerTile(buf []byte) {
	for i := 0; i+TileArea <= len(buf); i += TileArea {
		DeltaInverse(buf[i : i+TileArea])
	}
}

// adaptiveTrial runs one orientation of the adaptive pre-transform (reorder
// into tiles, optional per-tile delta, LZSS-encode) and reports the encoded
// payload so the caller can keep the smaller of the two trials.
func adaptiveTrial(input []byte, width int, delta, transpose bool) (payload []byte, padBits int) {
	tiles := toTiles(input, width, transpose)
	if delta {
		deltaPerTile(tiles)
	}
	return encodeLzss(tiles)
}

// encodeContainer builds the self-describing container for input: a 3-byte
// header followed by either an LZSS bit stream or, if that would not be
// smaller, the original input verbatim. The caller (Encode) is responsible
// for the §4.8 geometry validation before calling this in adaptive mode.
func encodeContainer(input []byte, opts EncodeOpts) []byte {
	var payload []byte
	var padding int
	orientation := false

	switch opts.Mode {
	case Adaptive:
		hPayload, hPad := adaptiveTrial(input, int(opts.Width), opts.Delta, false)
		vPayload, vPad := adaptiveTrial(input, int(opts.Width), opts.Delta, true)

		if len(vPayload) < len(hPayload) {
			payload, padding, orientation = vPayload, vPad, true
		} else {
			payload, padding, orientation = hPayload, hPad, false
		}

	default:
		working := append([]byte(nil), input...)
		if opts.Delta {
			DeltaForward(working)
		}
		payload, padding = encodeLzss(working)
	}

	compressed := true
	body := payload
	if len(payload) >= len(input) {
		compressed = false
		padding = 0
		body = input
	}

	hdr := buildHeader(padding, opts.Mode, orientation, compressed, opts.Delta, opts.Width)
	out := make([]byte, 0, HeaderSize+len(body))
	out = append(out, hdr[:]...)
	out = append(out, body...)
	return out
}

// decodeContainer parses the 3-byte header and reverses whatever
// encodeContainer did, returning the original input.
func decodeContainer(input []byte) ([]byte, error) {
	h, err := parseHeader(input)
	if err != nil {
		return nil, err
	}
	payload := input[HeaderSize:]

	if !h.compressed {
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil
	}

	br := NewBitReader(payload, h.padding)
	decoded, err := decodeLzss(br)
	if err != nil {
		return nil, err
	}

	if h.mode == Adaptive {
		if h.width == 0 {
			return nil, ErrBadHeader
		}
		tiles := splitTiles(decoded)
		if h.delta {
			for _, t := range tiles {
				DeltaInverse(t)
			}
		}
		flat := concatTiles(tiles)
		return fromTiles(flat, int(h.width), h.orientation), nil
	}

	if h.delta {
		DeltaInverse(decoded)
	}
	return decoded, nil
}
