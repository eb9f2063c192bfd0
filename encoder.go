package tilezss

// encodeLzss consumes data and emits literal/match tokens into a fresh
// BitWriter, returning the finished payload bytes and the pad bit count.
//
// The encoder buffers the whole input (no streaming, per the format's
// design), so the sliding window and lookahead are just views into data:
// every emitted byte is, by construction, equal to the input byte at the
// same position, so there is no need to maintain a separate output buffer
// while encoding.
func encodeLzss(data []byte) ([]byte, int) {
	bw := NewBitWriter()
	pos := 0
	n := len(data)

	for pos < n {
		windowStart := pos - WindowSize
		if windowStart < 0 {
			windowStart = 0
		}
		window := data[windowStart:pos]

		lookaheadEnd := pos + MaxLookAhead
		if lookaheadEnd > n {
			lookaheadEnd = n
		}
		lookahead := data[pos:lookaheadEnd]

		if m, ok := findMatch(window, lookahead); ok {
			bw.WriteBit(true)
			bw.WriteBits(uint32(m.distance), DistanceBits)
			bw.WriteBits(uint32(m.length), LengthBits)
			pos += m.length
			continue
		}

		bw.WriteBit(false)
		bw.WriteBits(uint32(data[pos]), 8)
		pos++

		if pos < n {
			bw.WriteBit(false)
			bw.WriteBits(uint32(data[pos]), 8)
			pos++
		}
	}

	return bw.Finish()
}
