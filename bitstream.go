package tilezss

import (
	"bytes"

	"github.com/icza/bitio"
)

// BitWriter packs bits MSB-first into a byte buffer, backed by
// github.com/icza/bitio. It adds the padding-count bookkeeping the
// container format needs: Finish reports how many zero bits were appended
// to reach the final byte boundary.
type BitWriter struct {
	buf *bytes.Buffer
	w   *bitio.Writer
	n   int // total bits written so far
}

// NewBitWriter returns an empty BitWriter.
func NewBitWriter() *BitWriter {
	buf := &bytes.Buffer{}
	return &BitWriter{buf: buf, w: bitio.NewWriter(buf)}
}

// WriteBits writes the low n bits of value, most-significant bit first.
// n must be in 1..24.
func (bw *BitWriter) WriteBits(value uint32, n int) {
	if n < 1 || n > 24 {
		panic("tilezss: WriteBits: n out of range")
	}
	bw.w.TryWriteBits(uint64(value), uint8(n))
	bw.n += n
}

// WriteBit writes a single bit.
func (bw *BitWriter) WriteBit(bit bool) {
	bw.w.TryWriteBool(bit)
	bw.n++
}

// Finish flushes the final partial byte, padding with zero bits on the LSB
// side, and returns the encoded bytes plus the number of padding bits
// appended (0..7).
func (bw *BitWriter) Finish() ([]byte, int) {
	pad := (8 - bw.n%8) % 8
	if err := bw.w.Close(); err != nil {
		panic(err) // bytes.Buffer never fails to write
	}
	return bw.buf.Bytes(), pad
}

// BitReader reads bits MSB-first from a byte buffer, stopping exactly at the
// recorded padding boundary rather than at end of buffer.
type BitReader struct {
	r         *bitio.Reader
	totalBits int
	readBits  int
	padBits   int
}

// NewBitReader constructs a reader over payload, given the padding bit count
// recorded in the stream header.
func NewBitReader(payload []byte, padBits int) *BitReader {
	return &BitReader{
		r:         bitio.NewReader(bytes.NewReader(payload)),
		totalBits: len(payload) * 8,
		padBits:   padBits,
	}
}

// AtEnd reports whether only the trailing padding bits remain unread.
func (br *BitReader) AtEnd() bool {
	return br.totalBits-br.readBits <= br.padBits
}

// Remaining reports how many genuine (non-padding) bits are left to read.
func (br *BitReader) Remaining() int {
	r := br.totalBits - br.readBits - br.padBits
	if r < 0 {
		return 0
	}
	return r
}

// ReadBit reads a single bit. Past AtEnd it returns false.
func (br *BitReader) ReadBit() bool {
	if br.AtEnd() {
		return false
	}
	bit := br.r.TryReadBool()
	br.readBits++
	return bit
}

// ReadBits reads the next n bits MSB-first as an unsigned integer. Bits past
// AtEnd read as zero; callers must consult AtEnd before trusting a flag read.
func (br *BitReader) ReadBits(n int) uint32 {
	remaining := br.totalBits - br.readBits
	if remaining <= 0 {
		return 0
	}
	if n > remaining {
		n = remaining
	}
	v := br.r.TryReadBits(uint8(n))
	br.readBits += n
	return uint32(v)
}
