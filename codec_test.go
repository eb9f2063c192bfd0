package tilezss

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTripStatic(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		delta bool
	}{
		{"empty", []byte{}, false},
		{"single byte", []byte{0x41}, false},
		{"repeated byte", bytes.Repeat([]byte{0x41}, 8), false},
		{"repeated triplet", bytes.Repeat([]byte("ABC"), 4), false},
		{"random-ish incompressible", []byte{1, 200, 3, 199, 5, 197, 7, 195, 9, 193}, false},
		{"delta on ramp", ramp(64), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enc, err := Encode(c.input, EncodeOpts{Mode: Static, Delta: c.delta})
			require.NoError(t, err)

			dec, err := Decode(enc)
			require.NoError(t, err)
			require.Equal(t, c.input, dec)
		})
	}
}

func TestEncodeDecodeRoundTripAdaptive(t *testing.T) {
	width := uint16(32)
	img := ramp(int(width) * 64) // 2x4 tiles

	for _, delta := range []bool{false, true} {
		enc, err := Encode(img, EncodeOpts{Mode: Adaptive, Delta: delta, Width: width})
		require.NoError(t, err)

		dec, err := Decode(enc)
		require.NoError(t, err)
		require.Equal(t, img, dec)
	}
}

func TestEncodeEmptyInputHeader(t *testing.T) {
	enc, err := Encode(nil, DefaultEncodeOpts())
	require.NoError(t, err)
	require.Len(t, enc, HeaderSize)

	h, err := parseHeader(enc)
	require.NoError(t, err)
	require.Equal(t, 0, h.padding)
	require.Equal(t, Static, h.mode)
	require.False(t, h.orientation)
	require.False(t, h.compressed)
	require.False(t, h.delta)

	dec, err := Decode(enc)
	require.NoError(t, err)
	require.Empty(t, dec)
}

func TestEncodeReservedBitNeverSet(t *testing.T) {
	enc, err := Encode([]byte("some test data for header checks"), EncodeOpts{Mode: Static})
	require.NoError(t, err)
	require.Zero(t, enc[0]&headerReservedBit)
}

func TestEncodeIncompressibleFallsBackToRaw(t *testing.T) {
	// Pseudo-random bytes have almost no repeats of MinMatch or longer, so
	// the LZSS payload (9 bits per literal) is larger than the input; the
	// container must fall back to raw rather than grow the payload.
	input := make([]byte, 4096)
	rand.New(rand.NewSource(1)).Read(input)
	enc, err := Encode(input, EncodeOpts{Mode: Static})
	require.NoError(t, err)

	h, err := parseHeader(enc)
	require.NoError(t, err)
	require.False(t, h.compressed)
	require.Len(t, enc, HeaderSize+len(input))
	require.Equal(t, input, enc[HeaderSize:])

	dec, err := Decode(enc)
	require.NoError(t, err)
	require.Equal(t, input, dec)
}

func TestEncodeAdaptivePicksSmallerOrientation(t *testing.T) {
	// A single tile holding a plain row-major ramp (0..255): delta on the
	// untransposed stream collapses to a near-constant run of 0x01, which
	// the transposed stream cannot match (its row boundaries jump by 17,
	// not 1), so the horizontal trial must win or tie.
	width := uint16(Tile)
	img := ramp(TileArea)

	enc, err := Encode(img, EncodeOpts{Mode: Adaptive, Delta: true, Width: width})
	require.NoError(t, err)

	h, err := parseHeader(enc)
	require.NoError(t, err)
	require.False(t, h.orientation, "expected the horizontal trial to win on a plain ramp")

	dec, err := Decode(enc)
	require.NoError(t, err)
	require.Equal(t, img, dec)
}

func TestOrientationReflectsHeaderBit(t *testing.T) {
	width := uint16(Tile)
	img := ramp(TileArea)

	enc, err := Encode(img, EncodeOpts{Mode: Adaptive, Delta: true, Width: width})
	require.NoError(t, err)

	h, err := parseHeader(enc)
	require.NoError(t, err)

	vertical, err := Orientation(enc)
	require.NoError(t, err)
	require.Equal(t, h.orientation, vertical)
}

func TestOrientationPropagatesTruncatedError(t *testing.T) {
	_, err := Orientation([]byte{0x00})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestEncodeAdaptiveRejectsBadGeometry(t *testing.T) {
	_, err := Encode(make([]byte, 100), EncodeOpts{Mode: Adaptive, Width: 17})
	require.ErrorIs(t, err, ErrInputGeometry)

	_, err = Encode(make([]byte, 10), EncodeOpts{Mode: Adaptive, Width: 16})
	require.ErrorIs(t, err, ErrInputGeometry)

	// width divides evenly but the resulting height (17) isn't tile-aligned.
	_, err = Encode(make([]byte, 16*17), EncodeOpts{Mode: Adaptive, Width: 16})
	require.ErrorIs(t, err, ErrInputGeometry)
}

func TestDecodeTruncatedHeader(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x02})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeBadHeaderReservedBit(t *testing.T) {
	_, err := Decode([]byte{headerReservedBit, 0, 0})
	require.ErrorIs(t, err, ErrBadHeader)
}

func TestDecodeMatchBadDistance(t *testing.T) {
	bw := NewBitWriter()
	bw.WriteBit(true)
	bw.WriteBits(5, DistanceBits) // distance 5, but nothing emitted yet
	bw.WriteBits(3, LengthBits)
	payload, pad := bw.Finish()

	hdr := buildHeader(pad, Static, false, true, false, 0)
	enc := append(append([]byte{}, hdr[:]...), payload...)

	_, err := Decode(enc)
	require.ErrorIs(t, err, ErrBadDistance)
}

func TestDecodeMatchBadLength(t *testing.T) {
	bw := NewBitWriter()
	bw.WriteBit(true)
	bw.WriteBits(0, DistanceBits)
	bw.WriteBits(0, LengthBits)
	payload, pad := bw.Finish()

	hdr := buildHeader(pad, Static, false, true, false, 0)
	enc := append(append([]byte{}, hdr[:]...), payload...)

	_, err := Decode(enc)
	require.ErrorIs(t, err, ErrBadLength)
}
