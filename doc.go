/*
Package tilezss implements a lossless codec for raw 8-bit grayscale image
data: an LZSS dictionary scheme with two optional pre-transforms, a 16x16
adaptive tile reorder (with transposition) and a delta filter.

Format: a 3-byte header (flags + little-endian width) followed by either the
original input verbatim (compressed=0, used when LZSS would grow the data)
or an LZSS bit stream (compressed=1). Sliding window 8192 bytes, lookahead 32
bytes, matches encoded as 13-bit distance + 5-bit length, literals paired
where possible. See the container header bit layout in format.go.

Use Encode(data, opts) to compress and Decode(data) to decompress; the
header carries every flag needed to reverse the transform, so Decode takes
no options.

# Examples

Round-trip, static mode, no delta:

	enc, err := tilezss.Encode(pixels, tilezss.DefaultEncodeOpts())
	if err != nil {
		return err
	}
	dec, err := tilezss.Decode(enc)
	if err != nil {
		return err
	}
	// dec equals pixels

Adaptive mode with delta, image 256x256:

	opts := tilezss.AdaptiveEncodeOpts(256, true)
	enc, err := tilezss.Encode(pixels, opts)
	if err != nil {
		return err
	}
	dec, err := tilezss.Decode(enc)
*/
package tilezss
