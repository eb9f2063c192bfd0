package tilezss

// validateAdaptiveGeometry enforces the §4.8 divisibility checks required
// before an adaptive-mode encode: width must be positive and tile-aligned,
// and the input must divide evenly into a whole number of tile rows.
func validateAdaptiveGeometry(inputLen int, width uint16) error {
	w := int(width)
	if w <= 0 || w%Tile != 0 {
		return ErrInputGeometry
	}
	if inputLen%w != 0 {
		return ErrInputGeometry
	}
	if (inputLen/w)%Tile != 0 {
		return ErrInputGeometry
	}
	return nil
}

// Encode is the single-shot entry point for compression. It selects the
// static or adaptive path by opts.Mode and, for adaptive, validates the
// image geometry before running the two orientation trials inside the
// container.
func Encode(input []byte, opts EncodeOpts) ([]byte, error) {
	if opts.Mode == Adaptive {
		if err := validateAdaptiveGeometry(len(input), opts.Width); err != nil {
			return nil, err
		}
	}
	return encodeContainer(input, opts), nil
}

// Decode is the single-shot entry point for decompression. The container
// header carries every flag needed to reverse the transform, so Decode
// takes no options.
func Decode(input []byte) ([]byte, error) {
	return decodeContainer(input)
}
