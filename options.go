package tilezss

// EncodeOpts configures Encode.
type EncodeOpts struct {
	// Mode selects between the static (linear) and adaptive (tiled) scan.
	Mode Mode
	// Delta applies the first-difference filter before LZSS encoding.
	Delta bool
	// Width is the image width in pixels. Required when Mode is Adaptive;
	// ignored otherwise.
	Width uint16
}

// DefaultEncodeOpts returns options for the static path: no delta, no width.
func DefaultEncodeOpts() EncodeOpts {
	return EncodeOpts{Mode: Static}
}

// AdaptiveEncodeOpts returns options for the adaptive path at the given width.
func AdaptiveEncodeOpts(width uint16, delta bool) EncodeOpts {
	return EncodeOpts{Mode: Adaptive, Delta: delta, Width: width}
}
