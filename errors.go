package tilezss

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	// ErrInputGeometry is returned when adaptive mode is requested with a
	// width/height combination not divisible by the tile size.
	ErrInputGeometry = errors.New("input geometry is not valid for adaptive mode")
	// ErrShortRead is returned when the decoder runs out of bits before
	// completing a non-pad token.
	ErrShortRead = errors.New("ran out of bits before completing a token")
	// ErrBadDistance is returned when a decoded match references a window
	// position that does not exist yet.
	ErrBadDistance = errors.New("match distance exceeds current window size")
	// ErrBadLength is returned when a decoded match has length zero.
	ErrBadLength = errors.New("match length is zero")
	// ErrBadHeader is returned when the reserved header bit is set, or when a
	// compressed adaptive-mode header carries a width of zero.
	ErrBadHeader = errors.New("invalid stream header")
	// ErrTruncated is returned when fewer than 3 header bytes are available.
	ErrTruncated = errors.New("input shorter than the 3-byte header")
)
