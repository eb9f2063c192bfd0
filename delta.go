package tilezss

// DeltaForward applies the first-difference filter in place: each byte
// (from the last down to index 1) becomes its difference from its
// predecessor, modulo 256. It is a no-op for buffers of length 0 or 1.
func DeltaForward(data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		data[i] = data[i] - data[i-1]
	}
}

// DeltaInverse reverses DeltaForward in place.
func DeltaInverse(data []byte) {
	for i := 1; i < len(data); i++ {
		data[i] = data[i] + data[i-1]
	}
}
