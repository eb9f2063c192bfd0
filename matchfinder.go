package tilezss

// match is the result of a MatchFinder search: a back-reference distance
// (0 = the byte immediately preceding the current position) and length.
type match struct {
	distance int
	length   int
}

// findMatch searches window for the longest run that also occurs as a
// prefix of lookahead, returning the best match of length >= MinMatch or
// ok=false if none qualifies.
//
// This is the brute-force reference algorithm from the format's design: it
// checks every window position. Any accelerated implementation (hash
// chains, suffix structures) must reproduce identical (distance, length)
// results, including the tie-break below.
//
// Tie-break: among matches of equal (maximal) length, the one starting
// closest to the end of the window wins — equivalently, the smallest
// distance. The loop below walks the window from oldest to newest and
// replaces the best match on ">=", so the most recent (closest) match wins
// on ties.
func findMatch(window []byte, lookahead []byte) (match, bool) {
	maxLen := len(lookahead)
	if maxLen > MaxMatch {
		maxLen = MaxMatch
	}
	if maxLen < MinMatch {
		return match{}, false
	}

	var best match
	for start := 0; start < len(window); start++ {
		length := 0
		for length < maxLen {
			idx := start + length
			var src byte
			if idx < len(window) {
				src = window[idx]
			} else {
				// Overlapping copy: the source byte falls within the match
				// itself, i.e. bytes already confirmed equal to lookahead.
				src = lookahead[idx-len(window)]
			}
			if src != lookahead[length] {
				break
			}
			length++
		}
		if length >= MinMatch && length >= best.length {
			best = match{
				distance: len(window) - 1 - start,
				length:   length,
			}
		}
	}

	if best.length == 0 {
		return match{}, false
	}
	return best, true
}
