// Package analysis is made to measure how ciphertexts react to input changes
package analysis

// DiffCount counts the positions at which two texts hold different symbols.
// Symbols past the end of the shorter text all count as different.
func DiffCount(original, modified string) int {
	a, b := []rune(original), []rune(modified)
	if len(a) < len(b) {
		a, b = b, a
	}

	diff := len(a) - len(b)
	for i := range b {
		if a[i] != b[i] {
			diff++
		}
	}
	return diff
}

// ChangeRatio is DiffCount over the length of the longer text, in [0, 1].
func ChangeRatio(original, modified string) float64 {
	n := max(len([]rune(original)), len([]rune(modified)))
	if n == 0 {
		return 0.0
	}
	return float64(DiffCount(original, modified)) / float64(n)
}

// ValidateAvalanche reports whether more than one symbol changed and the
// change ratio reaches threshold.
func ValidateAvalanche(diff int, ratio, threshold float64) bool {
	if diff <= 1 {
		return false
	}
	return ratio >= threshold
}
