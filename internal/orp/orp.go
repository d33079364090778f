// Package orp computes a word's Optimal Recognition Point: the character
// the eye should land on when words are flashed one at a time.
package orp

// Index returns the pivot position for a word as a step function of its
// length in runes. The pivot moves right as the word grows and is capped
// at offset 4, so long words still center visually without the pivot
// drifting past a fixed bound.
func Index(word string) int {
	n := len([]rune(word))
	switch {
	case n <= 1:
		return 0
	case n <= 5:
		return 1
	case n <= 9:
		return 2
	case n <= 13:
		return 3
	default:
		return 4
	}
}

// Split partitions word into the runes before the pivot, the single pivot
// rune, and the runes after it. The three parts concatenate back to the
// original word exactly. An empty word yields three empty strings; the
// renderer handles the missing pivot.
func Split(word string) (prefix, pivot, suffix string) {
	runes := []rune(word)
	if len(runes) == 0 {
		return "", "", ""
	}
	i := Index(word)
	return string(runes[:i]), string(runes[i]), string(runes[i+1:])
}
