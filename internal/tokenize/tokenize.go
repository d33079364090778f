// Package tokenize turns raw text into the ordered word sequence the
// reader plays back.
package tokenize

import "strings"

// Split trims the input and splits it on runs of whitespace, including
// newlines and tabs. Punctuation stays attached to its word; there is no
// case normalization or language-aware segmentation. Empty or
// whitespace-only input yields an empty sequence, never an error; whether
// that counts as a failure is the caller's call.
func Split(raw string) []string {
	return strings.Fields(raw)
}
