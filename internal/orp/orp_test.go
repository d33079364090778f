package orp

import (
	"strings"
	"testing"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"", 0},
		{"a", 0},
		{"at", 1},
		{"hello", 1},
		{"readin", 2},
		{"wonderful", 2},
		{"unexpected", 3},
		{"extraordinar", 3},
		{"extraordinary", 3},
		{"incomprehensible", 4},
	}

	for _, tt := range tests {
		if got := Index(tt.word); got != tt.expected {
			t.Errorf("Index(%q) = %d, want %d", tt.word, got, tt.expected)
		}
	}
}

func TestIndex_MonotoneAndBounded(t *testing.T) {
	prev := 0
	for n := 0; n <= 40; n++ {
		idx := Index(strings.Repeat("a", n))
		if idx < prev {
			t.Errorf("Index not monotone at length %d: %d < %d", n, idx, prev)
		}
		if idx > 4 {
			t.Errorf("Index(%d runes) = %d, exceeds bound 4", n, idx)
		}
		prev = idx
	}
}

func TestIndex_CountsRunes(t *testing.T) {
	// Multibyte characters count as one; "héllo" is five runes long.
	if got := Index("héllo"); got != 1 {
		t.Errorf("Index(héllo) = %d, want 1", got)
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	words := []string{
		"", "a", "at", "word", "hello,", "wonderful",
		"extraordinary!", "incomprehensibilities", "héllo", "日本語のテキスト",
	}
	for _, w := range words {
		prefix, pivot, suffix := Split(w)
		if prefix+pivot+suffix != w {
			t.Errorf("Split(%q) parts %q+%q+%q do not rebuild the word", w, prefix, pivot, suffix)
		}
	}
}

func TestSplit_Empty(t *testing.T) {
	prefix, pivot, suffix := Split("")
	if prefix != "" || pivot != "" || suffix != "" {
		t.Errorf("Split(\"\") = %q, %q, %q, want empty parts", prefix, pivot, suffix)
	}
}

func TestSplit_PivotAtIndex(t *testing.T) {
	for _, w := range []string{"a", "hello", "wonderful", "extraordinary"} {
		prefix, pivot, _ := Split(w)
		if len([]rune(prefix)) != Index(w) {
			t.Errorf("Split(%q): prefix length %d, want %d", w, len([]rune(prefix)), Index(w))
		}
		if len([]rune(pivot)) != 1 {
			t.Errorf("Split(%q): pivot %q is not a single rune", w, pivot)
		}
	}
}
