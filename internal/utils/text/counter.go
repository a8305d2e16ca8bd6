// Package text provides utilities for text processing and analysis.
// The counters here are shared by every summarization provider so that
// summary lengths are measured the same way regardless of the backend.
package text

import (
	"strings"
	"unicode/utf8"
)

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters count once.
//
// Examples:
//
//	CountRunes("hello")     // 5
//	CountRunes("こんにちは") // 5
//	CountRunes("")          // 0
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}

// CountWords counts whitespace-separated words in the given text.
// It is the measure used for the "less than N words" summary instruction.
//
// Examples:
//
//	CountWords("Paris is the capital")  // 4
//	CountWords("  spaced \n\t out  ")   // 2
//	CountWords("")                      // 0
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// FirstWords returns at most n whitespace-separated words of text joined by single spaces.
func FirstWords(text string, n int) string {
	if n <= 0 {
		return ""
	}
	words := strings.Fields(text)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
