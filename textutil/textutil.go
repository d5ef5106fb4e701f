// Package textutil holds small, side-effect free string helpers.
package textutil

import (
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// WordCount returns the number of non-empty pieces of s separated by
// the space character. Other whitespace does not separate words.
func WordCount(s string) int {
	return len(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' '
	}))
}

// IsEmpty reports whether s is empty or made only of whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Truncate returns s unchanged when it holds at most maxLength
// characters, otherwise its first maxLength characters followed by an
// ellipsis.
func Truncate(s string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}

	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLength]) + ellipsis
}

// Reverse returns the characters of s in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
