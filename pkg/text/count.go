package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// CountCharacters returns the number of characters in s after NFC normalization,
// so "e" followed by a combining acute accent counts once. Whitespace is skipped
// unless countWhitespace is set.
func CountCharacters(s string, countWhitespace bool) int {
	if s == "" {
		return 0
	}

	s = norm.NFC.String(s)
	if countWhitespace {
		return utf8.RuneCountInString(s)
	}

	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
