package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first character and leaves the rest untouched.
// Full Unicode case mapping is used, so "ßtraße" becomes "SStraße".
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	// Casers hold state and must not be shared between goroutines.
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// CapitalizeWords capitalizes every space-separated word. Runs of spaces are preserved.
func CapitalizeWords(s string) string {
	if s == "" {
		return s
	}

	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// ToCamelCase joins dash-separated words: "background-color" becomes "backgroundColor".
// Only a dash followed by a lowercase letter is collapsed.
func ToCamelCase(s string) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '-' && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			b.WriteRune(unicode.ToUpper(runes[i+1]))
			i++
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// ToKebabCase splits camelCase words with dashes: "backgroundColor" becomes "background-color".
func ToKebabCase(s string) string {
	return splitUpper(s, '-')
}

// ToSnakeCase splits camelCase words with underscores: "firstName" becomes "first_name".
// Every uppercase letter starts a new word, so "userID" becomes "user_i_d".
func ToSnakeCase(s string) string {
	return splitUpper(s, '_')
}

// splitUpper lowercases s and puts sep before every uppercase letter except a leading one.
func splitUpper(s string, sep rune) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	first := true
	for _, r := range s {
		if unicode.IsUpper(r) {
			if !first {
				b.WriteRune(sep)
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		first = false
	}

	return b.String()
}
