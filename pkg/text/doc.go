// Package text provides small, Unicode-aware string helpers for capitalization,
// identifier case conversion and counting.
//
// All functions are pure and safe for concurrent use.
//
// # Capitalization
//
//	text.Capitalize("hello world")      // "Hello world"
//	text.CapitalizeWords("hello world") // "Hello World"
//
// Capitalize uses full Unicode case mapping from golang.org/x/text/cases, so a
// leading "ß" becomes "SS". Only the first character changes; the rest of the
// string is left as is.
//
// # Case Conversion
//
//	text.ToCamelCase("background-color") // "backgroundColor"
//	text.ToKebabCase("backgroundColor")  // "background-color"
//	text.ToSnakeCase("backgroundColor")  // "background_color"
//
// ToKebabCase and ToSnakeCase treat every uppercase letter as a word boundary and
// never emit a leading separator. ToCamelCase only collapses a dash followed by a
// lowercase letter.
//
// # Counting
//
//	text.CountWords("  hello   world ")         // 2
//	text.CountCharacters("hello world", false)  // 10
//	text.CountCharacters("hello world", true)   // 11
//
// CountCharacters normalizes to NFC first, so a letter with a combining accent is
// counted as one character.
package text
