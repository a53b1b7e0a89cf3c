package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CapitalizeWords trims s, then upper-cases the first character of every
// space-separated word and lower-cases the rest. Words are split on single
// spaces only, so runs of spaces survive as empty words. Blank input is
// returned unchanged.
func CapitalizeWords(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}

	words := strings.Split(strings.TrimSpace(s), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(w[:size]) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// PadLeft prefixes s with pad until it is at least width runes long.
// A zero pad rune leaves s untouched.
func PadLeft(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width || pad == 0 {
		return s
	}
	return strings.Repeat(string(pad), width-n) + s
}
