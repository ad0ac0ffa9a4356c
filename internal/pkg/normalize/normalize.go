// Package normalize applies the canonical casing rules for admission
// record fields on every creating or updating write.
package normalize

import (
	"strings"
	"unicode"
)

// TitleCase uppercases the first letter of every word and leaves the
// remaining letters untouched. Leaving the tail alone matters for
// values like "MBA" or "B.Tech (Hons)" which full title casing would
// mangle. A word starts after any non-letter, non-digit rune.
func TitleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	startOfWord := true
	for _, r := range s {
		if startOfWord {
			sb.WriteRune(unicode.ToUpper(r))
		} else {
			sb.WriteRune(r)
		}
		startOfWord = !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}
	return sb.String()
}

// StudentID canonicalizes a student identifier to uppercase.
func StudentID(s string) string {
	return strings.ToUpper(s)
}
