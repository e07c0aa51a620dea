// Package textnorm folds text for diacritic- and case-insensitive
// comparison.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize decomposes the text (NFD), drops all combining marks,
// recomposes it and lower-cases the result, so "Kódování" and
// "kodovani" normalize to the same string. It is idempotent and never
// fails; input that cannot be transformed is returned lower-cased.
func Normalize(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		return strings.ToLower(text)
	}
	return strings.ToLower(result)
}
