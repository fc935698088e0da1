// Package normalize prepares raw voter-name tokens for fuzzy matching.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Normalizer turns a raw name token into its matchable form. The log mixes
// two alphabets: Latin carries the actual names, Cyrillic is transliteration
// noise and is dropped entirely. Concatenated tokens like "JohnSmith" are
// split at lower-to-upper case transitions.
type Normalizer struct {
	stripNoise transform.Transformer
}

// New creates a Normalizer with the fixed two-alphabet rule.
func New() *Normalizer {
	return &Normalizer{
		stripNoise: runes.Remove(runes.In(unicode.Cyrillic)),
	}
}

// Clean normalizes a raw trimmed name token. It never fails: input that is
// entirely noise yields an empty string.
func (n *Normalizer) Clean(raw string) string {
	stripped, _, err := transform.String(n.stripNoise, raw)
	if err != nil {
		// runes.Remove cannot fail on valid UTF-8; malformed bytes are
		// replaced rather than rejected, so keep the original on error.
		stripped = raw
	}

	return splitCaseBoundaries(stripped)
}

// splitCaseBoundaries inserts a single space between a lower-case Latin rune
// immediately followed by an upper-case Latin rune, so "JohnSmith" becomes
// "John Smith".
func splitCaseBoundaries(s string) string {
	rs := []rune(s)
	if len(rs) < 2 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range rs {
		b.WriteRune(r)
		if i+1 < len(rs) && isLowerLatin(r) && isUpperLatin(rs[i+1]) {
			b.WriteRune(' ')
		}
	}

	return b.String()
}

func isLowerLatin(r rune) bool {
	return unicode.Is(unicode.Latin, r) && unicode.IsLower(r)
}

func isUpperLatin(r rune) bool {
	return unicode.Is(unicode.Latin, r) && unicode.IsUpper(r)
}
