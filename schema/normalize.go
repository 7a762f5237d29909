package schema

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so that
// "Dirección" and "direccion" compare equal.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a header or cell value for comparison:
// lowercase, diacritics stripped, everything outside [a-z0-9] removed.
// "Ship_To", "ship-to" and "Ship To" all normalize to "shipto".
// Idempotent and total; the empty string normalizes to itself.
func Normalize(text string) string {
	return normalizeFold(text, false)
}

// NormalizeWords is the word-boundary-preserving variant: runs of
// non-alphanumeric characters collapse to a single space instead of
// disappearing, so substring tests can still see token edges.
func NormalizeWords(text string) string {
	return normalizeFold(text, true)
}

func normalizeFold(text string, keepBoundaries bool) string {
	text = strings.ToLower(text)

	if folded, _, err := transform.String(stripMarks, text); err == nil {
		text = folded
	}

	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case keepBoundaries:
			pendingSpace = true
		}
	}
	return b.String()
}
