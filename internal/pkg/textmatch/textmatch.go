// Package textmatch holds the identifier and display-name helpers used when
// matching records across catalogs.
package textmatch

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// keptPunctuation is the punctuation that survives sanitization.
const keptPunctuation = ";:!@#$%^&*()-+=?,"

// asciiSpace is the whitespace that survives sanitization.
const asciiSpace = " \t\n\v\f\r"

// guidLength is the length of the hyphenated 8-4-4-4-12 form.
const guidLength = 36

// IsGUID reports whether s is a hyphenated GUID such as
// "3f2504e0-4f89-11d3-9a0c-0305e82c3301".
func IsGUID(s string) bool {
	if len(s) != guidLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Sanitize reduces a display name to its comparison form: accents folded,
// everything but ASCII letters, digits, whitespace and keptPunctuation
// removed, surrounding whitespace trimmed, lower case.
func Sanitize(s string) string {
	folded, _, err := transform.String(foldAccents(), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if kept(r) {
			b.WriteRune(r)
		}
	}

	return strings.ToLower(strings.TrimSpace(b.String()))
}

func kept(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	default:
		return strings.ContainsRune(asciiSpace, r) || strings.ContainsRune(keptPunctuation, r)
	}
}

// Match reports whether a and b sanitize to the same string.
func Match(a, b string) bool {
	return Sanitize(a) == Sanitize(b)
}

// foldAccents returns a fresh transformer; chains carry state and are not
// safe to share between goroutines.
func foldAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
