// Package slug derives URL-safe identifiers from post titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NFD decomposition followed by removal of combining marks strips
// diacritics, so "Hướng dẫn" becomes "Huong dan".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make lowercases the title, strips diacritics, drops everything that is
// not alphanumeric, space or hyphen, and collapses runs of spaces and
// hyphens into single hyphens.
func Make(title string) string {
	lowered := strings.ToLower(title)
	if folded, _, err := transform.String(stripDiacritics, lowered); err == nil {
		lowered = folded
	}
	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}
