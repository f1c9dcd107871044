// Package slug derives URL-safe identifiers from human-readable names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make converts a name into its slug: lowercase, diacritics stripped,
// every run of characters outside [a-z0-9] collapsed into a single
// hyphen, no leading or trailing hyphen. Pure and deterministic, so
// Make(Make(s)) == Make(s).
func Make(name string) string {
	lower := strings.ToLower(name)

	// NFD splits letters from their combining marks, which are then
	// dropped along with every other non-alphanumeric rune.
	decomposed := norm.NFD.String(lower)

	var b strings.Builder
	b.Grow(len(decomposed))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
