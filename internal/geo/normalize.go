package geo

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanName trims the raw name, unifies em/en dashes to plain hyphens and
// collapses whitespace runs to single spaces. Idempotent, never fails.
func CleanName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "—", "-")
	s = strings.ReplaceAll(s, "–", "-")
	return whitespaceRun.ReplaceAllString(s, " ")
}

// StripAccents removes diacritics to widen matches ("Séxtuple" -> "Sextuple").
// The transform chain is stateful, so a fresh one is built per call to keep
// this safe for concurrent use.
func StripAccents(s string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}
