// Package slug turns free-text titles into single, filesystem-safe path segments.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Untitled is returned when nothing usable is left of the input.
const Untitled = "untitled"

var (
	disallowed = regexp.MustCompile(`[^\p{L}\p{N}\p{Z}\s_-]`)
	separators = regexp.MustCompile(`[\p{Z}\s_-]+`)
	nonASCII   = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphens    = regexp.MustCompile(`-{2,}`)
)

// Slugify normalizes value into a lowercase slug made of [a-z0-9-].
//
// Accented characters are decomposed (NFKD) and their combining marks dropped,
// so "Café Olé" becomes "cafe-ole". Punctuation is removed and runs of
// whitespace, underscores and hyphens collapse into a single hyphen.
// The result is never empty: Untitled is returned instead.
func Slugify(value string) string {
	if value == "" {
		return Untitled
	}

	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	s, _, err := transform.String(t, value)
	if err != nil {
		s = value
	}

	s = disallowed.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(strings.TrimSpace(s), "-")
	s = strings.ToLower(strings.Trim(s, "-"))

	// Letters without an ASCII decomposition (e.g. Cyrillic) are dropped last.
	s = nonASCII.ReplaceAllString(s, "")
	s = strings.Trim(hyphens.ReplaceAllString(s, "-"), "-")

	if s == "" {
		return Untitled
	}
	return s
}
