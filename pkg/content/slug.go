// Package content holds the text utilities shared by the editor and the
// public site: slug derivation, reading time and the SEO checklist.
package content

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// RE2 \s is ASCII only; \pZ adds NBSP and the other Unicode separators.
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s\v\pZ-]`)
	slugWhitespace   = regexp.MustCompile(`[\s\v\pZ]+`)
	slugDashes       = regexp.MustCompile(`-+`)
)

// Slug lowercases text, strips diacritics and reduces it to [a-z0-9-].
// "Inteligência Artificial" becomes "inteligencia-artificial".
func Slug(text string) string {
	s := strings.ToLower(text)

	// Chained transformers keep state, so build one per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isCombiningMark)))
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// isCombiningMark matches the Combining Diacritical Marks block.
func isCombiningMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
}
