package handlers

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphenRuns = regexp.MustCompile(`-+`)
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	// NFD decomposition followed by combining-mark removal strips
	// diacritics ("Café" -> "Cafe").
	slugDeaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// generateSlug turns a product title into a URL-safe slug: lowercase
// alphanumeric segments joined by single hyphens. Empty input yields an
// empty string.
func generateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	if s == "" {
		return ""
	}

	if stripped, _, err := transform.String(slugDeaccent, s); err == nil {
		s = stripped
	}

	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// isValidSlug reports whether slug consists of lowercase alphanumeric
// segments joined by single hyphens, with no leading or trailing hyphen.
func isValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}
