// Package slug derives URL-safe identifiers from article titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	stripPattern    = regexp.MustCompile(`[^a-z0-9\s-]`)
	collapsePattern = regexp.MustCompile(`[\s-]+`)
)

// Make converts a title into a lowercase hyphen-separated slug:
// non-alphanumeric characters are stripped, runs of whitespace and
// hyphens collapse to a single hyphen, and leading/trailing hyphens
// are trimmed.
func Make(title string) string {
	s := strings.ToLower(title)
	s = stripPattern.ReplaceAllString(s, "")
	s = collapsePattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
