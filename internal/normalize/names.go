package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// PayerType lowercases, collapses whitespace, and trims a payer_type cell
// so table lookups are case-insensitive ("Self Pay " matches "self pay").
func PayerType(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return multiSpace.ReplaceAllString(s, " ")
}

// Department trims and collapses whitespace in a service_category cell.
// Case is preserved so department names render as uploaded.
func Department(s string) string {
	s = strings.TrimSpace(s)
	return multiSpace.ReplaceAllString(s, " ")
}
