// Package generate provides deterministic, template-based content generation
// from extracted job keywords. It is the degraded-mode substitute used when
// the hosted generation service is unreachable; output quality is
// "plausible placeholder", not a replacement for the primary path.
package generate

import "strings"

// capitalize uppercases the first letter and lowercases the rest, matching
// how extracted keywords are displayed ("python" -> "Python").
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// capitalizeAll maps capitalize over a keyword list.
func capitalizeAll(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, k := range keywords {
		out[i] = capitalize(k)
	}
	return out
}
