package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Clean collapses scraped text into a single normalized line:
// non-breaking spaces become regular spaces, runs of whitespace
// (including newlines) collapse to one space, ends are trimmed.
func Clean(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// StripNewlines removes embedded CR/LF so a value cannot break a
// CSV row across lines.
func StripNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// IsUFCEventName reports whether an event name belongs to the UFC
// promotion: the uppercased name starts with "UFC " or contains
// "UFC FIGHT NIGHT".
func IsUFCEventName(name string) bool {
	u := strings.ToUpper(Clean(name))
	return strings.HasPrefix(u, "UFC ") || strings.Contains(u, "UFC FIGHT NIGHT")
}

// ParseBool parses the permissive truthy encodings that show up in
// processed snapshots. Anything else is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y":
		return true
	}
	return false
}
