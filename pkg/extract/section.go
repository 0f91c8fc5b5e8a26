package extract

import (
	"regexp"
	"strings"
)

// reNextHeading bounds a section body at the next line that looks like a new
// heading: a short capitalized line of letters and spaces between newlines.
// The pattern is deliberately loose (it over-matches one-word headings and
// misses punctuated titles); extraction fixtures depend on it staying as-is.
var reNextHeading = regexp.MustCompile(`\n\s*[A-Z][A-Za-z ]{3,20}\s*\n`)

// FindSection returns the body of the earliest-occurring labeled section.
// Labels must be lower-case; matching is a case-insensitive substring search,
// ties between labels at the same offset resolve to the first label given.
// Returns "" when no label occurs.
func FindSection(text string, labels []string) string {
	lower := strings.ToLower(text)
	start := -1
	matched := ""
	for _, label := range labels {
		idx := strings.Index(lower, label)
		if idx != -1 && (start == -1 || idx < start) {
			start = idx
			matched = label
		}
	}
	if start == -1 {
		return ""
	}
	after := text[start+len(matched):]
	if loc := reNextHeading.FindStringIndex(after); loc != nil {
		return strings.TrimSpace(after[:loc[0]])
	}
	return strings.TrimSpace(after)
}

func nonBlankLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
