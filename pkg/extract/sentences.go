package extract

import (
	"regexp"
	"strings"
)

var (
	reSpaceRuns = regexp.MustCompile(`\s+`)
	reSentence  = regexp.MustCompile(`[^.!?]+[.!?]+`)
)

// Sentences picks up to limit sentence-like fragments longer than 40
// characters. Text without sentence punctuation falls back to line splitting.
func Sentences(text string, limit int) []string {
	normalized := strings.TrimSpace(reSpaceRuns.ReplaceAllString(text, " "))
	parts := reSentence.FindAllString(normalized, -1)
	if parts == nil {
		parts = strings.Split(normalized, "\n")
	}
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) <= 40 {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}
