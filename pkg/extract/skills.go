package extract

import (
	"regexp"
	"strings"
)

const (
	maxLabeledSkills = 12
	maxFreeSkills    = 8
)

var (
	// "Skills:" or "Skills\n" followed by up to 400 characters of block body.
	reSkillBlock = regexp.MustCompile(`(?is)skills?\s*[:\n](.{0,400})`)
	reSkillSplit = regexp.MustCompile(`\n|,|•`)
	reCommaLine  = regexp.MustCompile(`,|\n`)
	// Short alphabetic-ish token: 1-2 words, letters/digits/spaces/+/#/./-.
	reFreeToken = regexp.MustCompile(`^[A-Za-z][A-Za-z +#.-]{1,30}$`)
)

// ParseSkills extracts a deduplicated, order-preserving skill list.
// A labeled "Skills" block wins; otherwise any short comma/newline separated
// token in the whole text qualifies. Never fails: no match means no skills.
func ParseSkills(text string) []string {
	if m := reSkillBlock.FindStringSubmatch(text); m != nil {
		var lines []string
		for _, l := range reSkillSplit.Split(m[1], -1) {
			l = strings.TrimSpace(l)
			if len(l) > 1 {
				lines = append(lines, l)
			}
		}
		return dedupe(lines, maxLabeledSkills)
	}
	var candidates []string
	for _, l := range reCommaLine.Split(text, -1) {
		l = strings.TrimSpace(l)
		if reFreeToken.MatchString(l) {
			candidates = append(candidates, l)
		}
	}
	return dedupe(candidates, maxFreeSkills)
}

// dedupe keeps first occurrences in order, capped at max entries.
func dedupe(in []string, max int) []string {
	var out []string
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}
