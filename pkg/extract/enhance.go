package extract

import (
	"math/rand"
	"regexp"
	"strings"
	"unicode"
)

// Starters are the fixed action verbs the enhancer rotates through.
var Starters = []string{"Delivered", "Led", "Built", "Optimized", "Launched", "Improved"}

// SummaryCloser is appended to summaries that are too short to stand alone.
const SummaryCloser = "Known for cross-functional collaboration and measurable impact."

// PickFunc selects a starter index given the number of starters. Production
// wiring uses math/rand; tests inject a deterministic picker.
type PickFunc func(n int) int

// Enhancer rewrites bullet lines and summaries into a consistent tone.
type Enhancer struct {
	pick PickFunc
}

// NewEnhancer builds an Enhancer with the given starter picker. A nil picker
// falls back to math/rand.
func NewEnhancer(pick PickFunc) *Enhancer {
	if pick == nil {
		pick = rand.Intn
	}
	return &Enhancer{pick: pick}
}

// RoundRobin returns a picker that cycles through starters in order.
func RoundRobin() PickFunc {
	next := 0
	return func(n int) int {
		i := next % n
		next++
		return i
	}
}

var (
	reBulletMarker = regexp.MustCompile(`^[-•]\s*`)
	reDigitWord    = regexp.MustCompile(`\b\d+\b`)
)

// Line rewrites one bullet line: strips a leading marker, prepends a starter,
// and keeps metric-bearing lines free of forced trailing punctuation.
func (e *Enhancer) Line(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	starter := Starters[e.pick(len(Starters))]
	normalized := reBulletMarker.ReplaceAllString(trimmed, "")
	if reDigitWord.MatchString(normalized) {
		return starter + " " + lowerFirst(normalized)
	}
	if strings.HasSuffix(normalized, ".") {
		return starter + " " + normalized
	}
	return starter + " " + normalized + "."
}

// Summary collapses whitespace and pads short summaries with a closing clause.
func (e *Enhancer) Summary(summary string) string {
	if summary == "" {
		return ""
	}
	cleaned := strings.TrimSpace(reSpaceRuns.ReplaceAllString(summary, " "))
	if len(cleaned) < 80 {
		return cleaned + " " + SummaryCloser
	}
	return cleaned
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
