package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixed returns a picker that always selects the same starter index.
func fixed(i int) PickFunc {
	return func(int) int { return i }
}

func TestEnhancerLineStripsMarker(t *testing.T) {
	e := NewEnhancer(fixed(0))
	assert.Equal(t, "Delivered shipped the new onboarding flow.", e.Line("- shipped the new onboarding flow"))
	assert.Equal(t, "Delivered shipped the new onboarding flow.", e.Line("• shipped the new onboarding flow"))
}

func TestEnhancerLineWithMetric(t *testing.T) {
	e := NewEnhancer(fixed(1))
	// Metric lines get a lowercased first letter and no forced period.
	got := e.Line("Reduced latency by 40%")
	assert.Equal(t, "Led reduced latency by 40%", got)
	assert.False(t, strings.HasSuffix(got, "."))
}

func TestEnhancerLineKeepsExistingPeriod(t *testing.T) {
	e := NewEnhancer(fixed(2))
	got := e.Line("owned the release process.")
	assert.Equal(t, "Built owned the release process.", got)
	// Running the enhancer again must not stack periods.
	again := e.Line(got)
	assert.True(t, strings.HasSuffix(again, "process."))
	assert.False(t, strings.HasSuffix(again, ".."))
}

func TestEnhancerLineEmpty(t *testing.T) {
	e := NewEnhancer(nil)
	assert.Equal(t, "", e.Line(""))
	assert.Equal(t, "", e.Line("   "))
}

func TestEnhancerRoundRobin(t *testing.T) {
	e := NewEnhancer(RoundRobin())
	var firsts []string
	for range Starters {
		line := e.Line("did a thing")
		firsts = append(firsts, strings.SplitN(line, " ", 2)[0])
	}
	assert.Equal(t, Starters, firsts)
}

func TestEnhancerSummaryShort(t *testing.T) {
	e := NewEnhancer(nil)
	got := e.Summary("Engineer with   five years of experience.")
	assert.Equal(t, "Engineer with five years of experience. "+SummaryCloser, got)
}

func TestEnhancerSummaryLongEnough(t *testing.T) {
	e := NewEnhancer(nil)
	long := "Staff engineer focused on distributed systems, developer productivity and reliability work."
	assert.Equal(t, long, e.Summary(long))
}

func TestEnhancerSummaryEmpty(t *testing.T) {
	e := NewEnhancer(nil)
	assert.Equal(t, "", e.Summary(""))
}
