package redflags

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/cvstudio/pkg/profile"
)

func completeProfile() profile.Profile {
	return profile.Profile{
		Contact: profile.Contact{
			FullName: "Jane Roe",
			Email:    "jane@example.com",
		},
		Summary: "Senior engineer with ten years across fintech and infrastructure teams.",
		Skills:  []string{"Go", "PostgreSQL"},
		Experiences: []profile.Experience{
			{
				ID: "e1", Role: "Engineer", Company: "Acme",
				Start: "2018-01", End: "present",
				Bullets: []string{"Cut p99 latency by 40% across the fleet."},
			},
		},
		Education: []profile.Education{{ID: "d1", School: "State University"}},
		Projects:  []profile.Project{{ID: "p1", Name: "Side Project"}},
	}
}

func TestAnalyzeCleanProfile(t *testing.T) {
	flags := Analyze(completeProfile(), "General", DefaultGuidance)
	assert.Empty(t, flags)
}

func TestAnalyzeEmptyProfileOrder(t *testing.T) {
	flags := Analyze(profile.Profile{}, "General", DefaultGuidance)
	assert.Equal(t, []string{
		"Missing full name in the header.",
		"Add at least one direct contact method (email or phone).",
		"Summary is short. Add scope, domain, and impact in 2-3 lines.",
		"No metrics detected. Add quantified impact in experience bullets.",
		"General roles typically need a strong Skills section.",
	}, flags)
}

func TestAnalyzeDeterministic(t *testing.T) {
	p := profile.Profile{}
	first := Analyze(p, "Software Engineering", DefaultGuidance)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Analyze(p, "Software Engineering", DefaultGuidance))
	}
}

func TestAnalyzePhoneCountsAsContact(t *testing.T) {
	p := completeProfile()
	p.Contact.Email = ""
	p.Contact.Phone = "+1 555 0100"
	flags := Analyze(p, "General", DefaultGuidance)
	assert.NotContains(t, flags, "Add at least one direct contact method (email or phone).")
}

func TestAnalyzeMetricsRule(t *testing.T) {
	p := completeProfile()
	p.Experiences[0].Bullets = []string{"Improved the deployment process significantly."}
	flags := Analyze(p, "General", DefaultGuidance)
	assert.Contains(t, flags, "No metrics detected. Add quantified impact in experience bullets.")
}

func TestAnalyzeEmploymentGap(t *testing.T) {
	p := completeProfile()
	p.Experiences = []profile.Experience{
		{ID: "e1", Role: "Engineer", Start: "2020-01", End: "2020-06", Bullets: []string{"Shipped v1 in 6 months."}},
		{ID: "e2", Role: "Engineer", Start: "2021-06", End: "present", Bullets: []string{"Shipped v2 in 6 months."}},
	}
	flags := Analyze(p, "General", DefaultGuidance)
	assert.Contains(t, flags, "Detected a gap longer than 6 months between roles. Consider adding explanation or projects.")
}

func TestAnalyzeNoGapWhenContiguous(t *testing.T) {
	p := completeProfile()
	p.Experiences = []profile.Experience{
		{ID: "e1", Role: "Engineer", Start: "2018-01", End: "2020-06", Bullets: []string{"Did 1 thing."}},
		{ID: "e2", Role: "Engineer", Start: "2020-09", End: "present", Bullets: []string{"Did 2 things."}},
	}
	flags := Analyze(p, "General", DefaultGuidance)
	assert.NotContains(t, flags, "Detected a gap longer than 6 months between roles. Consider adding explanation or projects.")
}

func TestAnalyzeGapIgnoresUnparseableDates(t *testing.T) {
	p := completeProfile()
	p.Experiences = []profile.Experience{
		{ID: "e1", Role: "Engineer", Start: "2019-01", End: "sometime", Bullets: []string{"Did 1 thing."}},
		{ID: "e2", Role: "Engineer", Start: "2021-06", End: "present", Bullets: []string{"Did 2 things."}},
	}
	flags := Analyze(p, "General", DefaultGuidance)
	assert.NotContains(t, flags, "Detected a gap longer than 6 months between roles. Consider adding explanation or projects.")
}

func TestAnalyzeFieldGuidance(t *testing.T) {
	flags := Analyze(profile.Profile{}, "Academia", DefaultGuidance)
	assert.Contains(t, flags, "Academia roles usually require Education details.")
	assert.NotContains(t, flags, "Academia roles typically need a strong Skills section.")
	assert.NotContains(t, flags, "Academia roles often expect Projects or Portfolio highlights.")

	flags = Analyze(profile.Profile{}, "Software Engineering", DefaultGuidance)
	assert.Contains(t, flags, "Software Engineering roles typically need a strong Skills section.")
	assert.Contains(t, flags, "Software Engineering roles often expect Projects or Portfolio highlights.")
}

func TestAnalyzeUnknownFieldSkipsGuidance(t *testing.T) {
	flags := Analyze(profile.Profile{}, "Astronaut", DefaultGuidance)
	assert.Len(t, flags, 4)
}

func TestKnown(t *testing.T) {
	for _, f := range JobFields {
		assert.True(t, Known(f), f)
	}
	assert.False(t, Known("Astronaut"))
	assert.False(t, Known(""))
}
