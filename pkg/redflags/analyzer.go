package redflags

import (
	"regexp"
	"sort"
	"time"

	"github.com/artem13815/cvstudio/pkg/extract"
	"github.com/artem13815/cvstudio/pkg/profile"
)

const (
	minSummaryLen = 60
	maxGapMonths  = 6
	daysPerMonth  = 30
)

var reDigits = regexp.MustCompile(`\d+`)

// Analyze evaluates a profile against the guidance for a job field and
// returns an ordered list of human-readable warnings. Rule order is fixed;
// identical inputs always produce an identical list.
func Analyze(p profile.Profile, jobField string, guidance Table) []string {
	var flags []string
	if p.Contact.FullName == "" {
		flags = append(flags, "Missing full name in the header.")
	}
	if p.Contact.Email == "" && p.Contact.Phone == "" {
		flags = append(flags, "Add at least one direct contact method (email or phone).")
	}
	if len(p.Summary) < minSummaryLen {
		flags = append(flags, "Summary is short. Add scope, domain, and impact in 2-3 lines.")
	}
	if !anyBulletHasMetric(p.Experiences) {
		flags = append(flags, "No metrics detected. Add quantified impact in experience bullets.")
	}
	if hasEmploymentGap(p.Experiences) {
		flags = append(flags, "Detected a gap longer than 6 months between roles. Consider adding explanation or projects.")
	}
	if g, ok := guidance[jobField]; ok {
		for _, section := range g.Must {
			switch section {
			case "Skills":
				if skillsBlank(p.Skills) {
					flags = append(flags, jobField+" roles typically need a strong Skills section.")
				}
			case "Projects":
				if projectsNameless(p.Projects) {
					flags = append(flags, jobField+" roles often expect Projects or Portfolio highlights.")
				}
			case "Education":
				if educationSchoolless(p.Education) {
					flags = append(flags, jobField+" roles usually require Education details.")
				}
			}
		}
	}
	return flags
}

func anyBulletHasMetric(exps []profile.Experience) bool {
	for _, exp := range exps {
		for _, b := range exp.Bullets {
			if b != "" && reDigits.MatchString(b) {
				return true
			}
		}
	}
	return false
}

// hasEmploymentGap sorts entries with a resolvable start date and looks for
// the first adjacent pair more than six months apart. Unparseable dates are
// treated as absent, not as errors.
func hasEmploymentGap(exps []profile.Experience) bool {
	type span struct {
		start time.Time
		end   time.Time
		endOK bool
	}
	var spans []span
	for _, exp := range exps {
		start, ok := extract.ParseDate(exp.Start)
		if !ok {
			continue
		}
		s := span{start: start}
		s.end, s.endOK = extract.ParseDate(exp.End)
		spans = append(spans, s)
	}
	if len(spans) < 2 {
		return false
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start.Before(spans[j].start) })
	for i := 1; i < len(spans); i++ {
		if !spans[i-1].endOK {
			continue
		}
		gapMonths := spans[i].start.Sub(spans[i-1].end).Hours() / 24 / daysPerMonth
		if gapMonths > maxGapMonths {
			return true
		}
	}
	return false
}

func skillsBlank(skills []string) bool {
	for _, s := range skills {
		if s != "" {
			return false
		}
	}
	return true
}

func projectsNameless(projects []profile.Project) bool {
	for _, p := range projects {
		if p.Name != "" {
			return false
		}
	}
	return true
}

func educationSchoolless(edu []profile.Education) bool {
	for _, e := range edu {
		if e.School != "" {
			return false
		}
	}
	return true
}
