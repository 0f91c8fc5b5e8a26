package extract

import (
	"strings"

	"github.com/artem13815/cvstudio/pkg/profile"
)

// Engine bundles the extractors with a shared enhancer. It implements the
// profile.Extractor port.
type Engine struct {
	enh *Enhancer
}

func NewEngine(enh *Enhancer) *Engine {
	if enh == nil {
		enh = NewEnhancer(nil)
	}
	return &Engine{enh: enh}
}

// Prefill fills gaps in p from raw source text. It never overwrites
// non-empty user-entered content: a field is only replaced when the current
// value is absent (summary shorter than 50 chars, all-blank skills, or a
// first entry missing its identifying field).
func (g *Engine) Prefill(p profile.Profile, text string) profile.Profile {
	if text == "" {
		return p
	}
	updated := p
	if len(p.Summary) < 50 {
		updated.Summary = strings.Join(Sentences(text, 2), " ")
	}
	if allBlank(p.Skills) {
		if skills := ParseSkills(text); len(skills) > 0 {
			updated.Skills = skills
		}
	}
	if len(p.Experiences) == 0 || p.Experiences[0].Role == "" {
		if exp := ExtractExperiences(text, g.enh.Line); len(exp) > 0 {
			updated.Experiences = exp
		}
	}
	if len(p.Education) == 0 || p.Education[0].School == "" {
		if edu := ExtractEducation(text, g.enh.Line); len(edu) > 0 {
			updated.Education = edu
		}
	}
	return updated
}

// Improve applies the tone pass over the whole profile: summary normalizer,
// skill cleanup, and the bullet enhancer on experience and project bullets.
func (g *Engine) Improve(p profile.Profile) profile.Profile {
	improved := p
	improved.Summary = g.enh.Summary(p.Summary)
	var skills []string
	for _, s := range p.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	improved.Skills = skills
	improved.Experiences = make([]profile.Experience, len(p.Experiences))
	for i, exp := range p.Experiences {
		exp.Bullets = enhanceAll(exp.Bullets, g.enh.Line)
		improved.Experiences[i] = exp
	}
	improved.Projects = make([]profile.Project, len(p.Projects))
	for i, proj := range p.Projects {
		proj.Bullets = enhanceAll(proj.Bullets, g.enh.Line)
		improved.Projects[i] = proj
	}
	return improved
}

func enhanceAll(lines []string, enhance func(string) string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = enhance(l)
	}
	return out
}

func allBlank(ss []string) bool {
	for _, s := range ss {
		if s != "" {
			return false
		}
	}
	return true
}
