package extract

import (
	"strings"

	"github.com/artem13815/cvstudio/pkg/profile"
)

const maxExperienceEntries = 3

var experienceLabels = []string{"experience", "work experience", "employment"}

// ExtractExperiences builds up to three experience entries from the
// experience section of text. Role/company are split on " at " or " - ";
// a line matching neither becomes a role with no company. All entries in one
// pass receive the same bullet list derived from the whole section; that is a
// deliberate heuristic simplification, keep it.
func ExtractExperiences(text string, enhance func(string) string) []profile.Experience {
	section := FindSection(text, experienceLabels)
	if section == "" {
		return nil
	}
	bullets := Sentences(section, 3)
	enhanced := make([]string, 0, len(bullets))
	for _, b := range bullets {
		enhanced = append(enhanced, enhance(b))
	}
	var entries []profile.Experience
	for _, line := range nonBlankLines(section) {
		if len(entries) >= maxExperienceEntries {
			break
		}
		if len(line) < 6 {
			continue
		}
		var role, company string
		switch {
		case strings.Contains(line, " at "):
			parts := strings.Split(line, " at ")
			role = strings.TrimSpace(parts[0])
			company = strings.TrimSpace(parts[1])
		case strings.Contains(line, " - "):
			parts := strings.Split(line, " - ")
			company = strings.TrimSpace(parts[0])
			role = strings.TrimSpace(parts[1])
		default:
			role = line
		}
		entries = append(entries, profile.Experience{
			ID:      profile.NewID(),
			Role:    role,
			Company: company,
			Bullets: append([]string(nil), enhanced...),
		})
	}
	return entries
}
