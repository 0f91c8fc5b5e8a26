package extract

import "github.com/artem13815/cvstudio/pkg/profile"

var educationLabels = []string{"education"}

// ExtractEducation builds a single education entry from the education section:
// first line is the school, second the degree, lines three and four become
// enhanced detail bullets.
func ExtractEducation(text string, enhance func(string) string) []profile.Education {
	section := FindSection(text, educationLabels)
	if section == "" {
		return nil
	}
	lines := nonBlankLines(section)
	if len(lines) == 0 {
		return nil
	}
	entry := profile.Education{
		ID:     profile.NewID(),
		School: lines[0],
	}
	if len(lines) > 1 {
		entry.Degree = lines[1]
	}
	for _, line := range sliceRange(lines, 2, 4) {
		entry.Details = append(entry.Details, enhance(line))
	}
	return []profile.Education{entry}
}

// sliceRange is a bounds-safe lines[from:to].
func sliceRange(lines []string, from, to int) []string {
	if from >= len(lines) {
		return nil
	}
	if to > len(lines) {
		to = len(lines)
	}
	return lines[from:to]
}
