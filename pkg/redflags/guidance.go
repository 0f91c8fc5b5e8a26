package redflags

// Guidance lists which sections a job field expects on a resume.
type Guidance struct {
	Must []string `json:"must"`
	Good []string `json:"good"`
}

// Table maps a job field name to its section guidance.
type Table map[string]Guidance

// DefaultField is applied when no job field was selected.
const DefaultField = "General"

// JobFields is the selectable field list, in display order.
var JobFields = []string{
	"General",
	"Software Engineering",
	"Design",
	"Marketing",
	"Sales",
	"Finance",
	"Healthcare",
	"Operations",
	"Academia",
}

// DefaultGuidance is static configuration, loaded once and passed into the
// analyzer explicitly.
var DefaultGuidance = Table{
	"General": {
		Must: []string{"Summary", "Experience", "Skills"},
		Good: []string{"Projects", "Education", "Certifications"},
	},
	"Software Engineering": {
		Must: []string{"Skills", "Projects", "Experience"},
		Good: []string{"Certifications", "Open Source", "Education"},
	},
	"Design": {
		Must: []string{"Portfolio Link", "Projects", "Experience"},
		Good: []string{"Awards", "Tools", "Education"},
	},
	"Marketing": {
		Must: []string{"Experience", "Metrics", "Campaigns"},
		Good: []string{"Certifications", "Tools", "Projects"},
	},
	"Sales": {
		Must: []string{"Experience", "Quota Attainment", "Metrics"},
		Good: []string{"Territories", "Tools", "Certifications"},
	},
	"Finance": {
		Must: []string{"Experience", "Certifications", "Education"},
		Good: []string{"Projects", "Technical Skills"},
	},
	"Healthcare": {
		Must: []string{"Licenses", "Experience", "Education"},
		Good: []string{"Certifications", "Specializations"},
	},
	"Operations": {
		Must: []string{"Experience", "Process Improvements", "Metrics"},
		Good: []string{"Tools", "Certifications"},
	},
	"Academia": {
		Must: []string{"Education", "Publications", "Research"},
		Good: []string{"Teaching", "Grants", "Awards"},
	},
}

// Known reports whether field names a configured job field.
func Known(field string) bool {
	_, ok := DefaultGuidance[field]
	return ok
}
