package profile

// Template describes one visual template. Rendering happens client-side; the
// service only validates and persists the chosen id.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Layout      string `json:"layout"`
}

var Templates = []Template{
	{ID: "classic", Name: "Classic", Description: "Two-column executive look", Layout: "two-left"},
	{ID: "modern", Name: "Modern", Description: "Bold header and clean grid", Layout: "two-left"},
	{ID: "minimal", Name: "Minimal", Description: "Monochrome with sharp typography", Layout: "two-left"},
	{ID: "studio", Name: "Studio", Description: "Warm editorial with artisan tone", Layout: "two-left"},
	{ID: "slate", Name: "Slate", Description: "Crisp corporate balance", Layout: "two-left"},
	{ID: "coast", Name: "Coast", Description: "Fresh, light, and calm", Layout: "two-left"},
	{ID: "reverse", Name: "Reverse", Description: "Right sidebar for detail-first roles", Layout: "two-right"},
	{ID: "actor", Name: "Actor", Description: "Single-column, audition ready", Layout: "single"},
}

const DefaultTemplate = "classic"

// ValidTemplate reports whether id names a known template.
func ValidTemplate(id string) bool {
	for _, t := range Templates {
		if t.ID == id {
			return true
		}
	}
	return false
}
