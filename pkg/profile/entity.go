package profile

import "github.com/google/uuid"

// Contact is the fixed set of header fields shown on every template.
type Contact struct {
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Experience is one job entry. Start/End are free-form tokens; they are only
// interpreted by the date parser and the red flag analyzer.
type Experience struct {
	ID       string   `json:"id"`
	Role     string   `json:"role"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Bullets  []string `json:"bullets"`
}

type Education struct {
	ID       string   `json:"id"`
	School   string   `json:"school"`
	Degree   string   `json:"degree"`
	Location string   `json:"location"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Details  []string `json:"details"`
}

type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type Language struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

type CustomSection struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Profile is the structured, editable resume entity.
type Profile struct {
	Contact        Contact         `json:"contact"`
	Summary        string          `json:"summary"`
	Skills         []string        `json:"skills"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	CustomSections []CustomSection `json:"customSections"`
	ImageDataURL   string          `json:"imageDataUrl"`
}

// NewID returns a fresh entry identifier. IDs are unique within a record and
// stable across edits.
func NewID() string {
	return uuid.New().String()
}

// New returns an empty profile with every collection seeded with one blank
// entry, so forms always have something to render.
func New() Profile {
	return Profile{
		Skills: []string{""},
		Experiences: []Experience{
			{ID: NewID(), Bullets: []string{""}},
		},
		Education: []Education{
			{ID: NewID(), Details: []string{""}},
		},
		Projects: []Project{
			{ID: NewID(), Bullets: []string{""}},
		},
		Certifications: []Certification{
			{ID: NewID()},
		},
		Languages: []Language{
			{ID: NewID()},
		},
		CustomSections: []CustomSection{},
	}
}
