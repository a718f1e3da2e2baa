package content

import "html/template"

// Person is the owner of the portfolio.
type Person struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	Github      string `yaml:"github"`
	Linkedin    string `yaml:"linkedin"`
	Resume      string `yaml:"resume"`
}

// SkillCategory groups skills on the page.
type SkillCategory string

const (
	CategoryLanguages  SkillCategory = "Languages"
	CategoryFrameworks SkillCategory = "Frameworks"
	CategoryTools      SkillCategory = "Tools"
	CategoryDatabases  SkillCategory = "Databases"
	CategoryCloud      SkillCategory = "Cloud"
)

// SkillCategories is the display order of the categories.
var SkillCategories = []SkillCategory{
	CategoryLanguages,
	CategoryFrameworks,
	CategoryTools,
	CategoryDatabases,
	CategoryCloud,
}

type Skill struct {
	Name     string        `yaml:"name"`
	Category SkillCategory `yaml:"category"`
	Level    int           `yaml:"level"` // 0-100
}

// ProjectStatus is where a project stands.
type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusPlanned    ProjectStatus = "planned"
)

type Project struct {
	ID              string        `yaml:"id"`
	Title           string        `yaml:"title"`
	Description     string        `yaml:"description"`
	LongDescription string        `yaml:"long_description"`
	Technologies    []string      `yaml:"technologies"`
	LiveURL         string        `yaml:"live_url,omitempty"`
	GithubURL       string        `yaml:"github_url,omitempty"`
	ImageURL        string        `yaml:"image_url,omitempty"`
	Featured        bool          `yaml:"featured"`
	Status          ProjectStatus `yaml:"status"`
	Year            int           `yaml:"year"`
	Category        string        `yaml:"category"`

	// LongHTML is the rendered markdown write-up, when one exists.
	LongHTML template.HTML `yaml:"-"`
}

// EntryType separates jobs from schooling on the timeline.
type EntryType string

const (
	EntryWork          EntryType = "work"
	EntryEducation     EntryType = "education"
	EntryCertification EntryType = "certification"
)

type Experience struct {
	ID           string    `yaml:"id"`
	Title        string    `yaml:"title"`
	Company      string    `yaml:"company"`
	Location     string    `yaml:"location"`
	StartDate    string    `yaml:"start_date"`
	EndDate      string    `yaml:"end_date,omitempty"` // empty means present
	LogoPath     string    `yaml:"logo_path,omitempty"`
	Description  []string  `yaml:"description"`
	Technologies []string  `yaml:"technologies"`
	Type         EntryType `yaml:"type"`
}

// Period renders the date range for display.
func (e Experience) Period() string {
	end := e.EndDate
	if end == "" {
		end = "Present"
	}
	return e.StartDate + " - " + end
}

type SocialLinks struct {
	Github   string `yaml:"github"`
	Linkedin string `yaml:"linkedin"`
	Twitter  string `yaml:"twitter,omitempty"`
	Email    string `yaml:"email"`
}

type Site struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// Portfolio is everything the page renders.
type Portfolio struct {
	Person     Person       `yaml:"person"`
	About      string       `yaml:"about"`
	Skills     []Skill      `yaml:"skills"`
	Projects   []Project    `yaml:"projects"`
	Experience []Experience `yaml:"experience"`
	Social     SocialLinks  `yaml:"social"`
	Site       Site         `yaml:"site"`

	AboutHTML template.HTML `yaml:"-"`
}

// SkillGroup is one category with its skills.
type SkillGroup struct {
	Category SkillCategory
	Skills   []Skill
}

// SkillsByCategory groups skills in display order, skipping empty
// categories. Skills with an unknown category go last under their own name.
func (p *Portfolio) SkillsByCategory() []SkillGroup {
	byCat := make(map[SkillCategory][]Skill)
	var extra []SkillCategory
	for _, s := range p.Skills {
		if _, seen := byCat[s.Category]; !seen && !isKnownCategory(s.Category) {
			extra = append(extra, s.Category)
		}
		byCat[s.Category] = append(byCat[s.Category], s)
	}

	var groups []SkillGroup
	for _, c := range append(append([]SkillCategory{}, SkillCategories...), extra...) {
		if skills := byCat[c]; len(skills) > 0 {
			groups = append(groups, SkillGroup{Category: c, Skills: skills})
		}
	}
	return groups
}

func isKnownCategory(c SkillCategory) bool {
	for _, k := range SkillCategories {
		if k == c {
			return true
		}
	}
	return false
}

// FeaturedProjects returns the projects marked featured, in order.
func (p *Portfolio) FeaturedProjects() []Project {
	var out []Project
	for _, pr := range p.Projects {
		if pr.Featured {
			out = append(out, pr)
		}
	}
	return out
}

// ExperienceOf returns the timeline entries of one type.
func (p *Portfolio) ExperienceOf(t EntryType) []Experience {
	var out []Experience
	for _, e := range p.Experience {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
