// Package nav tracks the page section under the header.
package nav

// Section identifies one vertically stacked region of the page.
type Section string

const (
	SectionHome       Section = "home"
	SectionAbout      Section = "about"
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
	SectionExperience Section = "experience"
	SectionContact    Section = "contact"
)

// Sections is the page's sections in document order.
var Sections = []Section{
	SectionHome,
	SectionAbout,
	SectionSkills,
	SectionProjects,
	SectionExperience,
	SectionContact,
}

// Item is a navigation entry.
type Item struct {
	Name    string
	Section Section
}

// Href is the in-page anchor for the entry.
func (i Item) Href() string { return "#" + string(i.Section) }

// Items are the navbar entries, one per section.
var Items = []Item{
	{Name: "Home", Section: SectionHome},
	{Name: "About", Section: SectionAbout},
	{Name: "Skills", Section: SectionSkills},
	{Name: "Projects", Section: SectionProjects},
	{Name: "Experience", Section: SectionExperience},
	{Name: "Contact", Section: SectionContact},
}

// Extent is the half-open vertical span [Top, Bottom) a section occupies,
// in document coordinates.
type Extent struct {
	Top    float64
	Bottom float64
}

// Contains reports whether y falls inside the extent.
func (e Extent) Contains(y float64) bool {
	return y >= e.Top && y < e.Bottom
}
