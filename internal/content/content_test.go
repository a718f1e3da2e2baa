package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestSkillsByCategoryOrder(t *testing.T) {
	p := &Portfolio{Skills: []Skill{
		{Name: "AWS", Category: CategoryCloud},
		{Name: "Go", Category: CategoryLanguages},
		{Name: "Figma", Category: "Design"},
		{Name: "Python", Category: CategoryLanguages},
	}}

	groups := p.SkillsByCategory()
	var got []string
	for _, g := range groups {
		got = append(got, string(g.Category))
	}
	want := "Languages,Cloud,Design"
	if strings.Join(got, ",") != want {
		t.Errorf("categories = %v, want %s", got, want)
	}
	if len(groups[0].Skills) != 2 {
		t.Errorf("Languages has %d skills, want 2", len(groups[0].Skills))
	}
}

func TestDefaultPortfolio(t *testing.T) {
	p := Default()
	if len(p.FeaturedProjects()) != 3 {
		t.Errorf("FeaturedProjects() = %d, want 3", len(p.FeaturedProjects()))
	}
	if len(p.ExperienceOf(EntryWork)) != 2 {
		t.Errorf("work entries = %d, want 2", len(p.ExperienceOf(EntryWork)))
	}
	if got := p.Experience[0].Period(); got != "Aug 2023 - Present" {
		t.Errorf("Period() = %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	fsys := fstest.MapFS{
		"projects/terminal-mail.md": {Data: []byte("# Mail\n\nUses **go-imap**.")},
		"about.md":                  {Data: []byte("Hello <script>x</script>")},
		"notes.txt":                 {Data: []byte("ignored")},
	}

	docs, err := RenderMarkdown(fsys, "**/*.md")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2: %v", len(docs), docs)
	}
	if !strings.Contains(string(docs["terminal-mail"]), "<strong>go-imap</strong>") {
		t.Errorf("terminal-mail = %s", docs["terminal-mail"])
	}
	if strings.Contains(string(docs["about"]), "<script>") {
		t.Errorf("raw html passed through: %s", docs["about"])
	}

	p := Default()
	p.Attach(docs)
	if p.AboutHTML == "" {
		t.Error("AboutHTML not attached")
	}
	if p.Projects[0].LongHTML == "" {
		t.Error("terminal-mail LongHTML not attached")
	}
}

func TestLoadYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "portfolio.yml")
	yml := `
person:
  name: Test Person
  email: test@example.com
projects:
  - id: only
    title: Only Project
    featured: true
    status: planned
`
	if err := os.WriteFile(file, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "md"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "md", "only.md"), []byte("_deep dive_"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(file, filepath.Join(dir, "md"), "**/*.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Person.Name != "Test Person" {
		t.Errorf("Person.Name = %q", p.Person.Name)
	}
	if len(p.Projects) != 1 || p.Projects[0].Status != StatusPlanned {
		t.Fatalf("Projects = %+v", p.Projects)
	}
	if !strings.Contains(string(p.Projects[0].LongHTML), "<em>deep dive</em>") {
		t.Errorf("LongHTML = %s", p.Projects[0].LongHTML)
	}
	// Fields absent from the file keep their defaults.
	if len(p.Skills) == 0 {
		t.Error("Skills cleared by override")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yml"), "", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Person.Name != Default().Person.Name {
		t.Errorf("Person.Name = %q", p.Person.Name)
	}
}
