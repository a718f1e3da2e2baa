package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

// aboutDoc is the markdown file name that replaces the about text.
const aboutDoc = "about"

// Load builds the portfolio: the built-in defaults, overlaid by the YAML
// file at file (if set and present), then by markdown write-ups found in
// dir matching glob.
func Load(file, dir, glob string) (*Portfolio, error) {
	p := Default()

	if file != "" {
		data, err := os.ReadFile(file)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, p); err != nil {
				return nil, fmt.Errorf("parsing content %s: %w", file, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading content %s: %w", file, err)
		}
	}

	if dir != "" && glob != "" {
		if _, err := os.Stat(dir); err == nil {
			docs, err := RenderMarkdown(os.DirFS(dir), glob)
			if err != nil {
				return nil, err
			}
			p.Attach(docs)
		}
	}

	return p, nil
}

// RenderMarkdown renders every file in fsys matching the doublestar glob and
// returns the HTML keyed by file name without extension.
func RenderMarkdown(fsys fs.FS, glob string) (map[string]template.HTML, error) {
	matches, err := doublestar.Glob(fsys, glob)
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", glob, err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	docs := make(map[string]template.HTML, len(matches))
	for _, m := range matches {
		src, err := fs.ReadFile(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", m, err)
		}
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", m, err)
		}
		name := strings.TrimSuffix(path.Base(m), path.Ext(m))
		// goldmark escapes raw HTML unless WithUnsafe is set.
		docs[name] = template.HTML(buf.String())
	}
	return docs, nil
}

// Attach sets rendered write-ups on the about section and on projects whose
// id matches a document name.
func (p *Portfolio) Attach(docs map[string]template.HTML) {
	if html, ok := docs[aboutDoc]; ok {
		p.AboutHTML = html
	}
	for i := range p.Projects {
		if html, ok := docs[p.Projects[i].ID]; ok {
			p.Projects[i].LongHTML = html
		}
	}
}
