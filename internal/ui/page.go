package ui

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

const ChatTemplate = "chat.html"

// PageData is what the chat page template reads.
type PageData struct {
	Title    string
	Endpoint string
}

type Page struct {
	tmpl *template.Template
	name string
}

// NewChatPage parses the embedded chat page.
func NewChatPage() (*Page, error) {
	return LoadPage(templateFS, "templates/*.html", ChatTemplate)
}

func LoadPage(fsys fs.FS, pattern string, name string) (*Page, error) {
	tmpl, err := template.ParseFS(fsys, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "parse templates %s", pattern)
	}
	if tmpl.Lookup(name) == nil {
		return nil, errors.Errorf("template %s not found", name)
	}
	return &Page{tmpl: tmpl, name: name}, nil
}

// Render executes into a buffer so a failed render never leaves a half-written page.
func (p *Page) Render(w io.Writer, data PageData) error {
	if p == nil || p.tmpl == nil {
		return errors.New("template not loaded")
	}
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, p.name, data); err != nil {
		return errors.Wrapf(err, "render %s", p.name)
	}
	_, err := buf.WriteTo(w)
	return err
}
