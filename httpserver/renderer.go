package httpserver

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/labstack/echo/v4"
)

const layoutTemplate = "boilerplate"

// Renderer renders page templates wrapped in the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every top-level *.html page in fsys together with layouts/*.html.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	pages, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New(path.Base(page)).ParseFS(fsys, "layouts/*.html", page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, layoutTemplate, data)
}
