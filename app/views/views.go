// Package views renders the HTML pages. Templates are embedded in the binary
// and can be replaced by a directory on disk with the same layout.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	"yelpcamp/logging"
)

//go:embed templates
var embedded embed.FS

// Page names.
const (
	Home            = "home"
	Error           = "error"
	CampgroundIndex = "campgrounds/index"
	CampgroundNew   = "campgrounds/new"
	CampgroundShow  = "campgrounds/show"
	CampgroundEdit  = "campgrounds/edit"
)

// pages lists the files parsed with the layout for each page.
var pages = map[string][]string{
	Home:            {"home.html"},
	Error:           {"error.html"},
	CampgroundIndex: {"campgrounds/index.html"},
	CampgroundNew:   {"campgrounds/new.html", "campgrounds/form.html"},
	CampgroundShow:  {"campgrounds/show.html"},
	CampgroundEdit:  {"campgrounds/edit.html", "campgrounds/form.html"},
}

var funcs = template.FuncMap{
	"price": func(p float64) string {
		return strconv.FormatFloat(p, 'f', -1, 64)
	},
	"rating": func(r float64) string {
		return strconv.FormatFloat(r, 'f', 1, 64)
	},
}

// Renderer holds the parsed pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses every page. An empty dir uses the embedded templates.
func New(dir string) (*Renderer, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return NewFromFS(fsys)
}

// NewFromFS parses every page from fsys.
func NewFromFS(fsys fs.FS) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for name, files := range pages {
		patterns := append([]string{"layout.html"}, files...)
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(fsys, patterns...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Must is New that panics on error.
func Must(r *Renderer, err error) *Renderer {
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes the page into a buffer and writes it with status. Nothing is
// written when execution fails, so the caller can still send an error page.
// Once the status is sent a failed write is only logged, since no other
// response can follow.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Warn().Err(err).Str("page", name).Msg("Failed to write page")
	}
	return nil
}
