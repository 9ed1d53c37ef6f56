package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/MKhiriev/go-notes/internal/validators"
)

// Pages known to the renderer.
const (
	PageHome     = "home"
	PageList     = "list"
	PageForm     = "form"
	PageDetail   = "detail"
	PageDelete   = "delete"
	PageSuccess  = "success"
	PageSignup   = "signup"
	PageLogin    = "login"
	PageLogout   = "logout"
	PageNotFound = "not_found"
)

// View-model keys handed to templates.
const (
	ctxObjectList = "object_list"
	ctxForm       = "form"
	ctxNote       = "note"
	ctxNext       = "next"
	ctxUser       = "user"
)

var pages = []string{
	PageHome, PageList, PageForm, PageDetail, PageDelete, PageSuccess,
	PageSignup, PageLogin, PageLogout, PageNotFound,
}

//go:embed templates/*.html
var templatesFS embed.FS

// ViewContext is the data a page template is executed with.
type ViewContext map[string]any

// Form pairs submitted (or pre-filled) values with their validation errors.
type Form struct {
	Data   any
	Errors validators.FieldErrors
}

// Renderer writes the named page.
type Renderer interface {
	Render(w io.Writer, page string, data ViewContext) error
}

// TemplateRenderer renders the embedded html/template pages. Every page is
// parsed together with the shared layout.
type TemplateRenderer struct {
	templates map[string]*template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	funcs := template.FuncMap{
		"url": Reverse,
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templatesFS, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %q: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &TemplateRenderer{templates: templates}, nil
}

func (t *TemplateRenderer) Render(w io.Writer, page string, data ViewContext) error {
	tmpl, ok := t.templates[page]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, page)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}
