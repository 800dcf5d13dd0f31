package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageSearch = "search"
	PageDetail = "detail"
	PageLists  = "lists"
	PageList   = "list"
)

var pages = []string{PageSearch, PageDetail, PageLists, PageList}

type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"add":        func(a, b int) int { return a + b },
		"pathEscape": url.PathEscape,
		"not":        func(b bool) bool { return !b },
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			fmt.Sprintf("templates/%s.html", page),
		)
		if err != nil {
			return nil, exceptions.ErrRenderTemplate(err, page)
		}
		templates[page] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render executes the page into a buffer before writing, so a template error
// never leaves a half written response.
func (r *Renderer) Render(w http.ResponseWriter, statusCode int, page string, data *PageData) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return exceptions.ErrRenderTemplate(fmt.Errorf("unknown page"), page)
	}

	var buffer bytes.Buffer
	err := tmpl.ExecuteTemplate(&buffer, "layout", data)
	if err != nil {
		return exceptions.ErrRenderTemplate(err, page)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	w.WriteHeader(statusCode)
	_, err = w.Write(buffer.Bytes())
	return err
}
