package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/result.html.tmpl
var templateFS embed.FS

var resultTemplate = template.Must(template.ParseFS(templateFS, "templates/result.html.tmpl"))

// HTMLRenderer writes the results section of the form page
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer returns an HTMLRenderer
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{tmpl: resultTemplate}
}

func (r *HTMLRenderer) SupportedFormat() Format {
	return FormatHTML
}

func (r *HTMLRenderer) Render(w io.Writer, v *View) error {
	if err := r.tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("rendering html report: %w", err)
	}
	return nil
}
