// Package webui serves the HTML dashboard: the period selector, the metric
// tiles, the gauge, the detail table and a spew-based debug page.
package webui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"painel.telasesalas.org/internal/app"
	"painel.telasesalas.org/internal/gauge"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type WebUI struct {
	*app.Application
	Gauge     gauge.Config
	templates *template.Template
}

// NewWebUI parses the embedded templates once.
func NewWebUI(application *app.Application) (*WebUI, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &WebUI{
		Application: application,
		Gauge:       gauge.Default(),
		templates:   tmpl,
	}, nil
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the directory is embedded, so this only fails on a build error
		panic(err)
	}
	return sub
}
