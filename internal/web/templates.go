package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html.tmpl
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html.tmpl"))
