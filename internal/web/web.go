// Package web holds the server-rendered catalog pages.
package web

import (
	"embed"
	"html/template"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/model"
)

//go:embed templates/*.html
var files embed.FS

// FuncMap exposes the derived catalog fields to templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"displayName":          model.DisplayName,
		"lifespan":             model.Lifespan,
		"dateOfBirthFormatted": model.DateOfBirthFormatted,
		"dateOfDeathFormatted": model.DateOfDeathFormatted,
		"dueBackFormatted":     model.DueBackFormatted,
		"authorURL":            model.AuthorURL,
		"genreURL":             model.GenreURL,
		"bookURL":              model.BookURL,
		"bookInstanceURL":      model.BookInstanceURL,
		"statusClass":          StatusClass,
		"statuses":             func() []model.Status { return model.Statuses },
		"selected":             Selected,
		"timestamp": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
	}
}

// Templates parses every page with FuncMap applied.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(files, "templates/*.html")
}

func StatusClass(s model.Status) string {
	switch s {
	case model.StatusAvailable:
		return "text-success"
	case model.StatusMaintenance:
		return "text-danger"
	default:
		return "text-warning"
	}
}

// Selected reports whether id is among the submitted values.
func Selected(values []string, id uuid.UUID) bool {
	for _, v := range values {
		if v == id.String() {
			return true
		}
	}
	return false
}
