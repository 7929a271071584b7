package services

import (
	"html/template"
	"strings"

	"portuguese101/internal/errors"
	"portuguese101/models"
	"portuguese101/ui/templates/fragments"
)

// RenderService renders the page and its fragments to strings so handlers
// can fail with a 500 before anything is written.
type RenderService struct {
	templates *template.Template
}

// NewRenderService checks that every expected template is defined.
func NewRenderService(templates *template.Template) (*RenderService, error) {
	for _, name := range fragments.GetAllTemplatePaths() {
		if templates.Lookup(name) == nil {
			return nil, errors.InternalError("template " + name + " is not defined")
		}
	}
	return &RenderService{
		templates: templates,
	}, nil
}

// RenderIndex renders the hosting page.
func (s *RenderService) RenderIndex(title string) (string, error) {
	return s.execute(fragments.Index, struct{ Title string }{Title: title})
}

// RenderCategorySelect renders the category drop-down.
func (s *RenderService) RenderCategorySelect(categories []*models.Category) (string, error) {
	return s.execute(fragments.CategorySelect, struct {
		Categories []*models.Category
	}{
		Categories: categories,
	})
}

// RenderNounTable renders the English/Portuguese table. A header-only table
// is rendered for an empty slice.
func (s *RenderService) RenderNounTable(nouns []*models.Noun) (string, error) {
	return s.execute(fragments.NounTable, struct {
		Nouns []*models.Noun
	}{
		Nouns: nouns,
	})
}

func (s *RenderService) execute(name string, data interface{}) (string, error) {
	var buf strings.Builder
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", name)
	}
	return buf.String(), nil
}
