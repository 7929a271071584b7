// Package fragments provides template name constants for the vocabulary page
package fragments

// Template names as declared by {{define}} in the template files
const (
	// Page templates
	Index = "index.html"

	// Fragment templates
	CategorySelect = "fragments/category_select.html"
	NounTable      = "fragments/noun_table.html"
)

// GetAllTemplatePaths returns every template the UI expects to be defined
func GetAllTemplatePaths() []string {
	return []string{
		Index,
		CategorySelect,
		NounTable,
	}
}
