// Package portfolio filters the photo registry and groups the result into
// sessions for the portfolio browser and the home page gallery.
package portfolio

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/registry"
)

// Filter is the portfolio browser's filter bar
type Filter struct {
	Photographer string `json:"photographer"`
	Category     string `json:"category"`
	Query        string `json:"query"`
}

// DefaultFilter matches every photo
func DefaultFilter() Filter {
	return Filter{Photographer: registry.All, Category: registry.All}
}

// IsDefault reports whether the filter matches every photo
func (f Filter) IsDefault() bool {
	return f.normalized() == DefaultFilter()
}

// normalized treats empty selections as All
func (f Filter) normalized() Filter {
	if f.Photographer == "" {
		f.Photographer = registry.All
	}
	if f.Category == "" {
		f.Category = registry.All
	}
	return f
}

// Matches reports whether p satisfies all three predicates
func (f Filter) Matches(p models.PhotoRecord) bool {
	return f.matcher()(p)
}

func (f Filter) matcher() func(models.PhotoRecord) bool {
	f = f.normalized()
	lower := cases.Lower(language.Und)
	query := lower.String(f.Query)

	return func(p models.PhotoRecord) bool {
		if f.Photographer != registry.All && p.Photographer != f.Photographer {
			return false
		}
		if f.Category != registry.All && p.Category != f.Category {
			return false
		}
		if query == "" {
			return true
		}
		for _, field := range []string{p.Title, p.Session, p.Photographer, p.Category} {
			if strings.Contains(lower.String(field), query) {
				return true
			}
		}
		return false
	}
}

// Apply returns the photos matching f, in their original order
func Apply(photos []models.PhotoRecord, f Filter) []models.PhotoRecord {
	match := f.matcher()
	out := make([]models.PhotoRecord, 0, len(photos))
	for _, p := range photos {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Toggle returns the new selection after clicking value on a filter button.
// Clicking the active value clears it back to All.
func Toggle(current, value string) string {
	if value == current {
		return registry.All
	}
	return value
}
