package registry

import (
	"errors"
	"fmt"

	"binx-portfolio/pkg/models"
)

// All is the filter option that matches every value
const All = "All"

// ErrDuplicateID is returned when two records share an ID
var ErrDuplicateID = errors.New("duplicate photo id")

// Registry is the read-only list of photos the site is built from
type Registry struct {
	photos []models.PhotoRecord
	index  map[string]int
}

// Assemble concatenates local records and the sample set, local records first
func Assemble(local, samples []models.PhotoRecord) (*Registry, error) {
	photos := make([]models.PhotoRecord, 0, len(local)+len(samples))
	photos = append(photos, local...)
	photos = append(photos, samples...)

	index := make(map[string]int, len(photos))
	for i, p := range photos {
		if _, exists := index[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		index[p.ID] = i
	}

	return &Registry{photos: photos, index: index}, nil
}

// All returns a copy of every record in registry order
func (r *Registry) All() []models.PhotoRecord {
	out := make([]models.PhotoRecord, len(r.photos))
	copy(out, r.photos)
	return out
}

// Len returns the number of records
func (r *Registry) Len() int {
	return len(r.photos)
}

// ByID looks up a record by its ID
func (r *Registry) ByID(id string) (models.PhotoRecord, bool) {
	i, ok := r.index[id]
	if !ok {
		return models.PhotoRecord{}, false
	}
	return r.photos[i], true
}

// Featured returns the records flagged for the home page
func (r *Registry) Featured() []models.PhotoRecord {
	var out []models.PhotoRecord
	for _, p := range r.photos {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Photographers returns All followed by each photographer in first-seen order
func (r *Registry) Photographers() []string {
	return Unique(r.photos, func(p models.PhotoRecord) string { return p.Photographer })
}

// Categories returns All followed by each category in first-seen order
func (r *Registry) Categories() []string {
	return Unique(r.photos, func(p models.PhotoRecord) string { return p.Category })
}

// Unique collects distinct key values in first-occurrence order, prefixed with All
func Unique(photos []models.PhotoRecord, key func(models.PhotoRecord) string) []string {
	seen := make(map[string]bool)
	values := []string{All}
	for _, p := range photos {
		v := key(p)
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
