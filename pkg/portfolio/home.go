package portfolio

import (
	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/registry"
)

// Featured returns the photos shown on the home page
func Featured(photos []models.PhotoRecord) []models.PhotoRecord {
	var out []models.PhotoRecord
	for _, p := range photos {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// FeaturedCategories returns All and the categories of the featured photos
func FeaturedCategories(photos []models.PhotoRecord) []string {
	return registry.Unique(Featured(photos), func(p models.PhotoRecord) string { return p.Category })
}

// FilterFeatured returns the featured photos in category, or all of them for All
func FilterFeatured(photos []models.PhotoRecord, category string) []models.PhotoRecord {
	featured := Featured(photos)
	if category == "" || category == registry.All {
		return featured
	}
	out := make([]models.PhotoRecord, 0, len(featured))
	for _, p := range featured {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Wide reports whether a photo takes two grid rows
func Wide(p models.PhotoRecord) bool {
	return p.Size == models.SizeLarge
}
