package registry

import (
	"fmt"
	"strings"

	"binx-portfolio/pkg/models"
)

// Defaults used for filename fields that are missing or empty.
const (
	DefaultPhotographer = "Binx"
	DefaultCategory     = "Portfolio"
	DefaultSession      = "General"
	DefaultTitle        = "Untitled"
)

// DefaultURLPrefix is where local gallery files are served from
const DefaultURLPrefix = "/gallery/"

// ParseFilename builds a photo record from a filename of the form
// Photographer_Category_Session_Title.ext. Dashes inside a field stand in
// for spaces. Segments after the fourth are ignored. A filename without an
// extension has no fields, so every field takes its default.
func ParseFilename(filename string, index int) models.PhotoRecord {
	var base string
	if dot := strings.LastIndex(filename, "."); dot >= 0 {
		base = filename[:dot]
	}
	parts := strings.SplitN(base, "_", 5)

	photographer := field(parts, 0, DefaultPhotographer)
	session := field(parts, 2, DefaultSession)

	return models.PhotoRecord{
		ID:           fmt.Sprintf("local-%d", index),
		URL:          DefaultURLPrefix + filename,
		Filename:     filename,
		Photographer: photographer,
		Category:     field(parts, 1, DefaultCategory),
		Session:      session,
		Title:        field(parts, 3, DefaultTitle),
		Featured:     true,
		Size:         models.SizeMedium,
		Description:  fmt.Sprintf("Captured by %s for the %s session.", photographer, session),
	}
}

func field(parts []string, i int, def string) string {
	if i >= len(parts) || parts[i] == "" {
		return def
	}
	return strings.ReplaceAll(parts[i], "-", " ")
}

// ParseFiles parses gallery files in order. A file with its own URL keeps it.
func ParseFiles(files []models.GalleryFile, urlPrefix string) []models.PhotoRecord {
	photos := make([]models.PhotoRecord, 0, len(files))
	for i, f := range files {
		p := ParseFilename(f.Name, i)
		switch {
		case f.URL != "":
			p.URL = f.URL
		case urlPrefix != "":
			p.URL = urlPrefix + f.Name
		}
		photos = append(photos, p)
	}
	return photos
}
