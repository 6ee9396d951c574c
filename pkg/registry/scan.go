package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"binx-portfolio/pkg/models"
)

// ImageExtensions are the file types picked up by a gallery scan
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// IsImage reports whether name has one of the gallery image extensions
func IsImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ScanDir lists the image files directly inside dir in natural name order.
// The directory is created when it does not exist yet.
func ScanDir(dir string) ([]models.GalleryFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create gallery dir: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read gallery dir: %w", err)
	}

	var files []models.GalleryFile
	for _, e := range entries {
		if e.IsDir() || !IsImage(e.Name()) {
			continue
		}
		files = append(files, models.GalleryFile{Name: e.Name()})
	}
	sortFiles(files)
	return files, nil
}

func sortFiles(files []models.GalleryFile) {
	sort.SliceStable(files, func(i, j int) bool {
		return naturalLess(files[i].Name, files[j].Name)
	})
}
