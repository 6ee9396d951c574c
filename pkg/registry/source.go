package registry

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"binx-portfolio/pkg/models"
)

// Source supplies the gallery files a registry is assembled from
type Source interface {
	Name() string
	Files(ctx context.Context) ([]models.GalleryFile, error)
}

// LocalSource reads the gallery manifest, falling back to a scan of the
// gallery directory when the manifest lists nothing.
type LocalSource struct {
	ManifestPath string
	Dir          string
}

// Name identifies the source in logs
func (s LocalSource) Name() string {
	return "local"
}

// Files returns the manifest entries or the directory listing
func (s LocalSource) Files(_ context.Context) ([]models.GalleryFile, error) {
	if s.ManifestPath != "" {
		m, err := LoadManifest(s.ManifestPath)
		if err != nil {
			return nil, err
		}
		if len(m.Files) > 0 {
			return m.Files, nil
		}
	}
	if s.Dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(s.Dir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat gallery dir: %w", err)
	}
	return ScanDir(s.Dir)
}

// LoadFiles reads every source concurrently and merges the results in
// source order. A filename seen in an earlier source wins.
func LoadFiles(ctx context.Context, sources ...Source) ([]models.GalleryFile, error) {
	results := make([][]models.GalleryFile, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			files, err := src.Files(ctx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			results[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var merged []models.GalleryFile
	for _, files := range results {
		for _, f := range files {
			if seen[f.Name] {
				continue
			}
			seen[f.Name] = true
			merged = append(merged, f)
		}
	}
	return merged, nil
}
