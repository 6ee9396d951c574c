package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"binx-portfolio/pkg/config"
	"binx-portfolio/pkg/models"
	"binx-portfolio/pkg/registry"
)

// FilenameFormat is the naming convention the registry parses
const FilenameFormat = "Photographer_Category_Session-Name_Title.jpg"

// newScanGalleryCmd creates a new command for rebuilding the gallery manifest
func newScanGalleryCmd() *cobra.Command {
	var fromBucket bool

	cmd := &cobra.Command{
		Use:   "scan-gallery",
		Short: "Scan the gallery and write the manifest",
		Long: `Scan the gallery directory, or the Cloud Storage bucket with --from-bucket,
for image files and write their names to the gallery manifest.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			source, err := scanSource(cfg, fromBucket)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			if _, err := scanGallery(cmd.Context(), cmd.OutOrStdout(), source, cfg.ManifestPath); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&fromBucket, "from-bucket", false, "Scan the BUCKET_NAME bucket instead of GALLERY_DIR")

	return cmd
}

// dirSource scans a local directory, ignoring any manifest
type dirSource string

func (d dirSource) Name() string { return "dir:" + string(d) }

func (d dirSource) Files(context.Context) ([]models.GalleryFile, error) {
	return registry.ScanDir(string(d))
}

func scanSource(cfg *config.Config, fromBucket bool) (registry.Source, error) {
	if !fromBucket {
		return dirSource(cfg.GalleryDir), nil
	}
	if !cfg.UseBucket() {
		return nil, config.ErrBucketNameNotSet
	}
	return registry.BucketSource{
		BucketName: cfg.BucketName,
		Prefix:     cfg.BucketPrefix,
		Signed:     cfg.SignedURLs,
	}, nil
}

// scanGallery lists the images of source and writes them to manifestPath.
// Nothing is written when the source has no images.
func scanGallery(ctx context.Context, w io.Writer, source registry.Source, manifestPath string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintf(w, "Scanning %s...\n", source.Name())

	files, err := source.Files(ctx)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		fmt.Fprintln(w, "No images found. Add some photos first!")
		return 0, nil
	}
	fmt.Fprintf(w, "Found %d images ready for processing.\n", len(files))

	if err := registry.SaveManifest(manifestPath, registry.Manifest{Files: files}); err != nil {
		return 0, fmt.Errorf("write manifest: %w", err)
	}

	fmt.Fprintf(w, "Manifest %s updated! %d photos are now live.\n", manifestPath, len(files))
	fmt.Fprintf(w, "\nREMINDER: Ensure your filenames follow the format:\n%s\n", FilenameFormat)
	return len(files), nil
}
